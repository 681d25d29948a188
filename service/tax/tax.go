package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
)

func New() core.TaxService {
	return &service{}
}

type service struct{}

type bracket struct {
	ceiling decimal.Decimal
	rate    decimal.Decimal
}

// brackets follow the simplified income tax table. The rate of the bracket
// the gross income lands in applies to the whole taxable income, it is not
// marginal.
var brackets = []bracket{
	{ceiling: decimal.NewFromInt(12_000_000), rate: decimal.NewFromFloat(0.06)},
	{ceiling: decimal.NewFromInt(46_000_000), rate: decimal.NewFromFloat(0.15)},
	{ceiling: decimal.NewFromInt(88_000_000), rate: decimal.NewFromFloat(0.24)},
	{ceiling: decimal.NewFromInt(150_000_000), rate: decimal.NewFromFloat(0.35)},
}

var topRate = decimal.NewFromFloat(0.38)

func rateFor(grossIncome decimal.Decimal) decimal.Decimal {
	for _, b := range brackets {
		if grossIncome.LessThanOrEqual(b.ceiling) {
			return b.rate
		}
	}

	return topRate
}

func (s *service) Estimate(grossIncome, taxPaid, deductions decimal.Decimal) (*core.TaxEstimate, error) {
	if grossIncome.IsNegative() {
		return nil, fmt.Errorf("%w: gross income is negative", core.ErrInvalidArgument)
	}

	if taxPaid.IsNegative() {
		return nil, fmt.Errorf("%w: tax paid is negative", core.ErrInvalidArgument)
	}

	if deductions.IsNegative() {
		return nil, fmt.Errorf("%w: deductions is negative", core.ErrInvalidArgument)
	}

	taxable := grossIncome.Sub(deductions)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	rate := rateFor(grossIncome)
	calculated := taxable.Mul(rate)

	refund := taxPaid.Sub(calculated)
	if refund.IsNegative() {
		refund = decimal.Zero
	}

	return &core.TaxEstimate{
		GrossIncome:   grossIncome,
		Deductions:    deductions,
		TaxableIncome: taxable,
		EffectiveRate: rate,
		CalculatedTax: calculated,
		TaxPaid:       taxPaid,
		RefundAmount:  refund,
	}, nil
}
