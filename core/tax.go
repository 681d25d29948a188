package core

import "github.com/shopspring/decimal"

type TaxEstimate struct {
	GrossIncome   decimal.Decimal `json:"gross_income"`
	Deductions    decimal.Decimal `json:"deductions"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	CalculatedTax decimal.Decimal `json:"calculated_tax"`
	TaxPaid       decimal.Decimal `json:"tax_paid"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
}

type TaxService interface {
	Estimate(grossIncome, taxPaid, deductions decimal.Decimal) (*TaxEstimate, error)
}
