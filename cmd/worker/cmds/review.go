package cmds

import (
	"time"

	"github.com/zigaplabs/super-wallet/core"
)

type reviewRow struct {
	ID           uint64    `json:"id"`
	UserID       string    `json:"user_id"`
	GrossIncome  string    `json:"gross_income"`
	TaxPaid      string    `json:"tax_paid"`
	RefundAmount string    `json:"refund_amount"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func reviewRowFromRefund(refund *core.TaxRefund) *reviewRow {
	return &reviewRow{
		ID:           refund.ID,
		UserID:       refund.UserID,
		GrossIncome:  refund.GrossIncome.String(),
		TaxPaid:      refund.TaxPaid.String(),
		RefundAmount: refund.RefundAmount.String(),
		SubmittedAt:  refund.SubmittedAt,
	}
}
