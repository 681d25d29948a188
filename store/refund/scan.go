package refund

import (
	"database/sql"

	"github.com/zigaplabs/super-wallet/core"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{
	"id",
	"user_id",
	"gross_income",
	"tax_paid",
	"deductions",
	"refund_amount",
	"status",
	"submitted_at",
	"processed_at",
}

func scanRefund(scanner scanner, refund *core.TaxRefund) error {
	var processedAt sql.NullTime

	if err := scanner.Scan(
		&refund.ID,
		&refund.UserID,
		&refund.GrossIncome,
		&refund.TaxPaid,
		&refund.Deductions,
		&refund.RefundAmount,
		&refund.Status,
		&refund.SubmittedAt,
		&processedAt,
	); err != nil {
		return err
	}

	if processedAt.Valid {
		refund.ProcessedAt = &processedAt.Time
	}

	return nil
}
