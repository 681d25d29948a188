package van

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
	"external_id",
	"merchant_name",
	"amount",
	"currency",
	"approval_code",
	"status",
	"created_at",
	"settled_at",
}

func scanVAN(scanner scanner, tx *core.VANTransaction) error {
	var settledAt sql.NullTime

	if err := scanner.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.ExternalID,
		&tx.MerchantName,
		&tx.Amount,
		&tx.Currency,
		&tx.ApprovalCode,
		&tx.Status,
		&tx.CreatedAt,
		&settledAt,
	); err != nil {
		return err
	}

	if settledAt.Valid {
		tx.SettledAt = &settledAt.Time
	}

	return nil
}
