package transaction

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
	"from_address",
	"to_address",
	"asset_type",
	"amount",
	"fee",
	"tx_hash",
	"status",
	"transaction_type",
	"created_at",
	"confirmed_at",
}

func scanTransaction(scanner scanner, tx *core.Transaction) error {
	var confirmedAt sql.NullTime

	if err := scanner.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.FromAddress,
		&tx.ToAddress,
		&tx.AssetType,
		&tx.Amount,
		&tx.Fee,
		&tx.TxHash,
		&tx.Status,
		&tx.TransactionType,
		&tx.CreatedAt,
		&confirmedAt,
	); err != nil {
		return err
	}

	if confirmedAt.Valid {
		tx.ConfirmedAt = &confirmedAt.Time
	}

	return nil
}
