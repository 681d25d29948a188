package balance

import (
	"github.com/zigaplabs/super-wallet/core"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{
	"id",
	"address",
	"asset_type",
	"balance",
	"version",
	"updated_at",
}

func scanBalance(scanner scanner, balance *core.WalletBalance) error {
	return scanner.Scan(
		&balance.ID,
		&balance.Address,
		&balance.AssetType,
		&balance.Balance,
		&balance.Version,
		&balance.UpdatedAt,
	)
}
