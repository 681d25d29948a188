package contract

import (
	"github.com/zigaplabs/super-wallet/core"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{
	"id",
	"user_id",
	"name",
	"network",
	"address",
	"tx_hash",
	"abi",
	"status",
	"created_at",
}

func scanContract(scanner scanner, contract *core.SmartContract) error {
	var abi []byte

	if err := scanner.Scan(
		&contract.ID,
		&contract.UserID,
		&contract.Name,
		&contract.Network,
		&contract.Address,
		&contract.TxHash,
		&abi,
		&contract.Status,
		&contract.CreatedAt,
	); err != nil {
		return err
	}

	contract.ABI = abi
	return nil
}
