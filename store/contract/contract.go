package contract

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
)

func New(db *nap.DB) core.ContractStore {
	return &contractStore{db: db}
}

type contractStore struct {
	db *nap.DB
}

func (s *contractStore) Create(ctx context.Context, contract *core.SmartContract) error {
	b := sq.Insert("contracts").
		Columns("user_id", "name", "network", "address", "tx_hash", "abi", "status").
		Values(contract.UserID, contract.Name, contract.Network, contract.Address, contract.TxHash, []byte(contract.ABI), contract.Status)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	contract.ID = uint64(id)
	return nil
}

func (s *contractStore) Find(ctx context.Context, id uint64) (*core.SmartContract, error) {
	b := sq.Select(scanColumns...).
		From("contracts").
		Where(sq.Eq{"id": id})
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var contract core.SmartContract
	if err := scanContract(row, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

func (s *contractStore) ListByUser(ctx context.Context, userID string) ([]*core.SmartContract, error) {
	b := sq.Select(scanColumns...).
		From("contracts").
		Where("user_id = ?", userID).
		OrderBy("id DESC")

	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var contracts []*core.SmartContract
	for rows.Next() {
		var contract core.SmartContract
		if err := scanContract(rows, &contract); err != nil {
			return nil, err
		}

		contracts = append(contracts, &contract)
	}

	return contracts, nil
}
