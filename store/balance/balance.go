package balance

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(db *nap.DB) core.BalanceStore {
	return &balanceStore{db: db}
}

type balanceStore struct {
	db *nap.DB
}

// Find reads from the master so a subsequent compare-and-swap
// never races a stale replica.
func (s *balanceStore) Find(ctx context.Context, address, assetType string) (*core.WalletBalance, error) {
	b := sq.Select(scanColumns...).
		From("wallet_balances").
		Where("address = ? AND asset_type = ?", address, assetType)

	stmt, args := b.MustSql()
	row := s.db.Master().QueryRowContext(ctx, stmt, args...)

	var balance core.WalletBalance
	if err := scanBalance(row, &balance); err != nil {
		return nil, err
	}

	return &balance, nil
}

func (s *balanceStore) ListAddress(ctx context.Context, address string) ([]*core.WalletBalance, error) {
	b := sq.Select(scanColumns...).
		From("wallet_balances").
		Where("address = ?", address).
		OrderBy("asset_type")

	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var balances []*core.WalletBalance
	for rows.Next() {
		var balance core.WalletBalance
		if err := scanBalance(rows, &balance); err != nil {
			return nil, err
		}

		balances = append(balances, &balance)
	}

	return balances, nil
}

func (s *balanceStore) Create(ctx context.Context, balance *core.WalletBalance) error {
	b := sq.Insert("wallet_balances").
		Columns("address", "asset_type", "balance").
		Values(balance.Address, balance.AssetType, balance.Balance)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	balance.ID = uint64(id)
	balance.Version = 1
	return nil
}

func (s *balanceStore) Update(ctx context.Context, balance *core.WalletBalance, next decimal.Decimal) error {
	b := sq.Update("wallet_balances").
		Set("balance", next).
		Set("version", balance.Version+1).
		Where("id = ? AND version = ?", balance.ID, balance.Version)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return store.ErrOptimisticLock
	}

	balance.Balance = next
	balance.Version += 1
	return nil
}
