package transaction

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(db *nap.DB) core.TransactionStore {
	return &transactionStore{db: db}
}

type transactionStore struct {
	db *nap.DB
}

func (s *transactionStore) Create(ctx context.Context, tx *core.Transaction) error {
	b := sq.Insert("transactions").
		Columns("user_id", "from_address", "to_address", "asset_type", "amount", "fee", "tx_hash", "status", "transaction_type").
		Values(tx.UserID, tx.FromAddress, tx.ToAddress, tx.AssetType, tx.Amount, tx.Fee, tx.TxHash, tx.Status, tx.TransactionType)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	tx.ID = uint64(id)
	return nil
}

func (s *transactionStore) Find(ctx context.Context, id uint64) (*core.Transaction, error) {
	b := sq.Select(scanColumns...).
		From("transactions").
		Where(sq.Eq{"id": id})
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var tx core.Transaction
	if err := scanTransaction(row, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (s *transactionStore) FindHash(ctx context.Context, txHash string) (*core.Transaction, error) {
	b := sq.Select(scanColumns...).
		From("transactions").
		Where("tx_hash = ?", txHash)
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var tx core.Transaction
	if err := scanTransaction(row, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (s *transactionStore) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*core.Transaction, error) {
	b := sq.Select(scanColumns...).
		From("transactions").
		Where("user_id = ?", userID).
		OrderBy("id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	return s.list(ctx, b)
}

func (s *transactionStore) ListSince(ctx context.Context, id uint64, limit int) ([]*core.Transaction, error) {
	b := sq.Select(scanColumns...).
		From("transactions").
		Where("id > ?", id).
		OrderBy("id").
		Limit(uint64(limit))

	return s.list(ctx, b)
}

func (s *transactionStore) list(ctx context.Context, b sq.SelectBuilder) ([]*core.Transaction, error) {
	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var txs []*core.Transaction
	for rows.Next() {
		var tx core.Transaction
		if err := scanTransaction(rows, &tx); err != nil {
			return nil, err
		}

		txs = append(txs, &tx)
	}

	return txs, nil
}

func (s *transactionStore) UpdateStatus(ctx context.Context, tx *core.Transaction, to core.TransactionStatus) error {
	b := sq.Update("transactions").
		Set("status", to).
		Where("id = ? AND status = ?", tx.ID, tx.Status)

	if to == core.TransactionStatusCompleted || to == core.TransactionStatusFailed {
		b = b.Set("confirmed_at", time.Now())
	}

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

	tx.Status = to
	return nil
}
