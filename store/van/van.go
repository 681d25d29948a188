package van

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(db *nap.DB) core.VANStore {
	return &vanStore{db: db}
}

type vanStore struct {
	db *nap.DB
}

func (s *vanStore) Create(ctx context.Context, tx *core.VANTransaction) error {
	b := sq.Insert("van_transactions").
		Columns("user_id", "external_id", "merchant_name", "amount", "currency", "approval_code", "status").
		Values(tx.UserID, tx.ExternalID, tx.MerchantName, tx.Amount, tx.Currency, tx.ApprovalCode, tx.Status)

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

func (s *vanStore) Find(ctx context.Context, id uint64) (*core.VANTransaction, error) {
	b := sq.Select(scanColumns...).
		From("van_transactions").
		Where(sq.Eq{"id": id})
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var tx core.VANTransaction
	if err := scanVAN(row, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (s *vanStore) ListByUser(ctx context.Context, userID string) ([]*core.VANTransaction, error) {
	b := sq.Select(scanColumns...).
		From("van_transactions").
		Where("user_id = ?", userID).
		OrderBy("id DESC")

	return s.list(ctx, b)
}

func (s *vanStore) ListStatus(ctx context.Context, status core.VANStatus, limit int) ([]*core.VANTransaction, error) {
	b := sq.Select(scanColumns...).
		From("van_transactions").
		Where("status = ?", status).
		OrderBy("id").
		Limit(uint64(limit))

	return s.list(ctx, b)
}

func (s *vanStore) list(ctx context.Context, b sq.SelectBuilder) ([]*core.VANTransaction, error) {
	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var txs []*core.VANTransaction
	for rows.Next() {
		var tx core.VANTransaction
		if err := scanVAN(rows, &tx); err != nil {
			return nil, err
		}

		txs = append(txs, &tx)
	}

	return txs, nil
}

func (s *vanStore) MarkSettled(ctx context.Context, tx *core.VANTransaction, settledAt time.Time) error {
	b := sq.Update("van_transactions").
		Set("status", core.VANStatusSettled).
		Set("settled_at", settledAt).
		Where("id = ? AND status = ?", tx.ID, core.VANStatusApproved)

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

	tx.Status = core.VANStatusSettled
	tx.SettledAt = &settledAt
	return nil
}
