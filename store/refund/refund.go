package refund

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(db *nap.DB) core.RefundStore {
	return &refundStore{db: db}
}

type refundStore struct {
	db *nap.DB
}

func (s *refundStore) Create(ctx context.Context, refund *core.TaxRefund) error {
	b := sq.Insert("tax_refunds").
		Columns("user_id", "gross_income", "tax_paid", "deductions", "refund_amount", "status").
		Values(refund.UserID, refund.GrossIncome, refund.TaxPaid, refund.Deductions, refund.RefundAmount, refund.Status)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	refund.ID = uint64(id)
	return nil
}

func (s *refundStore) Find(ctx context.Context, id uint64) (*core.TaxRefund, error) {
	b := sq.Select(scanColumns...).
		From("tax_refunds").
		Where(sq.Eq{"id": id})
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var refund core.TaxRefund
	if err := scanRefund(row, &refund); err != nil {
		return nil, err
	}

	return &refund, nil
}

func (s *refundStore) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*core.TaxRefund, error) {
	b := sq.Select(scanColumns...).
		From("tax_refunds").
		Where("user_id = ?", userID).
		OrderBy("id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	return s.list(ctx, b)
}

func (s *refundStore) ListStatus(ctx context.Context, status core.RefundStatus, limit int) ([]*core.TaxRefund, error) {
	b := sq.Select(scanColumns...).
		From("tax_refunds").
		Where("status = ?", status).
		OrderBy("id").
		Limit(uint64(limit))

	return s.list(ctx, b)
}

func (s *refundStore) list(ctx context.Context, b sq.SelectBuilder) ([]*core.TaxRefund, error) {
	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var refunds []*core.TaxRefund
	for rows.Next() {
		var refund core.TaxRefund
		if err := scanRefund(rows, &refund); err != nil {
			return nil, err
		}

		refunds = append(refunds, &refund)
	}

	return refunds, nil
}

func (s *refundStore) UpdateStatus(ctx context.Context, refund *core.TaxRefund, to core.RefundStatus) error {
	b := sq.Update("tax_refunds").
		Set("status", to).
		Where("id = ? AND status = ?", refund.ID, refund.Status)

	if refund.Status == core.RefundStatusPending {
		b = b.Set("processed_at", time.Now())
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

	refund.Status = to
	return nil
}
