package settler

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/service/van"
	"github.com/zigaplabs/super-wallet/store"
)

type fakeVANStore struct {
	nextID uint64
	rows   map[uint64]*core.VANTransaction
}

func newFakeVANStore() *fakeVANStore {
	return &fakeVANStore{rows: map[uint64]*core.VANTransaction{}}
}

func (f *fakeVANStore) Create(_ context.Context, tx *core.VANTransaction) error {
	f.nextID++
	tx.ID = f.nextID
	clone := *tx
	f.rows[tx.ID] = &clone
	return nil
}

func (f *fakeVANStore) Find(_ context.Context, id uint64) (*core.VANTransaction, error) {
	tx, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *tx
	return &clone, nil
}

func (f *fakeVANStore) ListByUser(_ context.Context, userID string) ([]*core.VANTransaction, error) {
	return nil, nil
}

func (f *fakeVANStore) ListStatus(_ context.Context, status core.VANStatus, limit int) ([]*core.VANTransaction, error) {
	var txs []*core.VANTransaction
	for id := uint64(1); id <= f.nextID && len(txs) < limit; id++ {
		if tx, ok := f.rows[id]; ok && tx.Status == status {
			clone := *tx
			txs = append(txs, &clone)
		}
	}

	return txs, nil
}

func (f *fakeVANStore) MarkSettled(_ context.Context, tx *core.VANTransaction, settledAt time.Time) error {
	stored, ok := f.rows[tx.ID]
	if !ok || stored.Status != core.VANStatusApproved {
		return store.ErrOptimisticLock
	}

	stored.Status = core.VANStatusSettled
	stored.SettledAt = &settledAt
	tx.Status = core.VANStatusSettled
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSettlesAfterGrace(t *testing.T) {
	ctx := context.Background()
	vans := newFakeVANStore()
	w := New(vans, van.NewMock(0), testLogger())

	tx := &core.VANTransaction{
		UserID:       "user-1",
		ExternalID:   "ext-1",
		MerchantName: "GS25",
		Amount:       decimal.NewFromInt(4500),
		Currency:     "KRW",
		ApprovalCode: "00112233",
		Status:       core.VANStatusApproved,
		CreatedAt:    time.Now().Add(-time.Minute),
	}
	if err := vans.Create(ctx, tx); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := w.run(ctx); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	stored, err := vans.Find(ctx, tx.ID)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if stored.Status != core.VANStatusSettled {
		t.Errorf("Status = %s, want settled", stored.Status)
	}

	if stored.SettledAt == nil {
		t.Error("SettledAt not set")
	}
}

func TestRunHoldsInsideGrace(t *testing.T) {
	ctx := context.Background()
	vans := newFakeVANStore()
	w := New(vans, van.NewMock(time.Hour), testLogger())

	tx := &core.VANTransaction{
		UserID:       "user-1",
		ExternalID:   "ext-1",
		MerchantName: "GS25",
		Amount:       decimal.NewFromInt(4500),
		Currency:     "KRW",
		ApprovalCode: "00112233",
		Status:       core.VANStatusApproved,
		CreatedAt:    time.Now(),
	}
	if err := vans.Create(ctx, tx); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := w.run(ctx); err == nil {
		t.Error("run() inside grace period returned nil, want error")
	}

	stored, err := vans.Find(ctx, tx.ID)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if stored.Status != core.VANStatusApproved {
		t.Errorf("Status = %s, want approved", stored.Status)
	}
}

func TestRunDry(t *testing.T) {
	ctx := context.Background()
	w := New(newFakeVANStore(), van.NewMock(0), testLogger())

	if err := w.run(ctx); err == nil {
		t.Error("run() on empty queue returned nil, want error")
	}
}
