package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
)

type fakeTransactionStore struct {
	nextID uint64
	byHash map[string]*core.Transaction
	byID   map[uint64]*core.Transaction
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{
		byHash: map[string]*core.Transaction{},
		byID:   map[uint64]*core.Transaction{},
	}
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *core.Transaction) error {
	if _, ok := f.byHash[tx.TxHash]; ok {
		return &mysql.MySQLError{Number: 1062, Message: "duplicate entry"}
	}

	f.nextID++
	tx.ID = f.nextID
	clone := *tx
	f.byHash[tx.TxHash] = &clone
	f.byID[tx.ID] = &clone
	return nil
}

func (f *fakeTransactionStore) Find(_ context.Context, id uint64) (*core.Transaction, error) {
	tx, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *tx
	return &clone, nil
}

func (f *fakeTransactionStore) FindHash(_ context.Context, txHash string) (*core.Transaction, error) {
	tx, ok := f.byHash[txHash]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *tx
	return &clone, nil
}

func (f *fakeTransactionStore) ListByUser(_ context.Context, userID string, offset, limit int) ([]*core.Transaction, error) {
	var txs []*core.Transaction
	for id := f.nextID; id > 0; id-- {
		tx, ok := f.byID[id]
		if !ok || tx.UserID != userID {
			continue
		}

		clone := *tx
		txs = append(txs, &clone)
	}

	if offset >= len(txs) {
		return nil, nil
	}

	txs = txs[offset:]
	if len(txs) > limit {
		txs = txs[:limit]
	}

	return txs, nil
}

func (f *fakeTransactionStore) ListSince(_ context.Context, id uint64, limit int) ([]*core.Transaction, error) {
	var txs []*core.Transaction
	for next := id + 1; next <= f.nextID && len(txs) < limit; next++ {
		if tx, ok := f.byID[next]; ok {
			clone := *tx
			txs = append(txs, &clone)
		}
	}

	return txs, nil
}

func (f *fakeTransactionStore) UpdateStatus(_ context.Context, tx *core.Transaction, to core.TransactionStatus) error {
	stored, ok := f.byID[tx.ID]
	if !ok || stored.Status != tx.Status {
		return errors.New("optimistic lock failed")
	}

	stored.Status = to
	tx.Status = to
	return nil
}

type seqGenerator struct {
	n int
}

func (g *seqGenerator) TxHash() string {
	g.n++
	return fmt.Sprintf("0x%064x", g.n)
}

func (g *seqGenerator) Address() string {
	g.n++
	return fmt.Sprintf("0x%040x", g.n)
}

func (g *seqGenerator) DeriveTxHash(seed string) string {
	return fmt.Sprintf("0x%064x", len(seed))
}

func newDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestRecordAssignsHash(t *testing.T) {
	ctx := context.Background()
	svc := New(newFakeTransactionStore(), &seqGenerator{})

	tx, err := svc.Record(ctx, &core.Transaction{
		UserID:          "user-1",
		ToAddress:       "addr1",
		AssetType:       "XP",
		Amount:          newDecimal("10"),
		TransactionType: core.TransactionTypeReceive,
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if tx.TxHash == "" {
		t.Error("Record() left tx hash empty")
	}

	if tx.Status != core.TransactionStatusPending {
		t.Errorf("Status = %s, want pending", tx.Status)
	}

	if tx.ID == 0 {
		t.Error("Record() left id unset")
	}
}

func TestRecordKeepsExplicitHash(t *testing.T) {
	ctx := context.Background()
	svc := New(newFakeTransactionStore(), &seqGenerator{})

	want := "0x" + strings.Repeat("ab", 32)
	tx, err := svc.Record(ctx, &core.Transaction{
		UserID:          "user-1",
		ToAddress:       "addr1",
		AssetType:       "XP",
		Amount:          newDecimal("10"),
		TxHash:          want,
		TransactionType: core.TransactionTypeReceive,
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if tx.TxHash != want {
		t.Errorf("TxHash = %s, want %s", tx.TxHash, want)
	}
}

func TestRecordDuplicateHash(t *testing.T) {
	ctx := context.Background()
	txs := newFakeTransactionStore()
	svc := New(txs, &seqGenerator{})

	record := func() error {
		_, err := svc.Record(ctx, &core.Transaction{
			UserID:          "user-1",
			ToAddress:       "addr1",
			AssetType:       "XP",
			Amount:          newDecimal("10"),
			TxHash:          "0x" + strings.Repeat("11", 32),
			TransactionType: core.TransactionTypeReceive,
		})
		return err
	}

	if err := record(); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	err := record()
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("Record() duplicate error = %v, want ErrInvalidArgument", err)
	}

	if len(txs.byID) != 1 {
		t.Errorf("duplicate record mutated store, have %d rows, want 1", len(txs.byID))
	}
}

func TestRecordValidates(t *testing.T) {
	ctx := context.Background()
	svc := New(newFakeTransactionStore(), &seqGenerator{})

	tests := []struct {
		name string
		tx   *core.Transaction
	}{
		{
			name: "missing user",
			tx: &core.Transaction{
				Amount:          newDecimal("1"),
				TransactionType: core.TransactionTypeSend,
			},
		},
		{
			name: "zero amount",
			tx: &core.Transaction{
				UserID:          "user-1",
				Amount:          decimal.Zero,
				TransactionType: core.TransactionTypeSend,
			},
		},
		{
			name: "negative amount",
			tx: &core.Transaction{
				UserID:          "user-1",
				Amount:          newDecimal("-1"),
				TransactionType: core.TransactionTypeSend,
			},
		},
		{
			name: "negative fee",
			tx: &core.Transaction{
				UserID:          "user-1",
				Amount:          newDecimal("1"),
				Fee:             newDecimal("-1"),
				TransactionType: core.TransactionTypeSend,
			},
		},
		{
			name: "unknown type",
			tx: &core.Transaction{
				UserID:          "user-1",
				Amount:          newDecimal("1"),
				TransactionType: core.TransactionType("swap"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Record(ctx, tt.tx); !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Record() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestListByUserMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc := New(newFakeTransactionStore(), &seqGenerator{})

	for i := 0; i < 3; i++ {
		if _, err := svc.Record(ctx, &core.Transaction{
			UserID:          "user-1",
			ToAddress:       "addr1",
			AssetType:       "XP",
			Amount:          newDecimal("10"),
			TransactionType: core.TransactionTypeReceive,
		}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	txs, err := svc.ListByUser(ctx, "user-1", 0, 10)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}

	if len(txs) != 3 {
		t.Fatalf("ListByUser() returned %d txs, want 3", len(txs))
	}

	for i := 1; i < len(txs); i++ {
		if txs[i-1].ID <= txs[i].ID {
			t.Errorf("ListByUser() not most recent first: %d before %d", txs[i-1].ID, txs[i].ID)
		}
	}
}
