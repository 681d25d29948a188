package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type TransactionType string

const (
	TransactionTypeSend    TransactionType = "send"
	TransactionTypeReceive TransactionType = "receive"
	TransactionTypePayment TransactionType = "payment"
)

// Transaction is immutable once recorded except for the status and
// confirmed_at transition.
type Transaction struct {
	ID              uint64            `json:"id,omitempty"`
	UserID          string            `json:"user_id,omitempty"`
	FromAddress     string            `json:"from_address,omitempty"`
	ToAddress       string            `json:"to_address,omitempty"`
	AssetType       string            `json:"asset_type,omitempty"`
	Amount          decimal.Decimal   `json:"amount"`
	Fee             decimal.Decimal   `json:"fee"`
	TxHash          string            `json:"tx_hash,omitempty"`
	Status          TransactionStatus `json:"status,omitempty"`
	TransactionType TransactionType   `json:"transaction_type,omitempty"`
	CreatedAt       time.Time         `json:"created_at,omitempty"`
	ConfirmedAt     *time.Time        `json:"confirmed_at,omitempty"`
}

type TransactionStore interface {
	Create(ctx context.Context, tx *Transaction) error
	Find(ctx context.Context, id uint64) (*Transaction, error)
	FindHash(ctx context.Context, txHash string) (*Transaction, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*Transaction, error)
	ListSince(ctx context.Context, id uint64, limit int) ([]*Transaction, error)
	UpdateStatus(ctx context.Context, tx *Transaction, to TransactionStatus) error
}

type TransactionService interface {
	Record(ctx context.Context, tx *Transaction) (*Transaction, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*Transaction, error)
}
