package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type VANStatus string

const (
	VANStatusApproved VANStatus = "approved"
	VANStatusSettled  VANStatus = "settled"
)

type VANTransaction struct {
	ID           uint64          `json:"id,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	ExternalID   string          `json:"external_id,omitempty"`
	MerchantName string          `json:"merchant_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency,omitempty"`
	ApprovalCode string          `json:"approval_code,omitempty"`
	Status       VANStatus       `json:"status,omitempty"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
	SettledAt    *time.Time      `json:"settled_at,omitempty"`
}

type VANApproval struct {
	ExternalID   string    `json:"external_id,omitempty"`
	ApprovalCode string    `json:"approval_code,omitempty"`
	ApprovedAt   time.Time `json:"approved_at,omitempty"`
}

type VANSettlement struct {
	ExternalID string    `json:"external_id,omitempty"`
	SettledAt  time.Time `json:"settled_at,omitempty"`
}

type VANStore interface {
	Create(ctx context.Context, tx *VANTransaction) error
	Find(ctx context.Context, id uint64) (*VANTransaction, error)
	ListByUser(ctx context.Context, userID string) ([]*VANTransaction, error)
	ListStatus(ctx context.Context, status VANStatus, limit int) ([]*VANTransaction, error)
	MarkSettled(ctx context.Context, tx *VANTransaction, settledAt time.Time) error
}

// VANClient talks to the card payment network. The network reports settlement
// some time after authorization; SettlementStatus returns nil until then.
type VANClient interface {
	Authorize(ctx context.Context, merchant string, amount decimal.Decimal, currency string) (*VANApproval, error)
	SettlementStatus(ctx context.Context, tx *VANTransaction) (*VANSettlement, error)
}
