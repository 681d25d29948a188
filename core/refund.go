package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusApproved  RefundStatus = "approved"
	RefundStatusRejected  RefundStatus = "rejected"
	RefundStatusCompleted RefundStatus = "completed"
)

type RefundAction string

const (
	RefundActionApprove RefundAction = "approve"
	RefundActionReject  RefundAction = "reject"
)

// TaxRefund keeps the refund_amount computed at submission; it is never
// recomputed afterwards.
type TaxRefund struct {
	ID           uint64          `json:"id,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	GrossIncome  decimal.Decimal `json:"gross_income"`
	TaxPaid      decimal.Decimal `json:"tax_paid"`
	Deductions   decimal.Decimal `json:"deductions"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	Status       RefundStatus    `json:"status,omitempty"`
	SubmittedAt  time.Time       `json:"submitted_at,omitempty"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
}

type RefundStore interface {
	Create(ctx context.Context, refund *TaxRefund) error
	Find(ctx context.Context, id uint64) (*TaxRefund, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*TaxRefund, error)
	ListStatus(ctx context.Context, status RefundStatus, limit int) ([]*TaxRefund, error)
	UpdateStatus(ctx context.Context, refund *TaxRefund, to RefundStatus) error
}

type RefundService interface {
	Submit(ctx context.Context, userID string, grossIncome, taxPaid, deductions decimal.Decimal) (*TaxRefund, error)
	Process(ctx context.Context, id uint64, action RefundAction) (*TaxRefund, error)
}
