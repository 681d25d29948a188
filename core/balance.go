package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type WalletBalance struct {
	ID        uint64          `json:"id,omitempty"`
	Address   string          `json:"address,omitempty"`
	AssetType string          `json:"asset_type,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	Version   uint64          `json:"-"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

type BalanceStore interface {
	Find(ctx context.Context, address, assetType string) (*WalletBalance, error)
	ListAddress(ctx context.Context, address string) ([]*WalletBalance, error)
	Create(ctx context.Context, balance *WalletBalance) error
	// Update writes next as the new balance guarded by balance.Version.
	Update(ctx context.Context, balance *WalletBalance, next decimal.Decimal) error
}

// LedgerService owns every balance mutation. Rows are created lazily on first
// credit; a debit below zero fails with InsufficientBalanceError and writes
// nothing.
type LedgerService interface {
	ApplyDelta(ctx context.Context, address, assetType string, delta decimal.Decimal) (decimal.Decimal, error)
	BalanceOf(ctx context.Context, address, assetType string) (decimal.Decimal, error)
	Balances(ctx context.Context, address string) ([]*WalletBalance, error)
}
