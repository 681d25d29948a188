package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	AssetType string          `json:"asset_type,omitempty"`
	Currency  string          `json:"currency,omitempty"`
	Price     decimal.Decimal `json:"price"`
	QuotedAt  time.Time       `json:"quoted_at,omitempty"`
}

type PriceFeed interface {
	Quote(ctx context.Context, assetType string) (*AssetPrice, error)
}
