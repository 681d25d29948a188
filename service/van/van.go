package van

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
)

// NewMock returns a VANClient that approves everything and reports a
// transaction settled once settleAfter has passed since it was created.
func NewMock(settleAfter time.Duration) core.VANClient {
	return &mock{settleAfter: settleAfter}
}

type mock struct {
	settleAfter time.Duration
}

func (m *mock) Authorize(_ context.Context, merchant string, amount decimal.Decimal, currency string) (*core.VANApproval, error) {
	if merchant == "" {
		return nil, fmt.Errorf("%w: merchant is empty", core.ErrInvalidArgument)
	}

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", core.ErrInvalidArgument)
	}

	if currency == "" {
		return nil, fmt.Errorf("%w: currency is empty", core.ErrInvalidArgument)
	}

	id := uuid.New()
	code := binary.BigEndian.Uint32(id[:4]) % 100_000_000

	return &core.VANApproval{
		ExternalID:   id.String(),
		ApprovalCode: fmt.Sprintf("%08d", code),
		ApprovedAt:   time.Now(),
	}, nil
}

func (m *mock) SettlementStatus(_ context.Context, tx *core.VANTransaction) (*core.VANSettlement, error) {
	settledAt := tx.CreatedAt.Add(m.settleAfter)
	if time.Now().Before(settledAt) {
		return nil, nil
	}

	return &core.VANSettlement{
		ExternalID: tx.ExternalID,
		SettledAt:  settledAt,
	}, nil
}
