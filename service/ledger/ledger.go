package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

// maxRetries bounds the compare-and-swap loop. Contention on a single
// address is already serialized by the per-address mutex, so retries only
// fire when another process mutates the same row.
const maxRetries = 5

func New(balances core.BalanceStore) core.LedgerService {
	return &service{balances: balances}
}

type service struct {
	balances core.BalanceStore

	mux sync.Map
}

func (s *service) lock(address, assetType string) *sync.Mutex {
	mu, _ := s.mux.LoadOrStore(address+"/"+assetType, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *service) ApplyDelta(ctx context.Context, address, assetType string, delta decimal.Decimal) (decimal.Decimal, error) {
	if address == "" {
		return decimal.Zero, fmt.Errorf("%w: address is empty", core.ErrInvalidArgument)
	}

	if assetType == "" {
		return decimal.Zero, fmt.Errorf("%w: asset type is empty", core.ErrInvalidArgument)
	}

	mu := s.lock(address, assetType)
	mu.Lock()
	defer mu.Unlock()

	var err error
	for i := 0; i < maxRetries; i++ {
		var next decimal.Decimal
		next, err = s.applyDelta(ctx, address, assetType, delta)
		if store.IsErrOptimisticLock(err) || store.IsErrDuplicate(err) {
			continue
		}

		return next, err
	}

	return decimal.Zero, err
}

func (s *service) applyDelta(ctx context.Context, address, assetType string, delta decimal.Decimal) (decimal.Decimal, error) {
	balance, err := s.balances.Find(ctx, address, assetType)
	if store.IsErrNotFound(err) {
		if delta.IsNegative() {
			return decimal.Zero, &core.InsufficientBalanceError{
				Balance:   decimal.Zero,
				Requested: delta.Neg(),
			}
		}

		if delta.IsZero() {
			return decimal.Zero, nil
		}

		balance = &core.WalletBalance{
			Address:   address,
			AssetType: assetType,
			Balance:   delta,
		}
		if err := s.balances.Create(ctx, balance); err != nil {
			return decimal.Zero, err
		}

		return balance.Balance, nil
	} else if err != nil {
		return decimal.Zero, err
	}

	next := balance.Balance.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, &core.InsufficientBalanceError{
			Balance:   balance.Balance,
			Requested: delta.Neg(),
		}
	}

	if err := s.balances.Update(ctx, balance, next); err != nil {
		return decimal.Zero, err
	}

	return next, nil
}

func (s *service) BalanceOf(ctx context.Context, address, assetType string) (decimal.Decimal, error) {
	balance, err := s.balances.Find(ctx, address, assetType)
	if store.IsErrNotFound(err) {
		return decimal.Zero, nil
	} else if err != nil {
		return decimal.Zero, err
	}

	return balance.Balance, nil
}

func (s *service) Balances(ctx context.Context, address string) ([]*core.WalletBalance, error) {
	return s.balances.ListAddress(ctx, address)
}
