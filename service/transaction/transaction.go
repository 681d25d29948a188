package transaction

import (
	"context"
	"fmt"

	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(transactions core.TransactionStore, gen core.HashGenerator) core.TransactionService {
	return &service{
		transactions: transactions,
		gen:          gen,
	}
}

type service struct {
	transactions core.TransactionStore
	gen          core.HashGenerator
}

func (s *service) Record(ctx context.Context, tx *core.Transaction) (*core.Transaction, error) {
	if tx.UserID == "" {
		return nil, fmt.Errorf("%w: user id is empty", core.ErrInvalidArgument)
	}

	if !tx.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", core.ErrInvalidArgument)
	}

	if tx.Fee.IsNegative() {
		return nil, fmt.Errorf("%w: fee is negative", core.ErrInvalidArgument)
	}

	switch tx.TransactionType {
	case core.TransactionTypeSend, core.TransactionTypeReceive, core.TransactionTypePayment:
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", core.ErrInvalidArgument, tx.TransactionType)
	}

	if tx.Status == "" {
		tx.Status = core.TransactionStatusPending
	}

	if tx.TxHash == "" {
		tx.TxHash = s.gen.TxHash()
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		if store.IsErrDuplicate(err) {
			return nil, fmt.Errorf("%w: tx hash %s already recorded", core.ErrInvalidArgument, tx.TxHash)
		}

		return nil, err
	}

	return tx, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*core.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID, offset, limit)
}
