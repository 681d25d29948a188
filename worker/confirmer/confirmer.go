package confirmer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

const (
	propertyConfirmOffset = "confirm_offset"
)

func New(
	transactions core.TransactionStore,
	properties core.PropertyStore,
	chainz core.ChainRPC,
	logger *slog.Logger,
) *Confirmer {
	return &Confirmer{
		transactions: transactions,
		properties:   properties,
		chainz:       chainz,
		logger:       logger.With("worker", "confirmer"),
	}
}

type Confirmer struct {
	transactions core.TransactionStore
	properties   core.PropertyStore
	chainz       core.ChainRPC
	logger       *slog.Logger
}

func (w *Confirmer) Run(ctx context.Context) error {
	w.logger.Info("confirmer start")

	for {
		dur := time.Second
		if w.run(ctx) == nil {
			dur = 500 * time.Millisecond
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
		}
	}
}

func (w *Confirmer) run(ctx context.Context) error {
	var offset uint64
	if err := w.properties.Get(ctx, propertyConfirmOffset, &offset); err != nil {
		w.logger.Error("properties.Get", "err", err)
		return err
	}

	const limit = 100
	txs, err := w.transactions.ListSince(ctx, offset, limit)
	if err != nil {
		w.logger.Error("transactions.ListSince", "err", err)
		return err
	}

	if len(txs) == 0 {
		return fmt.Errorf("no new transactions")
	}

	// the offset only moves past transactions that reached a terminal
	// status, anything unresolved is retried next round
	next := offset
	for _, tx := range txs {
		if err := w.confirm(ctx, tx); err != nil {
			break
		}

		next = tx.ID
	}

	if next <= offset {
		return fmt.Errorf("confirmations stalled at %d", offset)
	}

	if err := w.properties.Set(ctx, propertyConfirmOffset, next); err != nil {
		w.logger.Error("properties.Set", "err", err)
		return err
	}

	return nil
}

func (w *Confirmer) confirm(ctx context.Context, tx *core.Transaction) error {
	if tx.Status != core.TransactionStatusPending {
		return nil
	}

	receipt, err := w.chainz.TransactionReceipt(ctx, tx.TxHash)
	if err != nil {
		w.logger.Error("chainz.TransactionReceipt", "err", err, "tx", tx.ID)
		return err
	}

	if receipt.Status == core.TransactionStatusPending {
		return fmt.Errorf("tx %d not mined yet", tx.ID)
	}

	if err := w.transactions.UpdateStatus(ctx, tx, receipt.Status); err != nil {
		if store.IsErrOptimisticLock(err) {
			return nil
		}

		w.logger.Error("transactions.UpdateStatus", "err", err, "tx", tx.ID)
		return err
	}

	w.logger.Info("transaction confirmed", "tx", tx.ID, "status", receipt.Status, "block", receipt.BlockNumber)
	return nil
}
