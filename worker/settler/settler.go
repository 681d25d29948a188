package settler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
	"golang.org/x/sync/errgroup"
)

func New(
	vans core.VANStore,
	vanz core.VANClient,
	logger *slog.Logger,
) *Settler {
	return &Settler{
		vans:   vans,
		vanz:   vanz,
		logger: logger.With("worker", "settler"),
	}
}

type Settler struct {
	vans   core.VANStore
	vanz   core.VANClient
	logger *slog.Logger
}

func (w *Settler) Run(ctx context.Context) error {
	w.logger.Info("settler start")

	for {
		dur := 10 * time.Second
		if w.run(ctx) == nil {
			dur = time.Second
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
		}
	}
}

func (w *Settler) run(ctx context.Context) error {
	const limit = 64
	txs, err := w.vans.ListStatus(ctx, core.VANStatusApproved, limit)
	if err != nil {
		w.logger.Error("vans.ListStatus", "err", err)
		return err
	}

	if len(txs) == 0 {
		return fmt.Errorf("approved van transactions dry")
	}

	var g errgroup.Group
	g.SetLimit(10)

	var settled atomic.Int64
	for idx := range txs {
		tx := txs[idx]
		g.Go(func() error {
			ok, err := w.settle(ctx, tx)
			if ok {
				settled.Add(1)
			}

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if settled.Load() == 0 {
		return fmt.Errorf("no settlements ready")
	}

	return nil
}

func (w *Settler) settle(ctx context.Context, tx *core.VANTransaction) (bool, error) {
	settlement, err := w.vanz.SettlementStatus(ctx, tx)
	if err != nil {
		w.logger.Error("vanz.SettlementStatus", "err", err, "van", tx.ID)
		return false, err
	}

	if settlement == nil {
		return false, nil
	}

	if err := w.vans.MarkSettled(ctx, tx, settlement.SettledAt); err != nil {
		if store.IsErrOptimisticLock(err) {
			return false, nil
		}

		w.logger.Error("vans.MarkSettled", "err", err, "van", tx.ID)
		return false, err
	}

	w.logger.Info("van transaction settled", "van", tx.ID, "external", tx.ExternalID)
	return true, nil
}
