package disburser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Asset string `valid:"required"`
}

func New(
	refunds core.RefundStore,
	users core.UserStore,
	transactions core.TransactionStore,
	ledgerz core.LedgerService,
	gen core.HashGenerator,
	logger *slog.Logger,
	cfg Config,
) *Disburser {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Disburser{
		refunds:      refunds,
		users:        users,
		transactions: transactions,
		ledgerz:      ledgerz,
		gen:          gen,
		logger:       logger.With("worker", "disburser"),
		cfg:          cfg,
	}
}

type Disburser struct {
	refunds      core.RefundStore
	users        core.UserStore
	transactions core.TransactionStore
	ledgerz      core.LedgerService
	gen          core.HashGenerator
	logger       *slog.Logger
	cfg          Config
}

func (w *Disburser) Run(ctx context.Context) error {
	w.logger.Info("disburser start")

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

func (w *Disburser) run(ctx context.Context) error {
	const limit = 64
	refunds, err := w.refunds.ListStatus(ctx, core.RefundStatusApproved, limit)
	if err != nil {
		w.logger.Error("refunds.ListStatus", "err", err)
		return err
	}

	if len(refunds) == 0 {
		return fmt.Errorf("approved refunds dry")
	}

	var g errgroup.Group
	g.SetLimit(10)

	for idx := range refunds {
		refund := refunds[idx]
		g.Go(func() error {
			return w.handleRefund(ctx, refund)
		})
	}

	return g.Wait()
}

func (w *Disburser) handleRefund(ctx context.Context, refund *core.TaxRefund) error {
	logger := w.logger.With("refund", refund.ID)

	logger.Info("handle refund", "user", refund.UserID, "amount", refund.RefundAmount)

	if refund.RefundAmount.IsPositive() {
		user, err := w.users.Find(ctx, refund.UserID)
		if err != nil {
			logger.Error("users.Find", "err", err)
			return err
		}

		tx := &core.Transaction{
			UserID:          refund.UserID,
			ToAddress:       user.WalletAddress,
			AssetType:       w.cfg.Asset,
			Amount:          refund.RefundAmount,
			TxHash:          w.gen.DeriveTxHash(fmt.Sprintf("refund-%d", refund.ID)),
			Status:          core.TransactionStatusCompleted,
			TransactionType: core.TransactionTypeReceive,
		}

		// a replayed refund hits the same derived hash; the credit
		// already went out then
		if err := w.transactions.Create(ctx, tx); err == nil {
			if _, err := w.ledgerz.ApplyDelta(ctx, user.WalletAddress, w.cfg.Asset, refund.RefundAmount); err != nil {
				logger.Error("ledgerz.ApplyDelta", "err", err)
				return err
			}

			logger.Debug("refund credited", "address", user.WalletAddress)
		} else if !store.IsErrDuplicate(err) {
			logger.Error("transactions.Create", "err", err)
			return err
		}
	}

	if err := w.refunds.UpdateStatus(ctx, refund, core.RefundStatusCompleted); err != nil {
		logger.Error("refunds.UpdateStatus", "err", err)
		return err
	}

	logger.Debug("refund completed")
	return nil
}
