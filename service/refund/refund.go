package refund

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(refunds core.RefundStore, taxes core.TaxService) core.RefundService {
	return &service{
		refunds: refunds,
		taxes:   taxes,
	}
}

type service struct {
	refunds core.RefundStore
	taxes   core.TaxService
}

func (s *service) Submit(ctx context.Context, userID string, grossIncome, taxPaid, deductions decimal.Decimal) (*core.TaxRefund, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is empty", core.ErrInvalidArgument)
	}

	estimate, err := s.taxes.Estimate(grossIncome, taxPaid, deductions)
	if err != nil {
		return nil, err
	}

	refund := &core.TaxRefund{
		UserID:       userID,
		GrossIncome:  estimate.GrossIncome,
		TaxPaid:      estimate.TaxPaid,
		Deductions:   estimate.Deductions,
		RefundAmount: estimate.RefundAmount,
		Status:       core.RefundStatusPending,
	}

	if err := s.refunds.Create(ctx, refund); err != nil {
		return nil, err
	}

	return refund, nil
}

func (s *service) Process(ctx context.Context, id uint64, action core.RefundAction) (*core.TaxRefund, error) {
	var to core.RefundStatus
	switch action {
	case core.RefundActionApprove:
		to = core.RefundStatusApproved
	case core.RefundActionReject:
		to = core.RefundStatusRejected
	default:
		return nil, fmt.Errorf("%w: unknown action %q", core.ErrInvalidArgument, action)
	}

	refund, err := s.refunds.Find(ctx, id)
	if store.IsErrNotFound(err) {
		return nil, fmt.Errorf("%w: refund %d", core.ErrNotFound, id)
	} else if err != nil {
		return nil, err
	}

	if refund.Status != core.RefundStatusPending {
		return nil, fmt.Errorf("%w: refund %d is %s", core.ErrInvalidTransition, id, refund.Status)
	}

	if err := s.refunds.UpdateStatus(ctx, refund, to); err != nil {
		if store.IsErrOptimisticLock(err) {
			return nil, fmt.Errorf("%w: refund %d already processed", core.ErrInvalidTransition, id)
		}

		return nil, err
	}

	return refund, nil
}
