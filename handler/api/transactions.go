package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
)

type createTransactionRequest struct {
	UserID          string `json:"user_id"`
	FromAddress     string `json:"from_address"`
	ToAddress       string `json:"to_address"`
	AssetType       string `json:"asset_type"`
	Amount          string `json:"amount"`
	Fee             string `json:"fee"`
	TxHash          string `json:"tx_hash"`
	TransactionType string `json:"transaction_type"`
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	amount := generic.Try(decimal.NewFromString(req.Amount))
	if !amount.IsPositive() || amount.Truncate(8).LessThan(amount) {
		renderErr(w, fmt.Errorf("%w: invalid amount", core.ErrInvalidArgument))
		return
	}

	fee, err := parseDecimal(req.Fee)
	if err != nil {
		renderErr(w, err)
		return
	}

	if fee.IsNegative() || fee.Truncate(8).LessThan(fee) {
		renderErr(w, fmt.Errorf("%w: invalid fee", core.ErrInvalidArgument))
		return
	}

	assetType := req.AssetType
	if assetType == "" {
		assetType = s.cfg.DefaultAsset
	}

	tx := &core.Transaction{
		UserID:          req.UserID,
		FromAddress:     req.FromAddress,
		ToAddress:       req.ToAddress,
		AssetType:       assetType,
		Amount:          amount,
		Fee:             fee,
		TxHash:          req.TxHash,
		TransactionType: core.TransactionType(req.TransactionType),
	}

	switch tx.TransactionType {
	case core.TransactionTypeSend, core.TransactionTypePayment:
		if tx.FromAddress == "" {
			renderErr(w, fmt.Errorf("%w: from_address is required", core.ErrInvalidArgument))
			return
		}
	case core.TransactionTypeReceive:
		if tx.ToAddress == "" {
			renderErr(w, fmt.Errorf("%w: to_address is required", core.ErrInvalidArgument))
			return
		}
	default:
		renderErr(w, fmt.Errorf("%w: unknown transaction type %q", core.ErrInvalidArgument, req.TransactionType))
		return
	}

	key := tx.TxHash
	if key == "" {
		key = uuid.NewString()
	}

	ctx := r.Context()
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return tx, s.recordAndApply(ctx, tx)
	})
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, v.(*core.Transaction))
}

// recordAndApply records the transaction first so a duplicate hash fails
// before any balance moves, then mutates the single address the transfer
// type points at.
func (s *Server) recordAndApply(ctx context.Context, tx *core.Transaction) error {
	logger := s.logger.With("tx_hash", tx.TxHash)

	if _, err := s.transactionz.Record(ctx, tx); err != nil {
		logger.Error("transactionz.Record", "err", err)
		return err
	}

	var (
		address string
		delta   decimal.Decimal
	)

	switch tx.TransactionType {
	case core.TransactionTypeSend, core.TransactionTypePayment:
		address = tx.FromAddress
		delta = tx.Amount.Add(tx.Fee).Neg()
	case core.TransactionTypeReceive:
		address = tx.ToAddress
		delta = tx.Amount
	}

	if _, err := s.ledgerz.ApplyDelta(ctx, address, tx.AssetType, delta); err != nil {
		logger.Error("ledgerz.ApplyDelta", "err", err)

		if uerr := s.transactions.UpdateStatus(ctx, tx, core.TransactionStatusFailed); uerr != nil {
			logger.Error("transactions.UpdateStatus", "err", uerr)
		}

		return err
	}

	return nil
}

func (s *Server) findTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	tx, err := s.transactions.Find(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, tx)
}

func (s *Server) findTransactionHash(w http.ResponseWriter, r *http.Request) {
	tx, err := s.transactions.FindHash(r.Context(), chi.URLParam(r, "tx_hash"))
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, tx)
}

func (s *Server) listUserTransactions(w http.ResponseWriter, r *http.Request) {
	offset, limit := s.pagination(r)

	txs, err := s.transactionz.ListByUser(r.Context(), chi.URLParam(r, "user_id"), offset, limit)
	if err != nil {
		s.logger.Error("transactionz.ListByUser", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}
