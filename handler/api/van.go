package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
)

type createVANTransactionRequest struct {
	UserID       string `json:"user_id"`
	MerchantName string `json:"merchant_name"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
}

func (s *Server) createVANTransaction(w http.ResponseWriter, r *http.Request) {
	var req createVANTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	if req.UserID == "" {
		renderErr(w, fmt.Errorf("%w: user_id is required", core.ErrInvalidArgument))
		return
	}

	amount := generic.Try(decimal.NewFromString(req.Amount))
	if !amount.IsPositive() {
		renderErr(w, fmt.Errorf("%w: invalid amount", core.ErrInvalidArgument))
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "KRW"
	}

	approval, err := s.vanz.Authorize(r.Context(), req.MerchantName, amount, currency)
	if err != nil {
		renderErr(w, err)
		return
	}

	tx := &core.VANTransaction{
		UserID:       req.UserID,
		ExternalID:   approval.ExternalID,
		MerchantName: req.MerchantName,
		Amount:       amount,
		Currency:     currency,
		ApprovalCode: approval.ApprovalCode,
		Status:       core.VANStatusApproved,
	}

	if err := s.vans.Create(r.Context(), tx); err != nil {
		s.logger.Error("vans.Create", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, tx)
}

func (s *Server) findVANTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	tx, err := s.vans.Find(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, tx)
}

func (s *Server) listUserVANTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.vans.ListByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		s.logger.Error("vans.ListByUser", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"van_transactions": txs})
}
