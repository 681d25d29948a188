package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zigaplabs/super-wallet/core"
)

type submitRefundRequest struct {
	UserID      string `json:"user_id"`
	GrossIncome string `json:"gross_income"`
	TaxPaid     string `json:"tax_paid"`
	Deductions  string `json:"deductions"`
}

func (s *Server) submitRefund(w http.ResponseWriter, r *http.Request) {
	var req submitRefundRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	grossIncome, err := parseDecimal(req.GrossIncome)
	if err != nil {
		renderErr(w, err)
		return
	}

	taxPaid, err := parseDecimal(req.TaxPaid)
	if err != nil {
		renderErr(w, err)
		return
	}

	deductions, err := parseDecimal(req.Deductions)
	if err != nil {
		renderErr(w, err)
		return
	}

	refund, err := s.refundz.Submit(r.Context(), req.UserID, grossIncome, taxPaid, deductions)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, refund)
}

func (s *Server) findRefund(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	refund, err := s.refunds.Find(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, refund)
}

type processRefundRequest struct {
	Action string `json:"action"`
}

func (s *Server) processRefund(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	var req processRefundRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	refund, err := s.refundz.Process(r.Context(), id, core.RefundAction(req.Action))
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, refund)
}

func (s *Server) listUserRefunds(w http.ResponseWriter, r *http.Request) {
	offset, limit := s.pagination(r)

	refunds, err := s.refunds.ListByUser(r.Context(), chi.URLParam(r, "user_id"), offset, limit)
	if err != nil {
		s.logger.Error("refunds.ListByUser", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"refunds": refunds})
}
