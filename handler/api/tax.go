package api

import (
	"net/http"
)

type estimateTaxRequest struct {
	GrossIncome string `json:"gross_income"`
	TaxPaid     string `json:"tax_paid"`
	Deductions  string `json:"deductions"`
}

func (s *Server) estimateTax(w http.ResponseWriter, r *http.Request) {
	var req estimateTaxRequest
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

	estimate, err := s.taxz.Estimate(grossIncome, taxPaid, deductions)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, estimate)
}
