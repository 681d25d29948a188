package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.ledgerz.Balances(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		s.logger.Error("ledgerz.Balances", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"balances": balances})
}

func (s *Server) findBalance(w http.ResponseWriter, r *http.Request) {
	var (
		address = chi.URLParam(r, "address")
		asset   = chi.URLParam(r, "asset")
	)

	balance, err := s.ledgerz.BalanceOf(r.Context(), address, asset)
	if err != nil {
		s.logger.Error("ledgerz.BalanceOf", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"address":    address,
		"asset_type": asset,
		"balance":    balance,
	})
}
