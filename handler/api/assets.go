package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) quotePrice(w http.ResponseWriter, r *http.Request) {
	price, err := s.pricez.Quote(r.Context(), chi.URLParam(r, "asset"))
	if err != nil {
		s.logger.Error("pricez.Quote", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, price)
}
