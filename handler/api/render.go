package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oxtoacart/bpool"
	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

var bufferPool = bpool.NewBufferPool(64)

func renderJSON(w http.ResponseWriter, status int, v any) {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorBody struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func renderErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound) || store.IsErrNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, core.ErrInsufficientBalance):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrStorageUnavailable) || store.IsErrUnavailable(err):
		status = http.StatusServiceUnavailable
	case store.IsErrDuplicate(err):
		status = http.StatusBadRequest
	}

	renderJSON(w, status, errorBody{Code: status, Msg: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body", core.ErrInvalidArgument)
	}

	return nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed decimal %q", core.ErrInvalidArgument, s)
	}

	return d, nil
}

func parseID(r *http.Request, key string) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed %s", core.ErrInvalidArgument, key)
	}

	return id, nil
}

func (s *Server) pagination(r *http.Request) (offset, limit int) {
	q := r.URL.Query()
	offset, _ = strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	limit, _ = strconv.Atoi(q.Get("limit"))
	if limit <= 0 || limit > s.cfg.PageLimit {
		limit = s.cfg.PageLimit
	}

	return offset, limit
}
