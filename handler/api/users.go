package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

type createUserRequest struct {
	Name        string `json:"name" valid:"required"`
	Email       string `json:"email" valid:"email,required"`
	PhoneNumber string `json:"phone_number"`
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		renderErr(w, fmt.Errorf("%w: %s", core.ErrInvalidArgument, err))
		return
	}

	user := &core.User{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         strings.ToLower(req.Email),
		PhoneNumber:   req.PhoneNumber,
		WalletAddress: s.gen.Address(),
	}

	if err := s.users.Create(r.Context(), user); err != nil {
		if store.IsErrDuplicate(err) {
			renderErr(w, fmt.Errorf("%w: email already registered", core.ErrInvalidArgument))
			return
		}

		s.logger.Error("users.Create", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, user)
}

func (s *Server) findUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Find(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, user)
}

func (s *Server) listUserBalances(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Find(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		renderErr(w, err)
		return
	}

	balances, err := s.ledgerz.Balances(r.Context(), user.WalletAddress)
	if err != nil {
		s.logger.Error("ledgerz.Balances", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"address":  user.WalletAddress,
		"balances": balances,
	})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	offset, limit := s.pagination(r)

	users, err := s.users.List(r.Context(), offset, limit)
	if err != nil {
		s.logger.Error("users.List", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"users": users})
}
