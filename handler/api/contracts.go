package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/zigaplabs/super-wallet/core"
)

type deployContractRequest struct {
	UserID   string          `json:"user_id" valid:"required"`
	Name     string          `json:"name" valid:"required"`
	Network  string          `json:"network"`
	Bytecode []byte          `json:"bytecode"`
	ABI      json.RawMessage `json:"abi"`
}

func (s *Server) deployContract(w http.ResponseWriter, r *http.Request) {
	var req deployContractRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		renderErr(w, fmt.Errorf("%w: %s", core.ErrInvalidArgument, err))
		return
	}

	if len(req.Bytecode) == 0 {
		renderErr(w, fmt.Errorf("%w: bytecode is empty", core.ErrInvalidArgument))
		return
	}

	address, txHash, err := s.chainz.DeployContract(r.Context(), req.Name, req.Bytecode)
	if err != nil {
		renderErr(w, err)
		return
	}

	network := req.Network
	if network == "" {
		network = "kwan-testnet"
	}

	contract := &core.SmartContract{
		UserID:  req.UserID,
		Name:    req.Name,
		Network: network,
		Address: address,
		TxHash:  txHash,
		ABI:     req.ABI,
		Status:  core.ContractStatusDeployed,
	}

	if err := s.contracts.Create(r.Context(), contract); err != nil {
		s.logger.Error("contracts.Create", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, contract)
}

func (s *Server) findContract(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	contract, err := s.contracts.Find(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, contract)
}

type callContractRequest struct {
	Method string   `json:"method"`
	Args   []string `json:"args"`
}

func (s *Server) callContract(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	var req callContractRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	contract, err := s.contracts.Find(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	result, err := s.chainz.CallContract(r.Context(), contract.Address, req.Method, req.Args)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"contract_id": contract.ID,
		"method":      req.Method,
		"result":      result,
	})
}

func (s *Server) listUserContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := s.contracts.ListByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		s.logger.Error("contracts.ListByUser", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"contracts": contracts})
}
