package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zigaplabs/super-wallet/core"
)

type registerDIDRequest struct {
	UserID string `json:"user_id"`
}

func (s *Server) registerDID(w http.ResponseWriter, r *http.Request) {
	var req registerDIDRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	record, err := s.identityz.RegisterDID(r.Context(), req.UserID)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, record)
}

func (s *Server) resolveDID(w http.ResponseWriter, r *http.Request) {
	record, err := s.identityz.ResolveDID(r.Context(), chi.URLParam(r, "did"))
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, record)
}

func (s *Server) listUserDIDs(w http.ResponseWriter, r *http.Request) {
	records, err := s.dids.ListByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		s.logger.Error("dids.ListByUser", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"dids": records})
}

type issueCredentialRequest struct {
	UserID         string          `json:"user_id"`
	DID            string          `json:"did"`
	CredentialType string          `json:"credential_type"`
	Issuer         string          `json:"issuer"`
	Payload        json.RawMessage `json:"payload"`
}

func (s *Server) issueCredential(w http.ResponseWriter, r *http.Request) {
	var req issueCredentialRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	credential, err := s.identityz.IssueCredential(r.Context(), &core.Credential{
		UserID:         req.UserID,
		DID:            req.DID,
		CredentialType: req.CredentialType,
		Issuer:         req.Issuer,
		Payload:        req.Payload,
	})
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, credential)
}

func (s *Server) findCredential(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	credential, err := s.credentials.Find(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, credential)
}

func (s *Server) revokeCredential(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	credential, err := s.identityz.RevokeCredential(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, credential)
}

func (s *Server) listUserCredentials(w http.ResponseWriter, r *http.Request) {
	credentials, err := s.credentials.ListByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		s.logger.Error("credentials.ListByUser", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"credentials": credentials})
}

type submitDocumentRequest struct {
	UserID   string `json:"user_id"`
	Kind     string `json:"kind"`
	FileName string `json:"file_name"`
	Content  []byte `json:"content"`
}

func (s *Server) submitDocument(w http.ResponseWriter, r *http.Request) {
	var req submitDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, err)
		return
	}

	doc, err := s.identityz.SubmitDocument(r.Context(), &core.Document{
		UserID:   req.UserID,
		Kind:     req.Kind,
		FileName: req.FileName,
	}, req.Content)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, doc)
}

func (s *Server) findDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		renderErr(w, err)
		return
	}

	doc, err := s.documents.Find(r.Context(), id)
	if err != nil {
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, doc)
}

func (s *Server) listUserDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.ListByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		s.logger.Error("documents.ListByUser", "err", err)
		renderErr(w, err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{"documents": docs})
}
