package core

import (
	"context"
	"encoding/json"
	"time"
)

type CredentialStatus string

const (
	CredentialStatusActive  CredentialStatus = "active"
	CredentialStatusRevoked CredentialStatus = "revoked"
)

type Credential struct {
	ID             uint64           `json:"id,omitempty"`
	UserID         string           `json:"user_id,omitempty"`
	DID            string           `json:"did,omitempty"`
	CredentialType string           `json:"credential_type,omitempty"`
	Issuer         string           `json:"issuer,omitempty"`
	Payload        json.RawMessage  `json:"payload,omitempty"`
	Status         CredentialStatus `json:"status,omitempty"`
	IssuedAt       time.Time        `json:"issued_at,omitempty"`
	RevokedAt      *time.Time       `json:"revoked_at,omitempty"`
}

type CredentialStore interface {
	Create(ctx context.Context, credential *Credential) error
	Find(ctx context.Context, id uint64) (*Credential, error)
	ListByUser(ctx context.Context, userID string) ([]*Credential, error)
	UpdateStatus(ctx context.Context, credential *Credential, to CredentialStatus) error
}
