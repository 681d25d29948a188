package core

import (
	"context"
	"encoding/json"
	"time"
)

type DIDRecord struct {
	ID        uint64          `json:"id,omitempty"`
	UserID    string          `json:"user_id,omitempty"`
	DID       string          `json:"did,omitempty"`
	Document  json.RawMessage `json:"document,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

type DIDStore interface {
	Create(ctx context.Context, record *DIDRecord) error
	Find(ctx context.Context, did string) (*DIDRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*DIDRecord, error)
}
