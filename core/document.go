package core

import (
	"context"
	"time"
)

type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusExtracted DocumentStatus = "extracted"
	DocumentStatusFailed    DocumentStatus = "failed"
)

type DocumentFields map[string]string

type Document struct {
	ID          uint64         `json:"id,omitempty"`
	UserID      string         `json:"user_id,omitempty"`
	Kind        string         `json:"kind,omitempty"`
	FileName    string         `json:"file_name,omitempty"`
	ContentHash string         `json:"content_hash,omitempty"`
	Fields      DocumentFields `json:"fields,omitempty"`
	Status      DocumentStatus `json:"status,omitempty"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
	ProcessedAt *time.Time     `json:"processed_at,omitempty"`
}

type DocumentStore interface {
	Create(ctx context.Context, doc *Document) error
	Find(ctx context.Context, id uint64) (*Document, error)
	ListByUser(ctx context.Context, userID string) ([]*Document, error)
	SetFields(ctx context.Context, doc *Document, fields DocumentFields, to DocumentStatus) error
}

// DocumentExtractor pulls structured fields out of an uploaded identity
// document. Real OCR is out of scope; implementations fabricate fields.
type DocumentExtractor interface {
	Extract(ctx context.Context, kind string, content []byte) (DocumentFields, error)
}
