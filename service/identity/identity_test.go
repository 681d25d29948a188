package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/service/docscan"
	"github.com/zigaplabs/super-wallet/store"
)

type fakeDIDStore struct {
	nextID uint64
	rows   map[string]*core.DIDRecord
	finds  int
}

func newFakeDIDStore() *fakeDIDStore {
	return &fakeDIDStore{rows: map[string]*core.DIDRecord{}}
}

func (f *fakeDIDStore) Create(_ context.Context, record *core.DIDRecord) error {
	f.nextID++
	record.ID = f.nextID
	clone := *record
	f.rows[record.DID] = &clone
	return nil
}

func (f *fakeDIDStore) Find(_ context.Context, did string) (*core.DIDRecord, error) {
	f.finds++
	record, ok := f.rows[did]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *record
	return &clone, nil
}

func (f *fakeDIDStore) ListByUser(_ context.Context, userID string) ([]*core.DIDRecord, error) {
	var records []*core.DIDRecord
	for _, record := range f.rows {
		if record.UserID == userID {
			clone := *record
			records = append(records, &clone)
		}
	}

	return records, nil
}

type fakeCredentialStore struct {
	nextID uint64
	rows   map[uint64]*core.Credential
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{rows: map[uint64]*core.Credential{}}
}

func (f *fakeCredentialStore) Create(_ context.Context, credential *core.Credential) error {
	f.nextID++
	credential.ID = f.nextID
	credential.IssuedAt = time.Now()
	clone := *credential
	f.rows[credential.ID] = &clone
	return nil
}

func (f *fakeCredentialStore) Find(_ context.Context, id uint64) (*core.Credential, error) {
	credential, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *credential
	return &clone, nil
}

func (f *fakeCredentialStore) ListByUser(_ context.Context, userID string) ([]*core.Credential, error) {
	var credentials []*core.Credential
	for _, credential := range f.rows {
		if credential.UserID == userID {
			clone := *credential
			credentials = append(credentials, &clone)
		}
	}

	return credentials, nil
}

func (f *fakeCredentialStore) UpdateStatus(_ context.Context, credential *core.Credential, to core.CredentialStatus) error {
	stored, ok := f.rows[credential.ID]
	if !ok || stored.Status != credential.Status {
		return store.ErrOptimisticLock
	}

	stored.Status = to
	credential.Status = to
	return nil
}

type fakeDocumentStore struct {
	nextID uint64
	rows   map[uint64]*core.Document
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{rows: map[uint64]*core.Document{}}
}

func (f *fakeDocumentStore) Create(_ context.Context, doc *core.Document) error {
	f.nextID++
	doc.ID = f.nextID
	clone := *doc
	f.rows[doc.ID] = &clone
	return nil
}

func (f *fakeDocumentStore) Find(_ context.Context, id uint64) (*core.Document, error) {
	doc, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *doc
	return &clone, nil
}

func (f *fakeDocumentStore) ListByUser(_ context.Context, userID string) ([]*core.Document, error) {
	var docs []*core.Document
	for _, doc := range f.rows {
		if doc.UserID == userID {
			clone := *doc
			docs = append(docs, &clone)
		}
	}

	return docs, nil
}

func (f *fakeDocumentStore) SetFields(_ context.Context, doc *core.Document, fields core.DocumentFields, to core.DocumentStatus) error {
	stored, ok := f.rows[doc.ID]
	if !ok || stored.Status != core.DocumentStatusPending {
		return store.ErrOptimisticLock
	}

	now := time.Now()
	stored.Fields = fields
	stored.Status = to
	stored.ProcessedAt = &now

	doc.Fields = fields
	doc.Status = to
	return nil
}

type staticGenerator struct {
	n int
}

func (g *staticGenerator) TxHash() string {
	g.n++
	return fmt.Sprintf("0x%064x", g.n)
}

func (g *staticGenerator) Address() string {
	g.n++
	return fmt.Sprintf("0x%040x", g.n)
}

func (g *staticGenerator) DeriveTxHash(seed string) string {
	return fmt.Sprintf("0x%064x", len(seed))
}

func newService(dids *fakeDIDStore) core.IdentityService {
	return New(dids, newFakeCredentialStore(), newFakeDocumentStore(), docscan.NewMock(), &staticGenerator{})
}

func TestRegisterDID(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeDIDStore())

	record, err := svc.RegisterDID(ctx, "user-1")
	if err != nil {
		t.Fatalf("RegisterDID() error = %v", err)
	}

	if !regexp.MustCompile(`^did:zigap:[0-9a-f]{40}$`).MatchString(record.DID) {
		t.Errorf("DID = %q, want did:zigap:<40 hex chars>", record.DID)
	}

	if len(record.Document) == 0 {
		t.Error("RegisterDID() left document empty")
	}
}

func TestResolveDIDCaches(t *testing.T) {
	ctx := context.Background()
	dids := newFakeDIDStore()
	svc := newService(dids)

	record, err := svc.RegisterDID(ctx, "user-1")
	if err != nil {
		t.Fatalf("RegisterDID() error = %v", err)
	}

	if _, err := svc.ResolveDID(ctx, record.DID); err != nil {
		t.Fatalf("ResolveDID() error = %v", err)
	}

	if _, err := svc.ResolveDID(ctx, record.DID); err != nil {
		t.Fatalf("ResolveDID() error = %v", err)
	}

	if dids.finds != 1 {
		t.Errorf("store hit %d times, want 1", dids.finds)
	}
}

func TestResolveDIDNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeDIDStore())

	if _, err := svc.ResolveDID(ctx, "did:zigap:missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("ResolveDID() error = %v, want ErrNotFound", err)
	}
}

func TestIssueCredential(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeDIDStore())

	record, err := svc.RegisterDID(ctx, "user-1")
	if err != nil {
		t.Fatalf("RegisterDID() error = %v", err)
	}

	credential, err := svc.IssueCredential(ctx, &core.Credential{
		UserID:         "user-1",
		DID:            record.DID,
		CredentialType: "proof_of_age",
	})
	if err != nil {
		t.Fatalf("IssueCredential() error = %v", err)
	}

	if credential.Status != core.CredentialStatusActive {
		t.Errorf("Status = %s, want active", credential.Status)
	}

	if credential.Issuer == "" {
		t.Error("IssueCredential() left issuer empty")
	}
}

func TestIssueCredentialUnknownDID(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeDIDStore())

	_, err := svc.IssueCredential(ctx, &core.Credential{
		UserID:         "user-1",
		DID:            "did:zigap:missing",
		CredentialType: "proof_of_age",
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("IssueCredential() error = %v, want ErrNotFound", err)
	}
}

func TestRevokeCredential(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeDIDStore())

	record, err := svc.RegisterDID(ctx, "user-1")
	if err != nil {
		t.Fatalf("RegisterDID() error = %v", err)
	}

	credential, err := svc.IssueCredential(ctx, &core.Credential{
		UserID:         "user-1",
		DID:            record.DID,
		CredentialType: "proof_of_age",
	})
	if err != nil {
		t.Fatalf("IssueCredential() error = %v", err)
	}

	revoked, err := svc.RevokeCredential(ctx, credential.ID)
	if err != nil {
		t.Fatalf("RevokeCredential() error = %v", err)
	}

	if revoked.Status != core.CredentialStatusRevoked {
		t.Errorf("Status = %s, want revoked", revoked.Status)
	}

	if _, err := svc.RevokeCredential(ctx, credential.ID); !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("RevokeCredential() repeat error = %v, want ErrInvalidTransition", err)
	}
}

func TestSubmitDocument(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeDIDStore())

	doc, err := svc.SubmitDocument(ctx, &core.Document{
		UserID:   "user-1",
		Kind:     "passport",
		FileName: "passport.jpg",
	}, []byte("scanned bytes"))
	if err != nil {
		t.Fatalf("SubmitDocument() error = %v", err)
	}

	if doc.Status != core.DocumentStatusExtracted {
		t.Errorf("Status = %s, want extracted", doc.Status)
	}

	if doc.Fields["passport_no"] == "" {
		t.Errorf("Fields = %v, want passport_no set", doc.Fields)
	}

	if doc.ContentHash == "" {
		t.Error("SubmitDocument() left content hash empty")
	}
}

func TestSubmitDocumentUnknownKind(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeDIDStore())

	doc, err := svc.SubmitDocument(ctx, &core.Document{
		UserID: "user-1",
		Kind:   "library_card",
	}, []byte("scanned bytes"))
	if err != nil {
		t.Fatalf("SubmitDocument() error = %v", err)
	}

	if doc.Status != core.DocumentStatusFailed {
		t.Errorf("Status = %s, want failed", doc.Status)
	}
}
