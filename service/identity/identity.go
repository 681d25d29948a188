package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pandodao/generic"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
	"github.com/zyedidia/generic/cache"
)

func New(
	dids core.DIDStore,
	credentials core.CredentialStore,
	documents core.DocumentStore,
	extractor core.DocumentExtractor,
	gen core.HashGenerator,
) core.IdentityService {
	return &service{
		dids:        dids,
		credentials: credentials,
		documents:   documents,
		extractor:   extractor,
		gen:         gen,
		cache:       cache.New[string, *core.DIDRecord](1024),
	}
}

type service struct {
	dids        core.DIDStore
	credentials core.CredentialStore
	documents   core.DocumentStore
	extractor   core.DocumentExtractor
	gen         core.HashGenerator

	cache *cache.Cache[string, *core.DIDRecord]
	mux   sync.Mutex
}

type didDocument struct {
	Context            []string    `json:"@context"`
	ID                 string      `json:"id"`
	VerificationMethod []verMethod `json:"verificationMethod"`
}

type verMethod struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Controller string `json:"controller"`
}

func (s *service) RegisterDID(ctx context.Context, userID string) (*core.DIDRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is empty", core.ErrInvalidArgument)
	}

	did := "did:zigap:" + strings.TrimPrefix(s.gen.Address(), "0x")
	doc := didDocument{
		Context: []string{"https://www.w3.org/ns/did/v1"},
		ID:      did,
		VerificationMethod: []verMethod{
			{
				ID:         did + "#keys-1",
				Type:       "EcdsaSecp256k1VerificationKey2019",
				Controller: did,
			},
		},
	}

	record := &core.DIDRecord{
		UserID:   userID,
		DID:      did,
		Document: generic.Must(json.Marshal(doc)),
	}

	if err := s.dids.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *service) ResolveDID(ctx context.Context, did string) (*core.DIDRecord, error) {
	s.mux.Lock()
	v, ok := s.cache.Get(did)
	s.mux.Unlock()
	if ok {
		return v, nil
	}

	record, err := s.dids.Find(ctx, did)
	if store.IsErrNotFound(err) {
		return nil, fmt.Errorf("%w: did %s", core.ErrNotFound, did)
	} else if err != nil {
		return nil, err
	}

	s.mux.Lock()
	s.cache.Put(did, record)
	s.mux.Unlock()

	return record, nil
}

func (s *service) IssueCredential(ctx context.Context, credential *core.Credential) (*core.Credential, error) {
	if credential.UserID == "" {
		return nil, fmt.Errorf("%w: user id is empty", core.ErrInvalidArgument)
	}

	if credential.CredentialType == "" {
		return nil, fmt.Errorf("%w: credential type is empty", core.ErrInvalidArgument)
	}

	if _, err := s.ResolveDID(ctx, credential.DID); err != nil {
		return nil, err
	}

	if credential.Issuer == "" {
		credential.Issuer = "did:zigap:issuer"
	}

	credential.Status = core.CredentialStatusActive
	if err := s.credentials.Create(ctx, credential); err != nil {
		return nil, err
	}

	return credential, nil
}

func (s *service) RevokeCredential(ctx context.Context, id uint64) (*core.Credential, error) {
	credential, err := s.credentials.Find(ctx, id)
	if store.IsErrNotFound(err) {
		return nil, fmt.Errorf("%w: credential %d", core.ErrNotFound, id)
	} else if err != nil {
		return nil, err
	}

	if credential.Status != core.CredentialStatusActive {
		return nil, fmt.Errorf("%w: credential %d is %s", core.ErrInvalidTransition, id, credential.Status)
	}

	if err := s.credentials.UpdateStatus(ctx, credential, core.CredentialStatusRevoked); err != nil {
		if store.IsErrOptimisticLock(err) {
			return nil, fmt.Errorf("%w: credential %d already revoked", core.ErrInvalidTransition, id)
		}

		return nil, err
	}

	return credential, nil
}

func (s *service) SubmitDocument(ctx context.Context, doc *core.Document, content []byte) (*core.Document, error) {
	if doc.UserID == "" {
		return nil, fmt.Errorf("%w: user id is empty", core.ErrInvalidArgument)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: document content is empty", core.ErrInvalidArgument)
	}

	doc.ContentHash = s.gen.DeriveTxHash(doc.Kind + ":" + string(content))
	doc.Status = core.DocumentStatusPending
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	fields, err := s.extractor.Extract(ctx, doc.Kind, content)
	if err != nil {
		if err := s.documents.SetFields(ctx, doc, nil, core.DocumentStatusFailed); err != nil {
			return nil, err
		}

		return doc, nil
	}

	if err := s.documents.SetFields(ctx, doc, fields, core.DocumentStatusExtracted); err != nil {
		return nil, err
	}

	return doc, nil
}
