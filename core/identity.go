package core

import "context"

type IdentityService interface {
	RegisterDID(ctx context.Context, userID string) (*DIDRecord, error)
	ResolveDID(ctx context.Context, did string) (*DIDRecord, error)
	IssueCredential(ctx context.Context, credential *Credential) (*Credential, error)
	RevokeCredential(ctx context.Context, id uint64) (*Credential, error)
	SubmitDocument(ctx context.Context, doc *Document, content []byte) (*Document, error)
}
