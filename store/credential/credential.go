package credential

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(db *nap.DB) core.CredentialStore {
	return &credentialStore{db: db}
}

type credentialStore struct {
	db *nap.DB
}

func (s *credentialStore) Create(ctx context.Context, credential *core.Credential) error {
	b := sq.Insert("credentials").
		Columns("user_id", "did", "credential_type", "issuer", "payload", "status").
		Values(credential.UserID, credential.DID, credential.CredentialType, credential.Issuer, []byte(credential.Payload), credential.Status)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	credential.ID = uint64(id)
	return nil
}

func (s *credentialStore) Find(ctx context.Context, id uint64) (*core.Credential, error) {
	b := sq.Select(scanColumns...).
		From("credentials").
		Where(sq.Eq{"id": id})
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var credential core.Credential
	if err := scanCredential(row, &credential); err != nil {
		return nil, err
	}

	return &credential, nil
}

func (s *credentialStore) ListByUser(ctx context.Context, userID string) ([]*core.Credential, error) {
	b := sq.Select(scanColumns...).
		From("credentials").
		Where("user_id = ?", userID).
		OrderBy("id DESC")

	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var credentials []*core.Credential
	for rows.Next() {
		var credential core.Credential
		if err := scanCredential(rows, &credential); err != nil {
			return nil, err
		}

		credentials = append(credentials, &credential)
	}

	return credentials, nil
}

func (s *credentialStore) UpdateStatus(ctx context.Context, credential *core.Credential, to core.CredentialStatus) error {
	b := sq.Update("credentials").
		Set("status", to).
		Where("id = ? AND status = ?", credential.ID, credential.Status)

	if to == core.CredentialStatusRevoked {
		b = b.Set("revoked_at", time.Now())
	}

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return store.ErrOptimisticLock
	}

	credential.Status = to
	return nil
}
