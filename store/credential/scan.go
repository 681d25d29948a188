package credential

import (
	"database/sql"

	"github.com/zigaplabs/super-wallet/core"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{
	"id",
	"user_id",
	"did",
	"credential_type",
	"issuer",
	"payload",
	"status",
	"issued_at",
	"revoked_at",
}

func scanCredential(scanner scanner, credential *core.Credential) error {
	var (
		payload   []byte
		revokedAt sql.NullTime
	)

	if err := scanner.Scan(
		&credential.ID,
		&credential.UserID,
		&credential.DID,
		&credential.CredentialType,
		&credential.Issuer,
		&payload,
		&credential.Status,
		&credential.IssuedAt,
		&revokedAt,
	); err != nil {
		return err
	}

	credential.Payload = payload
	if revokedAt.Valid {
		credential.RevokedAt = &revokedAt.Time
	}

	return nil
}
