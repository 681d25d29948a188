package document

import (
	"database/sql"
	"encoding/json"

	"github.com/zigaplabs/super-wallet/core"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{
	"id",
	"user_id",
	"kind",
	"file_name",
	"content_hash",
	"fields",
	"status",
	"created_at",
	"processed_at",
}

func scanDocument(scanner scanner, doc *core.Document) error {
	var (
		fields      []byte
		processedAt sql.NullTime
	)

	if err := scanner.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Kind,
		&doc.FileName,
		&doc.ContentHash,
		&fields,
		&doc.Status,
		&doc.CreatedAt,
		&processedAt,
	); err != nil {
		return err
	}

	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &doc.Fields); err != nil {
			return err
		}
	}

	if processedAt.Valid {
		doc.ProcessedAt = &processedAt.Time
	}

	return nil
}
