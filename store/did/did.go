package did

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
)

func New(db *nap.DB) core.DIDStore {
	return &didStore{db: db}
}

type didStore struct {
	db *nap.DB
}

type scanner interface {
	Scan(dest ...interface{}) error
}

var scanColumns = []string{"id", "user_id", "did", "document", "created_at"}

func scanRecord(scanner scanner, record *core.DIDRecord) error {
	var document []byte
	if err := scanner.Scan(&record.ID, &record.UserID, &record.DID, &document, &record.CreatedAt); err != nil {
		return err
	}

	record.Document = document
	return nil
}

func (s *didStore) Create(ctx context.Context, record *core.DIDRecord) error {
	b := sq.Insert("did_records").
		Columns("user_id", "did", "document").
		Values(record.UserID, record.DID, []byte(record.Document))

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	record.ID = uint64(id)
	return nil
}

func (s *didStore) Find(ctx context.Context, did string) (*core.DIDRecord, error) {
	b := sq.Select(scanColumns...).
		From("did_records").
		Where("did = ?", did)
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var record core.DIDRecord
	if err := scanRecord(row, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *didStore) ListByUser(ctx context.Context, userID string) ([]*core.DIDRecord, error) {
	b := sq.Select(scanColumns...).
		From("did_records").
		Where("user_id = ?", userID).
		OrderBy("id DESC")

	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var records []*core.DIDRecord
	for rows.Next() {
		var record core.DIDRecord
		if err := scanRecord(rows, &record); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, nil
}
