package document

import (
	"context"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/generic"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/store"
)

func New(db *nap.DB) core.DocumentStore {
	return &documentStore{db: db}
}

type documentStore struct {
	db *nap.DB
}

func (s *documentStore) Create(ctx context.Context, doc *core.Document) error {
	b := sq.Insert("documents").
		Columns("user_id", "kind", "file_name", "content_hash", "status").
		Values(doc.UserID, doc.Kind, doc.FileName, doc.ContentHash, doc.Status)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	doc.ID = uint64(id)
	return nil
}

func (s *documentStore) Find(ctx context.Context, id uint64) (*core.Document, error) {
	b := sq.Select(scanColumns...).
		From("documents").
		Where(sq.Eq{"id": id})
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var doc core.Document
	if err := scanDocument(row, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (s *documentStore) ListByUser(ctx context.Context, userID string) ([]*core.Document, error) {
	b := sq.Select(scanColumns...).
		From("documents").
		Where("user_id = ?", userID).
		OrderBy("id DESC")

	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var docs []*core.Document
	for rows.Next() {
		var doc core.Document
		if err := scanDocument(rows, &doc); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, nil
}

func (s *documentStore) SetFields(ctx context.Context, doc *core.Document, fields core.DocumentFields, to core.DocumentStatus) error {
	b := sq.Update("documents").
		Set("fields", generic.Must(json.Marshal(fields))).
		Set("status", to).
		Set("processed_at", time.Now()).
		Where("id = ? AND status = ?", doc.ID, core.DocumentStatusPending)

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

	doc.Fields = fields
	doc.Status = to
	return nil
}
