package property

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
)

func New(db *nap.DB) core.PropertyStore {
	return &propertyStore{db: db}
}

type propertyStore struct {
	db *nap.DB
}

// Get leaves value untouched when the key has never been set.
func (s *propertyStore) Get(ctx context.Context, key string, value any) error {
	b := sq.Select("`value`").From("properties").Where("`key` = ?", key)
	stmt, args := b.MustSql()

	var raw []byte
	if err := s.db.QueryRowContext(ctx, stmt, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}

		return err
	}

	return json.Unmarshal(raw, value)
}

func (s *propertyStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	b := sq.Update("properties").
		Set("`value`", raw).
		Set("`version`", sq.Expr("`version` + 1")).
		Where("`key` = ?", key)

	result, err := b.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set property: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		return nil
	}

	ib := sq.Insert("properties").Columns("`key`", "`value`").Values(key, raw)
	_, err = ib.RunWith(s.db).ExecContext(ctx)
	return err
}
