// README: Postgres-backed repository; one jsonb document per entity row.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"railway/internal/types"
)

// PGStore satisfies the same Repository contract over Postgres. Rows carry
// a bigserial seq so GetAll preserves insertion order, and Update is
// DELETE + INSERT inside a transaction so the replaced row takes a fresh
// seq and moves to the end of iteration order, matching the flat-file store.
type PGStore[T any] struct {
	db       *pgxpool.Pool
	table    string
	selector IDSelector[T]
}

func NewPG[T any](db *pgxpool.Pool, table string, selector IDSelector[T]) *PGStore[T] {
	return &PGStore[T]{db: db, table: table, selector: selector}
}

// EnsureTable creates the backing table when it does not exist yet.
func (s *PGStore[T]) EnsureTable(ctx context.Context) error {
	_, err := s.db.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			seq bigserial,
			id  text PRIMARY KEY,
			doc jsonb NOT NULL
		)`, s.table))
	if err != nil {
		return fmt.Errorf("%w: ensure table %s: %v", ErrStorage, s.table, err)
	}
	return nil
}

func (s *PGStore[T]) GetByID(ctx context.Context, id types.ID) (T, bool, error) {
	var zero T
	var raw []byte
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.table),
		string(id),
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("%w: get %s: %v", ErrStorage, s.table, err)
	}

	var entity T
	if err := json.Unmarshal(raw, &entity); err != nil {
		return zero, false, fmt.Errorf("%w: decode %s row: %v", ErrStorage, s.table, err)
	}
	return entity, true, nil
}

func (s *PGStore[T]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := s.db.Query(ctx,
		fmt.Sprintf(`SELECT doc FROM %s ORDER BY seq`, s.table))
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrStorage, s.table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: scan %s row: %v", ErrStorage, s.table, err)
		}
		var entity T
		if err := json.Unmarshal(raw, &entity); err != nil {
			return nil, fmt.Errorf("%w: decode %s row: %v", ErrStorage, s.table, err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrStorage, s.table, err)
	}
	return out, nil
}

func (s *PGStore[T]) Add(ctx context.Context, entity T) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("%w: encode %s row: %v", ErrStorage, s.table, err)
	}
	_, err = s.db.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, s.table),
		string(s.selector(entity)), raw,
	)
	if err != nil {
		return fmt.Errorf("%w: insert %s: %v", ErrStorage, s.table, err)
	}
	return nil
}

func (s *PGStore[T]) Update(ctx context.Context, entity T) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("%w: encode %s row: %v", ErrStorage, s.table, err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", ErrStorage, s.table, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table),
		string(s.selector(entity)),
	)
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", ErrStorage, s.table, err)
	}
	if tag.RowsAffected() == 0 {
		// absent id: no-op, nothing to replace
		return tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, s.table),
		string(s.selector(entity)), raw,
	)
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", ErrStorage, s.table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: update %s: %v", ErrStorage, s.table, err)
	}
	return nil
}

func (s *PGStore[T]) Delete(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table),
		string(id),
	)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStorage, s.table, err)
	}
	return nil
}
