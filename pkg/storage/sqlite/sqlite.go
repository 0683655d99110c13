package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/calbec/medialog/pkg/storage"
)

// SQLite implements storage.Storage backed by a single sqlite database file.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens the database file, applies pending migrations, and returns the store.
func New(filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", filePath))
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// patchUpdate resolves patch columns against a table's column map and builds
// the jet column/value pairs for an UPDATE statement.
func patchUpdate(columns map[string]sqlite.Column, patch storage.Patch) ([]sqlite.Column, []any, error) {
	cols := make([]sqlite.Column, 0, len(patch.Columns()))
	vals := make([]any, 0, len(patch.Columns()))

	for i, name := range patch.Columns() {
		col, ok := columns[name]
		if !ok {
			return nil, nil, fmt.Errorf("unknown column %q", name)
		}
		cols = append(cols, col)

		v := patch.Values()[i]
		if v == nil {
			vals = append(vals, sqlite.NULL)
			continue
		}
		vals = append(vals, v)
	}

	return cols, vals, nil
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
