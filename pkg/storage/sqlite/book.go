package sqlite

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/calbec/medialog/pkg/logger"
	"github.com/calbec/medialog/pkg/storage"
	"github.com/calbec/medialog/pkg/storage/sqlite/schema/gen/model"
	"github.com/calbec/medialog/pkg/storage/sqlite/schema/gen/table"
)

var bookColumns = map[string]sqlite.Column{
	"key":            table.Book.Key,
	"title":          table.Book.Title,
	"author":         table.Book.Author,
	"series":         table.Book.Series,
	"prequel":        table.Book.Prequel,
	"sequel":         table.Book.Sequel,
	"cover_ids":      table.Book.CoverIds,
	"cover_index":    table.Book.CoverIndex,
	"status":         table.Book.Status,
	"score":          table.Book.Score,
	"note":           table.Book.Note,
	"date_released":  table.Book.DateReleased,
	"date_completed": table.Book.DateCompleted,
}

// CreateBook stores a new book and returns its id
func (s *SQLite) CreateBook(ctx context.Context, book model.Book) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	insertColumns := table.Book.MutableColumns.Except(table.Book.DateAdded)
	stmt := table.Book.INSERT(insertColumns).MODEL(book).RETURNING(table.Book.ID)

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetBook fetches a stored book by id
func (s *SQLite) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	stmt := table.Book.SELECT(table.Book.AllColumns).WHERE(table.Book.ID.EQ(sqlite.Int64(id)))

	book := model.Book{}
	err := stmt.QueryContext(ctx, s.db, &book)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &book, nil
}

// GetBookByKey fetches a stored book by its external catalog key
func (s *SQLite) GetBookByKey(ctx context.Context, key string) (*model.Book, error) {
	stmt := table.Book.SELECT(table.Book.AllColumns).WHERE(table.Book.Key.EQ(sqlite.String(key)))

	book := model.Book{}
	err := stmt.QueryContext(ctx, s.db, &book)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &book, nil
}

// ListBooks lists the stored books in insertion order
func (s *SQLite) ListBooks(ctx context.Context) ([]*model.Book, error) {
	log := logger.FromCtx(ctx)

	books := make([]*model.Book, 0)

	stmt := table.Book.SELECT(table.Book.AllColumns).FROM(table.Book).ORDER_BY(table.Book.ID.ASC())
	err := stmt.QueryContext(ctx, s.db, &books)
	if err != nil {
		log.Errorf("failed to list books: %v", err)
		return nil, err
	}

	return books, nil
}

// UpdateBook applies a column patch to a stored book
func (s *SQLite) UpdateBook(ctx context.Context, id int64, patch storage.Patch) error {
	if patch.Empty() {
		return nil
	}

	cols, vals, err := patchUpdate(bookColumns, patch)
	if err != nil {
		return err
	}

	stmt := table.Book.UPDATE(sqlite.ColumnList(cols)).SET(vals[0], vals[1:]...).WHERE(table.Book.ID.EQ(sqlite.Int64(id)))
	return s.handleUpdate(ctx, stmt)
}

// DeleteBook deletes a stored book given its id
func (s *SQLite) DeleteBook(ctx context.Context, id int64) error {
	stmt := table.Book.DELETE().WHERE(table.Book.ID.EQ(sqlite.Int64(id)))
	return s.handleDelete(ctx, stmt)
}
