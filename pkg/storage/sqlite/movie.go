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

var movieColumns = map[string]sqlite.Column{
	"tmdb_id":        table.Movie.TmdbID,
	"imdb_id":        table.Movie.ImdbID,
	"title":          table.Movie.Title,
	"series":         table.Movie.Series,
	"prequel":        table.Movie.Prequel,
	"sequel":         table.Movie.Sequel,
	"poster_path":    table.Movie.PosterPath,
	"backdrop_path":  table.Movie.BackdropPath,
	"status":         table.Movie.Status,
	"score":          table.Movie.Score,
	"note":           table.Movie.Note,
	"date_released":  table.Movie.DateReleased,
	"date_completed": table.Movie.DateCompleted,
}

// CreateMovie stores a new movie and returns its id
func (s *SQLite) CreateMovie(ctx context.Context, movie model.Movie) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	insertColumns := table.Movie.MutableColumns.Except(table.Movie.DateAdded)
	stmt := table.Movie.INSERT(insertColumns).MODEL(movie).RETURNING(table.Movie.ID)

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetMovie fetches a stored movie by id
func (s *SQLite) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	stmt := table.Movie.SELECT(table.Movie.AllColumns).WHERE(table.Movie.ID.EQ(sqlite.Int64(id)))

	movie := model.Movie{}
	err := stmt.QueryContext(ctx, s.db, &movie)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// GetMovieByTmdbID fetches a stored movie by its external TMDB id
func (s *SQLite) GetMovieByTmdbID(ctx context.Context, tmdbID int32) (*model.Movie, error) {
	stmt := table.Movie.SELECT(table.Movie.AllColumns).WHERE(table.Movie.TmdbID.EQ(sqlite.Int32(tmdbID)))

	movie := model.Movie{}
	err := stmt.QueryContext(ctx, s.db, &movie)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// ListMovies lists the stored movies in insertion order
func (s *SQLite) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	log := logger.FromCtx(ctx)

	movies := make([]*model.Movie, 0)

	stmt := table.Movie.SELECT(table.Movie.AllColumns).FROM(table.Movie).ORDER_BY(table.Movie.ID.ASC())
	err := stmt.QueryContext(ctx, s.db, &movies)
	if err != nil {
		log.Errorf("failed to list movies: %v", err)
		return nil, err
	}

	return movies, nil
}

// UpdateMovie applies a column patch to a stored movie
func (s *SQLite) UpdateMovie(ctx context.Context, id int64, patch storage.Patch) error {
	if patch.Empty() {
		return nil
	}

	cols, vals, err := patchUpdate(movieColumns, patch)
	if err != nil {
		return err
	}

	stmt := table.Movie.UPDATE(sqlite.ColumnList(cols)).SET(vals[0], vals[1:]...).WHERE(table.Movie.ID.EQ(sqlite.Int64(id)))
	return s.handleUpdate(ctx, stmt)
}

// DeleteMovie deletes a stored movie given its id
func (s *SQLite) DeleteMovie(ctx context.Context, id int64) error {
	stmt := table.Movie.DELETE().WHERE(table.Movie.ID.EQ(sqlite.Int64(id)))
	return s.handleDelete(ctx, stmt)
}
