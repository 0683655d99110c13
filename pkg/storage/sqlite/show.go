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

var showColumns = map[string]sqlite.Column{
	"tmdb_id":          table.Show.TmdbID,
	"title":            table.Show.Title,
	"poster_path":      table.Show.PosterPath,
	"cur_season_index": table.Show.CurSeasonIndex,
	"cur_episode":      table.Show.CurEpisode,
	"status":           table.Show.Status,
	"score":            table.Show.Score,
	"note":             table.Show.Note,
	"date_released":    table.Show.DateReleased,
	"date_completed":   table.Show.DateCompleted,
}

// CreateShow stores a show together with its season list in one transaction
func (s *SQLite) CreateShow(ctx context.Context, show storage.Show) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	insertColumns := table.Show.MutableColumns.Except(table.Show.DateAdded)
	stmt := table.Show.INSERT(insertColumns).MODEL(show.Show).RETURNING(table.Show.ID)

	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	inserted, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if len(show.Seasons) > 0 {
		seasons := make([]model.ShowSeason, len(show.Seasons))
		for i, season := range show.Seasons {
			season.ShowID = int32(inserted)
			seasons[i] = season
		}

		seasonStmt := table.ShowSeason.
			INSERT(table.ShowSeason.MutableColumns).
			MODELS(seasons)

		if _, err := seasonStmt.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	return inserted, tx.Commit()
}

func (s *SQLite) getShow(ctx context.Context, where sqlite.BoolExpression) (*storage.Show, error) {
	stmt := sqlite.
		SELECT(table.Show.AllColumns, table.ShowSeason.AllColumns).
		FROM(table.Show.
			LEFT_JOIN(table.ShowSeason, table.ShowSeason.ShowID.EQ(table.Show.ID))).
		WHERE(where).
		ORDER_BY(table.ShowSeason.Number.ASC())

	show := storage.Show{}
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &show, nil
}

// GetShow fetches a stored show with its season list
func (s *SQLite) GetShow(ctx context.Context, id int64) (*storage.Show, error) {
	return s.getShow(ctx, table.Show.ID.EQ(sqlite.Int64(id)))
}

// GetShowByTmdbID fetches a stored show by its external TMDB id
func (s *SQLite) GetShowByTmdbID(ctx context.Context, tmdbID int32) (*storage.Show, error) {
	return s.getShow(ctx, table.Show.TmdbID.EQ(sqlite.Int32(tmdbID)))
}

// ListShows lists the stored shows with their season lists
func (s *SQLite) ListShows(ctx context.Context) ([]*storage.Show, error) {
	log := logger.FromCtx(ctx)

	shows := make([]*storage.Show, 0)

	stmt := sqlite.
		SELECT(table.Show.AllColumns, table.ShowSeason.AllColumns).
		FROM(table.Show.
			LEFT_JOIN(table.ShowSeason, table.ShowSeason.ShowID.EQ(table.Show.ID))).
		ORDER_BY(table.Show.ID.ASC(), table.ShowSeason.Number.ASC())

	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		log.Errorf("failed to list shows: %v", err)
		return nil, err
	}

	return shows, nil
}

// UpdateShow applies a column patch to a stored show
func (s *SQLite) UpdateShow(ctx context.Context, id int64, patch storage.Patch) error {
	if patch.Empty() {
		return nil
	}

	cols, vals, err := patchUpdate(showColumns, patch)
	if err != nil {
		return err
	}

	stmt := table.Show.UPDATE(sqlite.ColumnList(cols)).SET(vals[0], vals[1:]...).WHERE(table.Show.ID.EQ(sqlite.Int64(id)))
	return s.handleUpdate(ctx, stmt)
}

// SetShowSeasons replaces a show's season list wholesale
func (s *SQLite) SetShowSeasons(ctx context.Context, id int64, seasons []model.ShowSeason) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	deleteStmt := table.ShowSeason.DELETE().WHERE(table.ShowSeason.ShowID.EQ(sqlite.Int64(id)))
	if _, err := deleteStmt.ExecContext(ctx, tx); err != nil {
		tx.Rollback()
		return err
	}

	if len(seasons) > 0 {
		rows := make([]model.ShowSeason, len(seasons))
		for i, season := range seasons {
			season.ShowID = int32(id)
			rows[i] = season
		}

		insertStmt := table.ShowSeason.
			INSERT(table.ShowSeason.MutableColumns).
			MODELS(rows)

		if _, err := insertStmt.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// DeleteShow deletes a stored show; seasons cascade
func (s *SQLite) DeleteShow(ctx context.Context, id int64) error {
	stmt := table.Show.DELETE().WHERE(table.Show.ID.EQ(sqlite.Int64(id)))
	return s.handleDelete(ctx, stmt)
}
