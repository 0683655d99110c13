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

var gameColumns = map[string]sqlite.Column{
	"igdb_id":        table.Game.IgdbID,
	"title":          table.Game.Title,
	"studio":         table.Game.Studio,
	"cover_url":      table.Game.CoverURL,
	"dlc_index":      table.Game.DlcIndex,
	"status":         table.Game.Status,
	"score":          table.Game.Score,
	"note":           table.Game.Note,
	"date_released":  table.Game.DateReleased,
	"date_completed": table.Game.DateCompleted,
}

// CreateGame stores a game together with its DLC chain in one transaction
func (s *SQLite) CreateGame(ctx context.Context, game storage.Game) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	insertColumns := table.Game.MutableColumns.Except(table.Game.DateAdded)
	stmt := table.Game.INSERT(insertColumns).MODEL(game.Game).RETURNING(table.Game.ID)

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

	if len(game.DLCs) > 0 {
		dlcs := make([]model.GameDlc, len(game.DLCs))
		for i, dlc := range game.DLCs {
			dlc.GameID = int32(inserted)
			dlcs[i] = dlc
		}

		dlcStmt := table.GameDlc.
			INSERT(table.GameDlc.MutableColumns).
			MODELS(dlcs)

		if _, err := dlcStmt.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	return inserted, tx.Commit()
}

func (s *SQLite) getGame(ctx context.Context, where sqlite.BoolExpression) (*storage.Game, error) {
	stmt := sqlite.
		SELECT(table.Game.AllColumns, table.GameDlc.AllColumns).
		FROM(table.Game.
			LEFT_JOIN(table.GameDlc, table.GameDlc.GameID.EQ(table.Game.ID))).
		WHERE(where).
		ORDER_BY(table.GameDlc.Position.ASC())

	game := storage.Game{}
	err := stmt.QueryContext(ctx, s.db, &game)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return &game, nil
}

// GetGame fetches a stored game with its DLC chain
func (s *SQLite) GetGame(ctx context.Context, id int64) (*storage.Game, error) {
	return s.getGame(ctx, table.Game.ID.EQ(sqlite.Int64(id)))
}

// GetGameByIgdbID fetches a stored game by its external IGDB id
func (s *SQLite) GetGameByIgdbID(ctx context.Context, igdbID int32) (*storage.Game, error) {
	return s.getGame(ctx, table.Game.IgdbID.EQ(sqlite.Int32(igdbID)))
}

// ListGames lists the stored games with their DLC chains
func (s *SQLite) ListGames(ctx context.Context) ([]*storage.Game, error) {
	log := logger.FromCtx(ctx)

	games := make([]*storage.Game, 0)

	stmt := sqlite.
		SELECT(table.Game.AllColumns, table.GameDlc.AllColumns).
		FROM(table.Game.
			LEFT_JOIN(table.GameDlc, table.GameDlc.GameID.EQ(table.Game.ID))).
		ORDER_BY(table.Game.ID.ASC(), table.GameDlc.Position.ASC())

	err := stmt.QueryContext(ctx, s.db, &games)
	if err != nil {
		log.Errorf("failed to list games: %v", err)
		return nil, err
	}

	return games, nil
}

// UpdateGame applies a column patch to a stored game
func (s *SQLite) UpdateGame(ctx context.Context, id int64, patch storage.Patch) error {
	if patch.Empty() {
		return nil
	}

	cols, vals, err := patchUpdate(gameColumns, patch)
	if err != nil {
		return err
	}

	stmt := table.Game.UPDATE(sqlite.ColumnList(cols)).SET(vals[0], vals[1:]...).WHERE(table.Game.ID.EQ(sqlite.Int64(id)))
	return s.handleUpdate(ctx, stmt)
}

// SetGameDLCs replaces a game's DLC chain wholesale
func (s *SQLite) SetGameDLCs(ctx context.Context, id int64, dlcs []model.GameDlc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	deleteStmt := table.GameDlc.DELETE().WHERE(table.GameDlc.GameID.EQ(sqlite.Int64(id)))
	if _, err := deleteStmt.ExecContext(ctx, tx); err != nil {
		tx.Rollback()
		return err
	}

	if len(dlcs) > 0 {
		rows := make([]model.GameDlc, len(dlcs))
		for i, dlc := range dlcs {
			dlc.GameID = int32(id)
			rows[i] = dlc
		}

		insertStmt := table.GameDlc.
			INSERT(table.GameDlc.MutableColumns).
			MODELS(rows)

		if _, err := insertStmt.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// DeleteGame deletes a stored game; DLC rows cascade
func (s *SQLite) DeleteGame(ctx context.Context, id int64) error {
	stmt := table.Game.DELETE().WHERE(table.Game.ID.EQ(sqlite.Int64(id)))
	return s.handleDelete(ctx, stmt)
}
