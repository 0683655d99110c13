package manager

import (
	"strconv"
	"strings"

	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/storage"
	"github.com/calbec/medialog/pkg/storage/sqlite/schema/gen/model"
)

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

// cover ids persist as a comma-joined string column
func encodeCoverIDs(ids []int32) *string {
	if len(ids) == 0 {
		return nil
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	joined := strings.Join(parts, ",")
	return &joined
}

func decodeCoverIDs(encoded *string) []int32 {
	if encoded == nil || *encoded == "" {
		return nil
	}
	parts := strings.Split(*encoded, ",")
	ids := make([]int32, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, int32(n))
	}
	return ids
}

func itemFromBook(book model.Book) Item {
	return Item{
		ID:            int64(book.ID),
		Type:          media.TypeBook,
		Title:         book.Title,
		StatusLabel:   book.Status,
		Score:         book.Score,
		Note:          book.Note,
		DateReleased:  deref(book.DateReleased),
		DateCompleted: book.DateCompleted,
		Key:           book.Key,
		Author:        deref(book.Author),
		Series:        deref(book.Series),
		Prequel:       deref(book.Prequel),
		Sequel:        deref(book.Sequel),
		CoverIDs:      decodeCoverIDs(book.CoverIds),
		CoverIndex:    deref(book.CoverIndex),
	}
}

func bookFromItem(item Item) model.Book {
	return model.Book{
		ID:            int32(item.ID),
		Key:           item.Key,
		Title:         item.Title,
		Author:        optional(item.Author),
		Series:        optional(item.Series),
		Prequel:       optional(item.Prequel),
		Sequel:        optional(item.Sequel),
		CoverIds:      encodeCoverIDs(item.CoverIDs),
		CoverIndex:    optional(item.CoverIndex),
		Status:        item.StatusLabel,
		Score:         item.Score,
		Note:          item.Note,
		DateReleased:  optional(item.DateReleased),
		DateCompleted: item.DateCompleted,
	}
}

func itemFromMovie(movie model.Movie) Item {
	return Item{
		ID:            int64(movie.ID),
		Type:          media.TypeMovie,
		Title:         movie.Title,
		StatusLabel:   movie.Status,
		Score:         movie.Score,
		Note:          movie.Note,
		DateReleased:  deref(movie.DateReleased),
		DateCompleted: movie.DateCompleted,
		TmdbID:        movie.TmdbID,
		ImdbID:        deref(movie.ImdbID),
		Series:        deref(movie.Series),
		Prequel:       deref(movie.Prequel),
		Sequel:        deref(movie.Sequel),
		PosterPath:    deref(movie.PosterPath),
		BackdropPath:  deref(movie.BackdropPath),
	}
}

func movieFromItem(item Item) model.Movie {
	return model.Movie{
		ID:            int32(item.ID),
		TmdbID:        item.TmdbID,
		ImdbID:        optional(item.ImdbID),
		Title:         item.Title,
		Series:        optional(item.Series),
		Prequel:       optional(item.Prequel),
		Sequel:        optional(item.Sequel),
		PosterPath:    optional(item.PosterPath),
		BackdropPath:  optional(item.BackdropPath),
		Status:        item.StatusLabel,
		Score:         item.Score,
		Note:          item.Note,
		DateReleased:  optional(item.DateReleased),
		DateCompleted: item.DateCompleted,
	}
}

func itemFromShow(show storage.Show) Item {
	return Item{
		ID:             int64(show.ID),
		Type:           media.TypeShow,
		Title:          show.Title,
		StatusLabel:    show.Status,
		Score:          show.Score,
		Note:           show.Note,
		DateReleased:   deref(show.DateReleased),
		DateCompleted:  show.DateCompleted,
		TmdbID:         show.TmdbID,
		PosterPath:     deref(show.PosterPath),
		Seasons:        show.SeasonList(),
		CurSeasonIndex: show.CurSeasonIndex,
		CurEpisode:     show.CurEpisode,
	}
}

func showFromItem(item Item) storage.Show {
	seasons := make([]model.ShowSeason, len(item.Seasons))
	for i, season := range item.Seasons {
		seasons[i] = model.ShowSeason{Number: int32(i) + 1, EpisodeCount: season.EpisodeCount}
	}
	return storage.Show{
		Show: model.Show{
			ID:             int32(item.ID),
			TmdbID:         item.TmdbID,
			Title:          item.Title,
			PosterPath:     optional(item.PosterPath),
			CurSeasonIndex: item.CurSeasonIndex,
			CurEpisode:     item.CurEpisode,
			Status:         item.StatusLabel,
			Score:          item.Score,
			Note:           item.Note,
			DateReleased:   optional(item.DateReleased),
			DateCompleted:  item.DateCompleted,
		},
		Seasons: seasons,
	}
}

func itemFromGame(game storage.Game) Item {
	return Item{
		ID:            int64(game.ID),
		Type:          media.TypeGame,
		Title:         game.Title,
		StatusLabel:   game.Status,
		Score:         game.Score,
		Note:          game.Note,
		DateReleased:  deref(game.DateReleased),
		DateCompleted: game.DateCompleted,
		IgdbID:        game.IgdbID,
		Studio:        deref(game.Studio),
		CoverURL:      deref(game.CoverURL),
		DLCs:          game.DLCTitles(),
		DLCIndex:      deref(game.DlcIndex),
	}
}

func gameFromItem(item Item) storage.Game {
	dlcs := make([]model.GameDlc, len(item.DLCs))
	for i, title := range item.DLCs {
		dlcs[i] = model.GameDlc{Position: int32(i), Title: title}
	}
	return storage.Game{
		Game: model.Game{
			ID:            int32(item.ID),
			IgdbID:        item.IgdbID,
			Title:         item.Title,
			Studio:        optional(item.Studio),
			CoverURL:      optional(item.CoverURL),
			DlcIndex:      optional(item.DLCIndex),
			Status:        item.StatusLabel,
			Score:         item.Score,
			Note:          item.Note,
			DateReleased:  optional(item.DateReleased),
			DateCompleted: item.DateCompleted,
		},
		DLCs: dlcs,
	}
}

// storagePatch maps the reducer patch onto snake_case column updates.
func (p ItemPatch) storagePatch() storage.Patch {
	var patch storage.Patch
	if p.StatusLabel != nil {
		patch.Set("status", *p.StatusLabel)
	}
	if p.Score != nil {
		patch.Set("score", *p.Score)
	}
	if p.Note != nil {
		patch.Set("note", *p.Note)
	}
	if p.DateCompleted != nil {
		patch.Set("date_completed", *p.DateCompleted)
	}
	if p.ClearDateCompleted {
		patch.Set("date_completed", nil)
	}
	if p.CurSeasonIndex != nil {
		patch.Set("cur_season_index", *p.CurSeasonIndex)
	}
	if p.CurEpisode != nil {
		patch.Set("cur_episode", *p.CurEpisode)
	}
	if p.DLCIndex != nil {
		patch.Set("dlc_index", *p.DLCIndex)
	}
	if p.CoverIndex != nil {
		patch.Set("cover_index", *p.CoverIndex)
	}
	if p.Series != nil {
		patch.Set("series", *p.Series)
	}
	if p.Prequel != nil {
		patch.Set("prequel", *p.Prequel)
	}
	if p.Sequel != nil {
		patch.Set("sequel", *p.Sequel)
	}
	return patch
}
