package storage

import (
	"context"
	"errors"

	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// Storage is the persistence boundary for every media collection.
type Storage interface {
	BookStorage
	MovieStorage
	ShowStorage
	GameStorage
}

// Show is a stored show with its ordered season list attached.
type Show struct {
	model.Show
	Seasons []model.ShowSeason `json:"seasons"`
}

// SeasonList converts the stored rows into the domain season list.
func (s Show) SeasonList() []media.Season {
	seasons := make([]media.Season, len(s.Seasons))
	for i, season := range s.Seasons {
		seasons[i] = media.Season{EpisodeCount: season.EpisodeCount}
	}
	return seasons
}

// Game is a stored game with its ordered DLC chain attached.
type Game struct {
	model.Game
	DLCs []model.GameDlc `json:"dlcs"`
}

// DLCTitles returns the chain in position order as plain titles.
func (g Game) DLCTitles() []string {
	titles := make([]string, len(g.DLCs))
	for i, dlc := range g.DLCs {
		titles[i] = dlc.Title
	}
	return titles
}

// Patch is an ordered set of column updates. The API layer is responsible for
// restricting columns to the per-type allow-list before a patch reaches
// storage.
type Patch struct {
	columns []string
	values  []any
}

// Set appends a column update. Setting the same column twice keeps both
// entries; callers build patches from already-deduplicated maps.
func (p *Patch) Set(column string, value any) {
	p.columns = append(p.columns, column)
	p.values = append(p.values, value)
}

func (p Patch) Empty() bool {
	return len(p.columns) == 0
}

func (p Patch) Columns() []string {
	return p.columns
}

func (p Patch) Values() []any {
	return p.values
}

type BookStorage interface {
	CreateBook(ctx context.Context, book model.Book) (int64, error)
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	GetBookByKey(ctx context.Context, key string) (*model.Book, error)
	ListBooks(ctx context.Context) ([]*model.Book, error)
	UpdateBook(ctx context.Context, id int64, patch Patch) error
	DeleteBook(ctx context.Context, id int64) error
}

type MovieStorage interface {
	CreateMovie(ctx context.Context, movie model.Movie) (int64, error)
	GetMovie(ctx context.Context, id int64) (*model.Movie, error)
	GetMovieByTmdbID(ctx context.Context, tmdbID int32) (*model.Movie, error)
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	UpdateMovie(ctx context.Context, id int64, patch Patch) error
	DeleteMovie(ctx context.Context, id int64) error
}

type ShowStorage interface {
	CreateShow(ctx context.Context, show Show) (int64, error)
	GetShow(ctx context.Context, id int64) (*Show, error)
	GetShowByTmdbID(ctx context.Context, tmdbID int32) (*Show, error)
	ListShows(ctx context.Context) ([]*Show, error)
	UpdateShow(ctx context.Context, id int64, patch Patch) error
	SetShowSeasons(ctx context.Context, id int64, seasons []model.ShowSeason) error
	DeleteShow(ctx context.Context, id int64) error
}

type GameStorage interface {
	CreateGame(ctx context.Context, game Game) (int64, error)
	GetGame(ctx context.Context, id int64) (*Game, error)
	GetGameByIgdbID(ctx context.Context, igdbID int32) (*Game, error)
	ListGames(ctx context.Context) ([]*Game, error)
	UpdateGame(ctx context.Context, id int64, patch Patch) error
	SetGameDLCs(ctx context.Context, id int64, dlcs []model.GameDlc) error
	DeleteGame(ctx context.Context, id int64) error
}
