// Package manager holds the session-level machinery behind the collection
// surfaces: the per-media engines with their action reducer, season/episode
// navigator, chain navigator and add flow, plus the search and progress
// entry points the server and CLI use.
package manager

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/calbec/medialog/pkg/igdb"
	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/openlibrary"
	"github.com/calbec/medialog/pkg/storage"
	"github.com/calbec/medialog/pkg/tmdb"
)

// MediaManager owns one engine per media type over a shared store.
type MediaManager struct {
	store   storage.Storage
	engines map[media.Type]*Engine
	log     *zap.SugaredLogger
}

func New(store storage.Storage, tmdbClient *tmdb.Client, booksClient *openlibrary.Client, gamesClient *igdb.Client, log *zap.SugaredLogger) *MediaManager {
	engines := map[media.Type]*Engine{
		media.TypeBook:  NewEngine(BookProfile(booksClient), store, log),
		media.TypeMovie: NewEngine(MovieProfile(tmdbClient), store, log),
		media.TypeShow:  NewEngine(ShowProfile(tmdbClient), store, log),
		media.TypeGame:  NewEngine(GameProfile(gamesClient), store, log),
	}
	return &MediaManager{
		store:   store,
		engines: engines,
		log:     log,
	}
}

// Engine returns the engine for a media type.
func (m *MediaManager) Engine(typ media.Type) (*Engine, error) {
	engine, ok := m.engines[typ]
	if !ok {
		return nil, fmt.Errorf("unknown media type %q", typ)
	}
	return engine, nil
}

// Load populates every collection view from storage.
func (m *MediaManager) Load(ctx context.Context) error {
	for typ, engine := range m.engines {
		if err := engine.Collection().Load(ctx); err != nil {
			return fmt.Errorf("failed to load %s collection: %w", typ, err)
		}
	}
	return nil
}

// Search runs a media type's primary search and returns the mapped
// candidates. Misses come back as an empty slice, not an error.
func (m *MediaManager) Search(ctx context.Context, typ media.Type, query, year string) ([]Candidate, error) {
	engine, err := m.Engine(typ)
	if err != nil {
		return nil, err
	}
	return engine.Profile().Search(ctx, query, year)
}

// ShowProgress derives the percent-complete for a stored show.
func (m *MediaManager) ShowProgress(ctx context.Context, id int64) (float64, error) {
	show, err := m.store.GetShow(ctx, id)
	if err != nil {
		return 0, err
	}

	notStarted := media.ShowVocabulary.Planned
	return media.CalcProgress(show.SeasonList(), show.CurSeasonIndex, show.CurEpisode, show.Status, notStarted), nil
}
