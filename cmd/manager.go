package cmd

import (
	"fmt"
	"net/url"

	"github.com/calbec/medialog/config"
	"github.com/calbec/medialog/pkg/igdb"
	"github.com/calbec/medialog/pkg/manager"
	"github.com/calbec/medialog/pkg/openlibrary"
	"github.com/calbec/medialog/pkg/storage/sqlite"
	"github.com/calbec/medialog/pkg/tmdb"
	"go.uber.org/zap"
)

// newMediaManager wires every metadata client and the sqlite store from config.
func newMediaManager(cfg config.Config, log *zap.SugaredLogger) (*manager.MediaManager, error) {
	tmdbURL := url.URL{
		Scheme: cfg.TMDB.Scheme,
		Host:   cfg.TMDB.Host,
	}

	tmdbClient, err := tmdb.New(tmdbURL.String(), cfg.TMDB.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb client: %w", err)
	}

	booksURL := url.URL{
		Scheme: cfg.OpenLibrary.Scheme,
		Host:   cfg.OpenLibrary.Host,
	}

	booksClient, err := openlibrary.New(booksURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create openlibrary client: %w", err)
	}

	gamesURL := url.URL{
		Scheme: cfg.IGDB.Scheme,
		Host:   cfg.IGDB.Host,
	}

	gamesClient, err := igdb.New(gamesURL.String(), cfg.IGDB.ClientID, cfg.IGDB.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create igdb client: %w", err)
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	return manager.New(store, tmdbClient, booksClient, gamesClient, log), nil
}
