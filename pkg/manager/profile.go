package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/calbec/medialog/pkg/igdb"
	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/openlibrary"
	"github.com/calbec/medialog/pkg/tmdb"
)

// Profile is the per-media-type strategy: how to search, how to enrich, which
// label vocabulary applies, and which patch keys the API accepts. The rest of
// the engine is generic over it.
type Profile struct {
	Type       media.Type
	Vocabulary media.Vocabulary

	// PatchKeys is the camelCase allow-list for PATCH bodies.
	PatchKeys []string

	Search func(ctx context.Context, query, year string) ([]Candidate, error)
	Enrich func(ctx context.Context, candidate Candidate) (*Enrichment, error)
}

func BookProfile(client *openlibrary.Client) Profile {
	return Profile{
		Type:       media.TypeBook,
		Vocabulary: media.BookVocabulary,
		PatchKeys:  []string{"score", "status", "note", "dateCompleted", "coverIndex", "series", "prequel", "sequel"},
		Search: func(ctx context.Context, query, _ string) ([]Candidate, error) {
			resp, err := client.SearchBooks(ctx, query)
			if err != nil {
				return nil, fmt.Errorf("book search failed: %w", err)
			}

			candidates := make([]Candidate, 0, len(resp.Docs))
			for _, doc := range resp.Docs {
				year := ""
				if doc.FirstPublishYear > 0 {
					year = fmt.Sprintf("%d", doc.FirstPublishYear)
				}
				candidates = append(candidates, Candidate{
					Title:   doc.Title,
					Year:    year,
					Key:     doc.WorkKey(),
					Author:  doc.Author(),
					CoverID: doc.CoverI,
				})
			}
			return candidates, nil
		},
		Enrich: func(ctx context.Context, candidate Candidate) (*Enrichment, error) {
			return enrichBook(ctx, client, candidate)
		},
	}
}

func MovieProfile(client *tmdb.Client) Profile {
	return Profile{
		Type:       media.TypeMovie,
		Vocabulary: media.MovieVocabulary,
		PatchKeys:  []string{"score", "status", "note", "dateCompleted", "series", "prequel", "sequel"},
		Search: func(ctx context.Context, query, year string) ([]Candidate, error) {
			resp, err := client.SearchMovie(ctx, query, year)
			if err != nil {
				return nil, fmt.Errorf("movie search failed: %w", err)
			}
			return tmdbCandidates(resp.Results), nil
		},
		Enrich: func(ctx context.Context, candidate Candidate) (*Enrichment, error) {
			return enrichMovie(ctx, client, candidate)
		},
	}
}

func ShowProfile(client *tmdb.Client) Profile {
	return Profile{
		Type:       media.TypeShow,
		Vocabulary: media.ShowVocabulary,
		PatchKeys:  []string{"score", "status", "note", "dateCompleted", "curSeasonIndex", "curEpisode"},
		Search: func(ctx context.Context, query, year string) ([]Candidate, error) {
			resp, err := client.SearchTV(ctx, query, year)
			if err != nil {
				return nil, fmt.Errorf("show search failed: %w", err)
			}
			return tmdbCandidates(resp.Results), nil
		},
		Enrich: func(ctx context.Context, candidate Candidate) (*Enrichment, error) {
			details, err := client.TVDetails(ctx, candidate.TmdbID)
			if err != nil {
				return nil, fmt.Errorf("season lookup failed: %w", err)
			}
			if details == nil {
				return nil, nil
			}

			enrichment := &Enrichment{}
			for _, season := range details.Seasons {
				// season 0 holds specials and doesn't count toward progress
				if season.SeasonNumber == 0 {
					continue
				}
				enrichment.Seasons = append(enrichment.Seasons, media.Season{EpisodeCount: season.EpisodeCount})
			}
			return enrichment, nil
		},
	}
}

func GameProfile(client *igdb.Client) Profile {
	return Profile{
		Type:       media.TypeGame,
		Vocabulary: media.GameVocabulary,
		PatchKeys:  []string{"score", "status", "note", "dateCompleted", "dlcIndex"},
		Search: func(ctx context.Context, query, _ string) ([]Candidate, error) {
			games, err := client.SearchGames(ctx, query)
			if err != nil {
				return nil, fmt.Errorf("game search failed: %w", err)
			}

			candidates := make([]Candidate, 0, len(games))
			for _, game := range games {
				year := ""
				if game.FirstReleaseDate > 0 {
					year = time.Unix(game.FirstReleaseDate, 0).UTC().Format("2006")
				}
				coverURL := ""
				if game.Cover != nil {
					coverURL = game.Cover.URL
				}
				candidates = append(candidates, Candidate{
					Title:    game.Name,
					Year:     year,
					IgdbID:   game.ID,
					Studio:   game.Developer(),
					CoverURL: coverURL,
				})
			}
			return candidates, nil
		},
		Enrich: func(ctx context.Context, candidate Candidate) (*Enrichment, error) {
			dlcs, err := client.GameDLCs(ctx, candidate.IgdbID)
			if err != nil {
				return nil, fmt.Errorf("dlc lookup failed: %w", err)
			}

			enrichment := &Enrichment{}
			for _, dlc := range dlcs {
				enrichment.DLCs = append(enrichment.DLCs, dlc.Name)
			}
			return enrichment, nil
		},
	}
}

func tmdbCandidates(results []tmdb.SearchResult) []Candidate {
	candidates := make([]Candidate, 0, len(results))
	for _, result := range results {
		date := result.ReleaseDate
		if date == "" {
			date = result.FirstAirDate
		}
		poster := ""
		if result.PosterPath != nil {
			poster = *result.PosterPath
		}
		candidates = append(candidates, Candidate{
			Title:      result.DisplayTitle(),
			Year:       releaseYear(date),
			TmdbID:     result.ID,
			PosterPath: poster,
		})
	}
	return candidates
}

// enrichBook derives series placement from the author's catalog sorted oldest
// first: the works published directly before and after the matched one become
// the prequel/sequel candidates. Cover ids come from the work record.
func enrichBook(ctx context.Context, client *openlibrary.Client, candidate Candidate) (*Enrichment, error) {
	enrichment := &Enrichment{}

	if work, err := client.Work(ctx, candidate.Key); err != nil {
		return nil, fmt.Errorf("work lookup failed: %w", err)
	} else if work != nil {
		enrichment.CoverIDs = work.Covers
	}

	if candidate.Author == "" {
		return enrichment, nil
	}

	byAuthor, err := client.SearchByAuthor(ctx, candidate.Author)
	if err != nil {
		return nil, fmt.Errorf("author catalog lookup failed: %w", err)
	}

	for i, doc := range byAuthor.Docs {
		if doc.WorkKey() != candidate.Key {
			continue
		}
		option := SeriesOption{
			Series:     candidate.Author,
			CleanTitle: cleanTitle(candidate.Title),
		}
		if i > 0 {
			option.Prequel = byAuthor.Docs[i-1].Title
		}
		if i+1 < len(byAuthor.Docs) {
			option.Sequel = byAuthor.Docs[i+1].Title
		}
		enrichment.Series = option.Series
		enrichment.Prequel = option.Prequel
		enrichment.Sequel = option.Sequel
		enrichment.SeriesOptions = []SeriesOption{option}
		break
	}

	if len(enrichment.SeriesOptions) > 0 {
		// the standalone placement is always offered as the alternative
		enrichment.SeriesOptions = append(enrichment.SeriesOptions, SeriesOption{CleanTitle: cleanTitle(candidate.Title)})
	}

	return enrichment, nil
}

// enrichMovie fills artwork and imdb identity from the detail record and
// derives series placement from the collection the film belongs to. Every
// collection part becomes a series option so the user can step placements.
func enrichMovie(ctx context.Context, client *tmdb.Client, candidate Candidate) (*Enrichment, error) {
	details, err := client.MovieDetails(ctx, candidate.TmdbID)
	if err != nil {
		return nil, fmt.Errorf("movie detail lookup failed: %w", err)
	}
	if details == nil {
		return nil, nil
	}

	enrichment := &Enrichment{}
	if details.PosterPath != nil {
		enrichment.PosterPath = *details.PosterPath
	}
	if details.BackdropPath != nil {
		enrichment.BackdropPath = *details.BackdropPath
	}
	if details.ImdbID != nil {
		enrichment.ImdbID = *details.ImdbID
	}

	if details.BelongsToCollection == nil {
		return enrichment, nil
	}

	collection, err := client.CollectionDetails(ctx, details.BelongsToCollection.ID)
	if err != nil {
		return nil, fmt.Errorf("collection lookup failed: %w", err)
	}
	if collection == nil {
		return enrichment, nil
	}

	for i, part := range collection.Parts {
		if part.ID != details.ID {
			continue
		}
		option := SeriesOption{
			Series:     collection.Name,
			CleanTitle: cleanTitle(candidate.Title),
		}
		if i > 0 {
			option.Prequel = collection.Parts[i-1].Title
		}
		if i+1 < len(collection.Parts) {
			option.Sequel = collection.Parts[i+1].Title
		}
		enrichment.SeriesOptions = append(enrichment.SeriesOptions, option)
	}

	if len(enrichment.SeriesOptions) > 0 {
		first := enrichment.SeriesOptions[0]
		enrichment.Series = first.Series
		enrichment.Prequel = first.Prequel
		enrichment.Sequel = first.Sequel
		enrichment.SeriesOptions = append(enrichment.SeriesOptions, SeriesOption{CleanTitle: cleanTitle(candidate.Title)})
	}

	return enrichment, nil
}
