package server

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/calbec/medialog/pkg/logger"
	"github.com/calbec/medialog/pkg/manager"
	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/storage"
)

// SearchResult is the camelCase wire shape of one mapped search candidate.
type SearchResult struct {
	Title      string `json:"title"`
	Year       string `json:"year,omitempty"`
	Key        string `json:"key,omitempty"`
	TmdbID     int32  `json:"tmdbId,omitempty"`
	IgdbID     int32  `json:"igdbId,omitempty"`
	Author     string `json:"author,omitempty"`
	Studio     string `json:"studio,omitempty"`
	PosterPath string `json:"posterPath,omitempty"`
	CoverURL   string `json:"coverUrl,omitempty"`
	CoverID    int32  `json:"coverId,omitempty"`
	InLibrary  bool   `json:"inLibrary"`
}

func searchResultFromCandidate(candidate manager.Candidate, inLibrary bool) SearchResult {
	return SearchResult{
		Title:      candidate.Title,
		Year:       candidate.Year,
		Key:        candidate.Key,
		TmdbID:     candidate.TmdbID,
		IgdbID:     candidate.IgdbID,
		Author:     candidate.Author,
		Studio:     candidate.Studio,
		PosterPath: candidate.PosterPath,
		CoverURL:   candidate.CoverURL,
		CoverID:    candidate.CoverID,
		InLibrary:  inLibrary,
	}
}

// SearchMedia queries the media type's external catalog. Misses come back as
// an empty list; each hit is flagged when it's already in the collection.
func (s Server) SearchMedia(typ media.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		qps := r.URL.Query()
		query := qps.Get("query")
		if query == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("query parameter is required"))
			return
		}
		year := qps.Get("year")
		if err := media.ValidateReleaseYear(year); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		candidates, err := s.manager.Search(r.Context(), typ, query, year)
		if err != nil {
			log.Error("search failed", zap.Error(err))
			writeErrorResponse(w, http.StatusBadGateway, fmt.Errorf("search failed"))
			return
		}

		collection := s.engineFor(typ).Collection()
		results := make([]SearchResult, len(candidates))
		for i, candidate := range candidates {
			_, inLibrary := collection.FindByExternalKey(candidate.ExternalKey())
			results[i] = searchResultFromCandidate(candidate, inLibrary)
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: results})
	}
}

type progressResponse struct {
	ID       int64   `json:"id"`
	Progress float64 `json:"progress"`
}

// ShowProgress derives a show's percent complete.
func (s Server) ShowProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := requestID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		progress, err := s.manager.ShowProgress(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("show %d not found", id))
			return
		}
		if err != nil {
			log.Error("failed to derive progress", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to derive progress"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: progressResponse{ID: id, Progress: progress}})
	}
}
