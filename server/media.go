package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/calbec/medialog/pkg/logger"
	"github.com/calbec/medialog/pkg/manager"
	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/pagination"
	"github.com/calbec/medialog/pkg/storage"
)

var validate = validator.New()

// MediaResource is the camelCase wire shape shared by all four collections.
// Fields that don't apply to a media type are omitted.
type MediaResource struct {
	ID     int64      `json:"id"`
	Type   media.Type `json:"type"`
	Title  string     `json:"title"`
	Status string     `json:"status"`
	Score  *int32     `json:"score,omitempty"`
	Note   *string    `json:"note,omitempty"`

	DateReleased  string      `json:"dateReleased,omitempty"`
	DateCompleted *types.Date `json:"dateCompleted,omitempty"`

	Key    string `json:"key,omitempty"`
	TmdbID int32  `json:"tmdbId,omitempty"`
	IgdbID int32  `json:"igdbId,omitempty"`
	ImdbID string `json:"imdbId,omitempty"`

	Author  string `json:"author,omitempty"`
	Studio  string `json:"studio,omitempty"`
	Series  string `json:"series,omitempty"`
	Prequel string `json:"prequel,omitempty"`
	Sequel  string `json:"sequel,omitempty"`

	Seasons        []media.Season `json:"seasons,omitempty"`
	CurSeasonIndex *int32         `json:"curSeasonIndex,omitempty"`
	CurEpisode     *int32         `json:"curEpisode,omitempty"`

	DLCs     []string `json:"dlcs,omitempty"`
	DLCIndex *int32   `json:"dlcIndex,omitempty"`

	PosterPath   string  `json:"posterPath,omitempty"`
	BackdropPath string  `json:"backdropPath,omitempty"`
	CoverURL     string  `json:"coverUrl,omitempty"`
	CoverIDs     []int32 `json:"coverIds,omitempty"`
	CoverIndex   *int32  `json:"coverIndex,omitempty"`
}

func resourceFromItem(item manager.Item) MediaResource {
	resource := MediaResource{
		ID:           item.ID,
		Type:         item.Type,
		Title:        item.Title,
		Status:       item.StatusLabel,
		Score:        item.Score,
		Note:         item.Note,
		DateReleased: item.DateReleased,
		Key:          item.Key,
		TmdbID:       item.TmdbID,
		IgdbID:       item.IgdbID,
		ImdbID:       item.ImdbID,
		Author:       item.Author,
		Studio:       item.Studio,
		Series:       item.Series,
		Prequel:      item.Prequel,
		Sequel:       item.Sequel,
		Seasons:      item.Seasons,
		DLCs:         item.DLCs,
		PosterPath:   item.PosterPath,
		BackdropPath: item.BackdropPath,
		CoverURL:     item.CoverURL,
		CoverIDs:     item.CoverIDs,
	}

	if item.DateCompleted != nil {
		resource.DateCompleted = &types.Date{Time: *item.DateCompleted}
	}

	switch item.Type {
	case media.TypeShow:
		seasonIndex, episode := item.CurSeasonIndex, item.CurEpisode
		resource.CurSeasonIndex = &seasonIndex
		resource.CurEpisode = &episode
	case media.TypeGame:
		dlcIndex := item.DLCIndex
		resource.DLCIndex = &dlcIndex
	case media.TypeBook:
		coverIndex := item.CoverIndex
		resource.CoverIndex = &coverIndex
	}

	return resource
}

type listMediaResponse struct {
	Items []MediaResource `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

type createMediaRequest struct {
	Title        string  `json:"title" validate:"required"`
	Status       string  `json:"status"`
	Score        *int32  `json:"score" validate:"omitempty,gte=0,lte=11"`
	Note         *string `json:"note" validate:"omitempty,max=1000"`
	DateReleased string  `json:"dateReleased"`

	Key    string `json:"key"`
	TmdbID int32  `json:"tmdbId"`
	IgdbID int32  `json:"igdbId"`
	ImdbID string `json:"imdbId"`

	Author  string `json:"author"`
	Studio  string `json:"studio"`
	Series  string `json:"series"`
	Prequel string `json:"prequel"`
	Sequel  string `json:"sequel"`

	Seasons []media.Season `json:"seasons"`
	DLCs    []string       `json:"dlcs"`

	PosterPath   string  `json:"posterPath"`
	BackdropPath string  `json:"backdropPath"`
	CoverURL     string  `json:"coverUrl"`
	CoverIDs     []int32 `json:"coverIds"`
}

func (s Server) engineFor(typ media.Type) *manager.Engine {
	engine, err := s.manager.Engine(typ)
	if err != nil {
		// the route table only registers known types
		panic(err)
	}
	return engine
}

func requestID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// ListMedia lists one collection with optional pagination.
func (s Server) ListMedia(typ media.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		items := s.engineFor(typ).Collection().Items()
		total := len(items)

		offset, limit := params.CalculateOffsetLimit()
		if limit > 0 {
			if offset > total {
				offset = total
			}
			end := offset + limit
			if end > total {
				end = total
			}
			items = items[offset:end]
		}

		resources := make([]MediaResource, len(items))
		for i, item := range items {
			resources[i] = resourceFromItem(item)
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: listMediaResponse{
			Items: resources,
			Meta:  params.BuildMeta(total),
		}})
	}
}

// GetMedia fetches one item by id.
func (s Server) GetMedia(typ media.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requestID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		item, ok := s.engineFor(typ).Collection().Get(id)
		if !ok {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("%s %d not found", typ, id))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: resourceFromItem(item)})
	}
}

// CreateMedia adds a new item. Title and the media type's external id are
// required; status defaults to the want-to-consume label.
func (s Server) CreateMedia(typ media.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var request createMediaRequest
		if err := json.Unmarshal(b, &request); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		if err := validateCreate(typ, request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		vocabulary := media.VocabularyFor(typ)
		status := request.Status
		if status == "" {
			status = vocabulary.Planned
		} else if !vocabulary.Valid(status) {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("unknown status %q for %s", status, typ))
			return
		}

		item := manager.Item{
			Type:         typ,
			Title:        request.Title,
			StatusLabel:  status,
			Score:        request.Score,
			Note:         request.Note,
			DateReleased: request.DateReleased,
			Key:          request.Key,
			TmdbID:       request.TmdbID,
			IgdbID:       request.IgdbID,
			ImdbID:       request.ImdbID,
			Author:       request.Author,
			Studio:       request.Studio,
			Series:       request.Series,
			Prequel:      request.Prequel,
			Sequel:       request.Sequel,
			Seasons:      request.Seasons,
			DLCs:         request.DLCs,
			PosterPath:   request.PosterPath,
			BackdropPath: request.BackdropPath,
			CoverURL:     request.CoverURL,
			CoverIDs:     request.CoverIDs,
		}
		if typ == media.TypeShow {
			item.CurEpisode = 1
		}

		collection := s.engineFor(typ).Collection()
		if _, ok := collection.FindByExternalKey(item.ExternalKey()); ok {
			writeErrorResponse(w, http.StatusConflict, manager.ErrDuplicate)
			return
		}

		added, err := collection.Add(r.Context(), item)
		if err != nil {
			log.Error("failed to create item", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to create %s", typ))
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: resourceFromItem(added)})
	}
}

func validateCreate(typ media.Type, request createMediaRequest) error {
	if err := media.ValidateReleaseYear(request.DateReleased); err != nil {
		return err
	}

	switch typ {
	case media.TypeBook:
		if request.Key == "" {
			return errors.New("key is required")
		}
	case media.TypeMovie, media.TypeShow:
		if request.TmdbID == 0 {
			return errors.New("tmdbId is required")
		}
	case media.TypeGame:
		if request.IgdbID == 0 {
			return errors.New("igdbId is required")
		}
	}
	return nil
}

// PatchMedia applies a partial update. Body keys are restricted to the media
// type's allow-list; one unknown key rejects the whole request.
func (s Server) PatchMedia(typ media.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := requestID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		engine := s.engineFor(typ)
		patch, err := buildItemPatch(engine.Profile(), b)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		updated, err := engine.Collection().Update(r.Context(), id, patch)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("%s %d not found", typ, id))
			return
		}
		if err != nil {
			log.Error("failed to patch item", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to update %s", typ))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: resourceFromItem(updated)})
	}
}

// DeleteMedia removes one item.
func (s Server) DeleteMedia(typ media.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := requestID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		err = s.engineFor(typ).Collection().Delete(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("%s %d not found", typ, id))
			return
		}
		if err != nil {
			log.Error("failed to delete item", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to delete %s", typ))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "deleted"})
	}
}
