package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mhttp "github.com/calbec/medialog/pkg/http"
	"github.com/calbec/medialog/pkg/http/mocks"
	"github.com/calbec/medialog/pkg/igdb"
	"github.com/calbec/medialog/pkg/manager"
	"github.com/calbec/medialog/pkg/openlibrary"
	"github.com/calbec/medialog/pkg/storage/sqlite"
	"github.com/calbec/medialog/pkg/tmdb"
)

func newTestServer(t *testing.T, httpClient mhttp.HTTPClient) Server {
	t.Helper()

	if httpClient == nil {
		httpClient = mocks.NewMockHTTPClient(gomock.NewController(t))
	}

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	tmdbClient, err := tmdb.New("http://tmdb.test", "key", tmdb.WithHTTPClient(httpClient))
	require.NoError(t, err)
	booksClient, err := openlibrary.New("http://openlibrary.test", openlibrary.WithHTTPClient(httpClient))
	require.NoError(t, err)
	gamesClient, err := igdb.New("http://igdb.test", "client-id", "token", igdb.WithHTTPClient(httpClient))
	require.NoError(t, err)

	log := zap.NewNop().Sugar()
	m := manager.New(store, tmdbClient, booksClient, gamesClient, log)
	require.NoError(t, m.Load(context.Background()))

	return New(log, m)
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Error    *string         `json:"error"`
		Response json.RawMessage `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Response, out))
	}
}

func createShow(t *testing.T, handler http.Handler) MediaResource {
	t.Helper()

	body := `{"title":"Severance","tmdbId":95396,"dateReleased":"2022","seasons":[{"episodeCount":9},{"episodeCount":10}]}`
	rec := doRequest(t, handler, http.MethodPost, "/api/v1/shows", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resource MediaResource
	decodeResponse(t, rec, &resource)
	return resource
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	rec := doRequest(t, handler, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAndGetShow(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	created := createShow(t, handler)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Want to Watch", created.Status, "status defaults when absent")
	require.NotNil(t, created.CurEpisode)
	assert.Equal(t, int32(1), *created.CurEpisode)

	rec := doRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/v1/shows/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched MediaResource
	decodeResponse(t, rec, &fetched)
	assert.Equal(t, "Severance", fetched.Title)
	assert.Len(t, fetched.Seasons, 2)
}

func TestCreateValidation(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	rec := doRequest(t, handler, http.MethodPost, "/api/v1/shows", `{"tmdbId":95396}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "title is required")

	rec = doRequest(t, handler, http.MethodPost, "/api/v1/shows", `{"title":"Severance"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "tmdbId is required")

	rec = doRequest(t, handler, http.MethodPost, "/api/v1/shows", `{"title":"Severance","tmdbId":95396,"dateReleased":"not-a-year"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "dateReleased must be a 4-digit year")

	rec = doRequest(t, handler, http.MethodPost, "/api/v1/shows", `{"title":"Severance","tmdbId":95396,"status":"Binging"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "status must belong to the vocabulary")

	rec = doRequest(t, handler, http.MethodPost, "/api/v1/books", `{"title":"Dune"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "books require a key")
}

func TestPatchShow(t *testing.T) {
	handler := newTestServer(t, nil).Handler()
	created := createShow(t, handler)

	rec := doRequest(t, handler, http.MethodPatch, fmt.Sprintf("/api/v1/shows/%d", created.ID),
		`{"score":9,"status":"Watching","curSeasonIndex":1,"curEpisode":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated MediaResource
	decodeResponse(t, rec, &updated)
	require.NotNil(t, updated.Score)
	assert.Equal(t, int32(9), *updated.Score)
	assert.Equal(t, "Watching", updated.Status)
	require.NotNil(t, updated.CurSeasonIndex)
	assert.Equal(t, int32(1), *updated.CurSeasonIndex)
}

func TestPatchShowUnknownKeyRejectsWholeRequest(t *testing.T) {
	handler := newTestServer(t, nil).Handler()
	created := createShow(t, handler)

	rec := doRequest(t, handler, http.MethodPatch, fmt.Sprintf("/api/v1/shows/%d", created.ID),
		`{"score":9,"posterPath":"/sneaky.jpg"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/v1/shows/%d", created.ID), "")
	var fetched MediaResource
	decodeResponse(t, rec, &fetched)
	assert.Nil(t, fetched.Score, "nothing from the rejected patch was applied")
}

func TestCreateDuplicateConflicts(t *testing.T) {
	handler := newTestServer(t, nil).Handler()
	createShow(t, handler)

	body := `{"title":"Severance (again)","tmdbId":95396}`
	rec := doRequest(t, handler, http.MethodPost, "/api/v1/shows", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPatchNotFound(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	rec := doRequest(t, handler, http.MethodPatch, "/api/v1/shows/999", `{"score":9}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteShow(t *testing.T) {
	handler := newTestServer(t, nil).Handler()
	created := createShow(t, handler)

	rec := doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/api/v1/shows/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/v1/shows/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/api/v1/shows/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowProgress(t *testing.T) {
	handler := newTestServer(t, nil).Handler()
	created := createShow(t, handler)

	// fresh show at (0,1) with the not-started label reports 100
	rec := doRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/v1/shows/%d/progress", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var progress progressResponse
	decodeResponse(t, rec, &progress)
	assert.Equal(t, float64(100), progress.Progress)

	rec = doRequest(t, handler, http.MethodPatch, fmt.Sprintf("/api/v1/shows/%d", created.ID),
		`{"status":"Watching","curSeasonIndex":1,"curEpisode":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/v1/shows/%d/progress", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeResponse(t, rec, &progress)
	assert.InDelta(t, 100*float64(9+5)/float64(19), progress.Progress, 0.001)

	rec = doRequest(t, handler, http.MethodGet, "/api/v1/shows/999/progress", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPagination(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"title":"Movie %d","tmdbId":%d}`, i, 100+i)
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/movies", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, handler, http.MethodGet, "/api/v1/movies?page=2&pageSize=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list listMediaResponse
	decodeResponse(t, rec, &list)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 3, list.Meta.TotalItems)
	assert.Equal(t, 2, list.Meta.TotalPages)

	rec = doRequest(t, handler, http.MethodGet, "/api/v1/movies?page=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchMovies(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpMock := mocks.NewMockHTTPClient(ctrl)
	httpMock.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body: io.NopCloser(bytes.NewBufferString(
			`{"page":1,"total_results":2,"results":[` +
				`{"id":348,"title":"Alien","release_date":"1979-05-25","poster_path":"/alien.jpg"},` +
				`{"id":8077,"title":"Alien³","release_date":"1992-05-22"}]}`)),
	}, nil)

	handler := newTestServer(t, httpMock).Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/v1/search/movies?query=alien&year=1979", "")
	require.Equal(t, http.StatusOK, rec.Code)

	snaps.MatchJSON(t, rec.Body.String())
}

func TestSearchRequiresQuery(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/v1/search/movies", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
