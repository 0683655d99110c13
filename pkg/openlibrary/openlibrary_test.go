package openlibrary

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/calbec/medialog/pkg/http/mocks"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestSearchBooks(t *testing.T) {
	ctrl := gomock.NewController(t)

	httpMock := mocks.NewMockHTTPClient(ctrl)
	httpMock.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/search.json", req.URL.Path)
		assert.Equal(t, "dune", req.URL.Query().Get("title"))
		return jsonResponse(http.StatusOK, `{"numFound":1,"docs":[{"key":"/works/OL893415W","title":"Dune","author_name":["Frank Herbert"],"first_publish_year":1965,"cover_i":11481354}]}`), nil
	})

	c, err := New("https://openlibrary.org", WithHTTPClient(httpMock))
	require.NoError(t, err)

	resp, err := c.SearchBooks(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, resp.Docs, 1)

	doc := resp.Docs[0]
	assert.Equal(t, "OL893415W", doc.WorkKey())
	assert.Equal(t, "Frank Herbert", doc.Author())
	assert.Equal(t, 1965, doc.FirstPublishYear)
}

func TestWork(t *testing.T) {
	ctrl := gomock.NewController(t)

	httpMock := mocks.NewMockHTTPClient(ctrl)
	httpMock.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/works/OL893415W.json", req.URL.Path)
		return jsonResponse(http.StatusOK, `{"key":"/works/OL893415W","title":"Dune","covers":[11481354,8594906]}`), nil
	})

	c, err := New("https://openlibrary.org", WithHTTPClient(httpMock))
	require.NoError(t, err)

	work, err := c.Work(context.Background(), "/works/OL893415W")
	require.NoError(t, err)
	require.NotNil(t, work)
	assert.Equal(t, []int32{11481354, 8594906}, work.Covers)
}

func TestWorkMissing(t *testing.T) {
	ctrl := gomock.NewController(t)

	httpMock := mocks.NewMockHTTPClient(ctrl)
	httpMock.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusNotFound, ``), nil)

	c, err := New("https://openlibrary.org", WithHTTPClient(httpMock))
	require.NoError(t, err)

	work, err := c.Work(context.Background(), "OL0W")
	require.NoError(t, err)
	assert.Nil(t, work)
}

func TestSearchBooksServerError(t *testing.T) {
	ctrl := gomock.NewController(t)

	httpMock := mocks.NewMockHTTPClient(ctrl)
	httpMock.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusBadGateway, ``), nil)

	c, err := New("https://openlibrary.org", WithHTTPClient(httpMock))
	require.NoError(t, err)

	_, err = c.SearchBooks(context.Background(), "dune")
	assert.Error(t, err)
}
