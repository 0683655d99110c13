// Package tmdb is a small hand-rolled client for the TMDB v3 API covering
// the search and detail calls the add flow needs.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/calbec/medialog/pkg/cache"
	mhttp "github.com/calbec/medialog/pkg/http"
)

const ReleaseDateFormat = "2006-01-02"

type Client struct {
	baseURL string
	apiKey  string
	client  mhttp.HTTPClient
	details *cache.Cache[int32, *TVDetails]
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a TMDB client. The api key is sent as a bearer token.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("tmdb base url is empty")
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  mhttp.NewRateLimitedHTTPClient(),
		details: cache.New[int32, *TVDetails](),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type SearchResponse struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []SearchResult `json:"results"`
}

type SearchResult struct {
	ID           int32   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Popularity   float64 `json:"popularity"`
}

// DisplayTitle returns the title field movies use or the name field tv uses.
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

type MovieDetails struct {
	ID                  int32       `json:"id"`
	ImdbID              *string     `json:"imdb_id"`
	Title               string      `json:"title"`
	PosterPath          *string     `json:"poster_path"`
	BackdropPath        *string     `json:"backdrop_path"`
	ReleaseDate         string      `json:"release_date"`
	BelongsToCollection *Collection `json:"belongs_to_collection"`
}

type Collection struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type CollectionDetails struct {
	ID    int32            `json:"id"`
	Name  string           `json:"name"`
	Parts []CollectionPart `json:"parts"`
}

type CollectionPart struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

type TVDetails struct {
	ID           int32    `json:"id"`
	Name         string   `json:"name"`
	PosterPath   *string  `json:"poster_path"`
	FirstAirDate string   `json:"first_air_date"`
	Seasons      []Season `json:"seasons"`
}

type Season struct {
	SeasonNumber int32 `json:"season_number"`
	EpisodeCount int32 `json:"episode_count"`
}

// SearchMovie queries the movie search endpoint. An optional 4-digit year
// narrows the search.
func (c *Client) SearchMovie(ctx context.Context, query, year string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	if year != "" {
		params.Set("year", year)
	}

	var response SearchResponse
	if err := c.get(ctx, "/3/search/movie", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// SearchTV queries the tv search endpoint
func (c *Client) SearchTV(ctx context.Context, query, year string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	if year != "" {
		params.Set("first_air_date_year", year)
	}

	var response SearchResponse
	if err := c.get(ctx, "/3/search/tv", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// MovieDetails fetches a movie's detail record. A missing id yields (nil, nil).
func (c *Client) MovieDetails(ctx context.Context, id int32) (*MovieDetails, error) {
	var details MovieDetails
	found, err := c.getAllowMissing(ctx, fmt.Sprintf("/3/movie/%d", id), nil, &details)
	if err != nil || !found {
		return nil, err
	}

	return &details, nil
}

// CollectionDetails fetches the movie collection a film belongs to.
// A missing id yields (nil, nil).
func (c *Client) CollectionDetails(ctx context.Context, id int32) (*CollectionDetails, error) {
	var details CollectionDetails
	found, err := c.getAllowMissing(ctx, fmt.Sprintf("/3/collection/%d", id), nil, &details)
	if err != nil || !found {
		return nil, err
	}

	return &details, nil
}

// TVDetails fetches a show's detail record including its season list.
// Season lists rarely change mid-session so hits are served from a cache.
// A missing id yields (nil, nil).
func (c *Client) TVDetails(ctx context.Context, id int32) (*TVDetails, error) {
	if details, ok := c.details.Get(id); ok {
		return details, nil
	}

	var details TVDetails
	found, err := c.getAllowMissing(ctx, fmt.Sprintf("/3/tv/%d", id), nil, &details)
	if err != nil || !found {
		return nil, err
	}

	c.details.Set(id, &details)
	return &details, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	_, err := c.do(ctx, path, params, out, false)
	return err
}

func (c *Client) getAllowMissing(ctx context.Context, path string, params url.Values, out any) (bool, error) {
	return c.do(ctx, path, params, out, true)
}

func (c *Client) do(ctx context.Context, path string, params url.Values, out any, allowMissing bool) (bool, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if allowMissing && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("tmdb request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return true, nil
}
