// Package openlibrary is a hand-rolled client for the OpenLibrary search and
// works APIs.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	mhttp "github.com/calbec/medialog/pkg/http"
)

const searchLimit = 10

type Client struct {
	baseURL string
	client  mhttp.HTTPClient
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates an OpenLibrary client. No api key is required.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("openlibrary base url is empty")
	}

	c := &Client{
		baseURL: baseURL,
		client:  mhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverI           int32    `json:"cover_i"`
}

// Author returns the first listed author, if any.
func (d Doc) Author() string {
	if len(d.AuthorName) == 0 {
		return ""
	}
	return d.AuthorName[0]
}

// WorkKey strips the /works/ prefix off the doc key.
func (d Doc) WorkKey() string {
	return strings.TrimPrefix(d.Key, "/works/")
}

type Work struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Covers []int32 `json:"covers"`
}

// SearchBooks queries the search endpoint by title.
func (c *Client) SearchBooks(ctx context.Context, title string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("title", title)
	params.Set("limit", fmt.Sprintf("%d", searchLimit))
	params.Set("fields", "key,title,author_name,first_publish_year,cover_i")

	var response SearchResponse
	if err := c.get(ctx, "/search.json", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// SearchByAuthor lists an author's works ordered oldest first. The add flow
// derives prequel/sequel placement from the neighbors in this list.
func (c *Client) SearchByAuthor(ctx context.Context, author string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("author", author)
	params.Set("limit", fmt.Sprintf("%d", searchLimit*5))
	params.Set("sort", "old")
	params.Set("fields", "key,title,author_name,first_publish_year,cover_i")

	var response SearchResponse
	if err := c.get(ctx, "/search.json", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Work fetches a work record including the cover id list used by the cover
// carousel. A missing key yields (nil, nil).
func (c *Client) Work(ctx context.Context, key string) (*Work, error) {
	endpoint := c.baseURL + fmt.Sprintf("/works/%s.json", strings.TrimPrefix(key, "/works/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openlibrary request failed: %s", resp.Status)
	}

	var work Work
	if err := json.NewDecoder(resp.Body).Decode(&work); err != nil {
		return nil, fmt.Errorf("failed to decode openlibrary response: %w", err)
	}

	return &work, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openlibrary request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode openlibrary response: %w", err)
	}

	return nil
}
