// Package igdb is a hand-rolled client for the IGDB v4 API. Queries are
// posted in the APL body format the API expects.
package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	mhttp "github.com/calbec/medialog/pkg/http"
)

const searchLimit = 10

type Client struct {
	baseURL  string
	clientID string
	token    string
	client   mhttp.HTTPClient
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates an IGDB client. The token is a twitch app access token.
func New(baseURL, clientID, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("igdb base url is empty")
	}

	c := &Client{
		baseURL:  baseURL,
		clientID: clientID,
		token:    token,
		client:   mhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type Game struct {
	ID               int32             `json:"id"`
	Name             string            `json:"name"`
	FirstReleaseDate int64             `json:"first_release_date"`
	Cover            *Cover            `json:"cover"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
}

type Cover struct {
	URL string `json:"url"`
}

type InvolvedCompany struct {
	Company   Company `json:"company"`
	Developer bool    `json:"developer"`
}

type Company struct {
	Name string `json:"name"`
}

// Developer returns the first company marked as developer.
func (g Game) Developer() string {
	for _, involved := range g.InvolvedCompanies {
		if involved.Developer {
			return involved.Company.Name
		}
	}
	return ""
}

type DLC struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type dlcEnvelope struct {
	ID   int32 `json:"id"`
	DLCs []DLC `json:"dlcs"`
}

// SearchGames searches games by name.
func (c *Client) SearchGames(ctx context.Context, query string) ([]Game, error) {
	body := fmt.Sprintf(`search %q; fields name,first_release_date,cover.url,involved_companies.company.name,involved_companies.developer; limit %d;`, query, searchLimit)

	var games []Game
	if err := c.post(ctx, "/v4/games", body, &games); err != nil {
		return nil, err
	}

	return games, nil
}

// GameDLCs fetches a game's DLC chain in release order. A game without DLC
// yields an empty slice.
func (c *Client) GameDLCs(ctx context.Context, id int32) ([]DLC, error) {
	body := fmt.Sprintf(`where id = %d; fields dlcs.id,dlcs.name; sort dlcs.first_release_date asc;`, id)

	var envelopes []dlcEnvelope
	if err := c.post(ctx, "/v4/games", body, &envelopes); err != nil {
		return nil, err
	}

	if len(envelopes) == 0 {
		return nil, nil
	}

	return envelopes[0].DLCs, nil
}

func (c *Client) post(ctx context.Context, path, body string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("igdb request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode igdb response: %w", err)
	}

	return nil
}
