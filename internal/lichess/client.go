// Package lichess is a thin client for the public Lichess rating API.
package lichess

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "lichess-gateway/pkg/errors"
)

const DefaultBaseURL = "https://lichess.org/api"

// Player is one entry of a top-players list. Only the fields the gateway
// reads are declared; the raw body is proxied as-is to clients.
type Player struct {
	Username string `json:"username"`
}

// TopList is the decoded shape of /player/top/{n}/classical.
type TopList struct {
	Users []Player `json:"users"`
}

// ModeHistory is one game mode of /user/{username}/rating-history.
// Points are [year, month, day, rating] quadruples with a 0-based month.
type ModeHistory struct {
	Name   string  `json:"name"`
	Points [][]int `json:"points"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// TopClassicalPlayers fetches the top classical players list. The body is
// returned verbatim so the proxy endpoint can pass it through unchanged.
func (c *Client) TopClassicalPlayers(ctx context.Context, limit int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/player/top/%d/classical", c.baseURL, limit))
}

// RatingHistory fetches the per-mode rating history for one player.
func (c *Client) RatingHistory(ctx context.Context, username string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/user/%s/rating-history", c.baseURL, url.PathEscape(username)))
}

func (c *Client) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", apperrors.ErrUpstreamUnavailable, resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return body, nil
}

// ParseTopList decodes a raw top-players body.
func ParseTopList(raw json.RawMessage) (TopList, error) {
	var top TopList
	if err := json.Unmarshal(raw, &top); err != nil {
		return TopList{}, fmt.Errorf("%w: decode top players: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return top, nil
}

// ParseHistories decodes a raw rating-history body.
func ParseHistories(raw json.RawMessage) ([]ModeHistory, error) {
	var histories []ModeHistory
	if err := json.Unmarshal(raw, &histories); err != nil {
		return nil, fmt.Errorf("%w: decode rating history: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return histories, nil
}
