// Package metadata caches the external game catalog locally. The client
// speaks to the catalog API; the service decides when a cached row is still
// fresh enough to serve.
package metadata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 15 * time.Second

type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http:    resty.New().SetTimeout(requestTimeout),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// RemoteGame is the catalog's view of a game.
type RemoteGame struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image"`
	Description     string  `json:"description_raw"`
	Rating          float64 `json:"rating"`
}

// GameByID fetches one catalog entry. An id the catalog does not know is a
// nil result, not an error; the caller skips and may retry on a later run.
func (c *Client) GameByID(ctx context.Context, remoteID int64) (*RemoteGame, error) {
	var out RemoteGame
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&out).
		Get(fmt.Sprintf("%s/games/%d", c.baseURL, remoteID))
	if err != nil {
		return nil, fmt.Errorf("metadata fetch failed for %d: %w", remoteID, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("metadata fetch for %d returned status %d", remoteID, resp.StatusCode())
	}
	return &out, nil
}
