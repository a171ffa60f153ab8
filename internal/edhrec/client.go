package edhrec

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/handiism/deckdoctor/internal/edhrec/dto"
	"github.com/handiism/deckdoctor/internal/http"
	"github.com/handiism/deckdoctor/internal/model"
)

// DefaultJSONURL is the public EDHREC JSON host.
const DefaultJSONURL = "https://json.edhrec.com"

// Client fetches card lists from EDHREC commander pages.
//
// Example usage:
//
//	client := edhrec.NewClient(http.NewClient())
//	recs, err := client.FetchCategory(ctx, "Atraxa, Praetors' Voice", edhrec.HighSynergy)
type Client struct {
	http    *http.Client
	jsonURL string
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithJSONURL points the client at another JSON host.
func WithJSONURL(jsonURL string) Option {
	return func(c *Client) {
		c.jsonURL = strings.TrimRight(jsonURL, "/")
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates an EDHREC client on top of an HTTP client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		http:    httpClient,
		jsonURL: DefaultJSONURL,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageURL returns the JSON page URL of a commander.
func (c *Client) PageURL(commander string) string {
	return fmt.Sprintf("%s/pages/commanders/%s.json", c.jsonURL, Slug(commander))
}

// FetchCategory requests the commander page and returns the cards listed
// under the category's header, in page order. A page without that header
// yields an empty list.
//
// Each call issues exactly one request. Returns *apperr.RemoteFetchError
// (wrapped) on a non-200 answer, and a validation error naming the field when
// a card view has no name.
func (c *Client) FetchCategory(ctx context.Context, commander string, category Category) ([]model.Recommendation, error) {
	url := c.PageURL(commander)
	c.logger.Debug("fetching category",
		zap.String("commander", commander),
		zap.String("category", category.Key),
		zap.String("url", url))

	var page dto.CommanderPage
	if err := c.http.GetJSON(ctx, url, &page); err != nil {
		return nil, fmt.Errorf("edhrec: fetch %s for %q: %w", category.Key, commander, err)
	}

	views := page.List(category.Label)
	recs := make([]model.Recommendation, 0, len(views))
	for i, v := range views {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("edhrec: parse %s entry %d: %w", category.Key, i, err)
		}
		recs = append(recs, v.ToRecommendation())
	}

	c.logger.Debug("fetched category",
		zap.String("category", category.Key),
		zap.Int("cards", len(recs)))
	return recs, nil
}
