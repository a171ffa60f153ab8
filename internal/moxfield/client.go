package moxfield

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/handiism/deckdoctor/internal/http"
	"github.com/handiism/deckdoctor/internal/model"
)

// DefaultAPIURL is the public Moxfield API host.
const DefaultAPIURL = "https://api2.moxfield.com"

// Client fetches decks from the Moxfield API.
//
// Example usage:
//
//	client := moxfield.NewClient(http.NewClient())
//	deck, err := client.FetchDeck(ctx, "https://moxfield.com/decks/Smh7ryekIUeOQd9mlYjBXA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(deck)
type Client struct {
	http   *http.Client
	apiURL string
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL points the client at another API host.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Moxfield client on top of an HTTP client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		http:   httpClient,
		apiURL: DefaultAPIURL,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DeckURL returns the API URL for a deck id.
func (c *Client) DeckURL(id string) string {
	return fmt.Sprintf("%s/v3/decks/all/%s", c.apiURL, id)
}

// FetchDeck fetches a deck by public id or deck URL.
//
// Returns *apperr.RemoteFetchError (wrapped) when Moxfield answers with a
// non-200 status.
func (c *Client) FetchDeck(ctx context.Context, identifierOrURL string) (*model.Deck, error) {
	id := ExtractDeckID(identifierOrURL)
	if id == "" {
		return nil, fmt.Errorf("moxfield: no deck id in %q", identifierOrURL)
	}

	c.logger.Debug("fetching deck", zap.String("id", id))

	body, err := c.http.Get(ctx, c.DeckURL(id))
	if err != nil {
		return nil, fmt.Errorf("moxfield: fetch deck %s: %w", id, err)
	}

	deck, err := ParseDeck(body, id)
	if err != nil {
		return nil, err
	}

	c.logger.Info("fetched deck",
		zap.String("id", id),
		zap.String("name", deck.Name),
		zap.Int("cards", deck.TotalCards()))
	return deck, nil
}
