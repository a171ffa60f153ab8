package moxfield

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/deckdoctor/internal/apperr"
	"github.com/handiism/deckdoctor/internal/http"
	"github.com/handiism/deckdoctor/internal/model"
	"github.com/handiism/deckdoctor/internal/testutil"
)

func TestExtractDeckID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Smh7ryekIUeOQd9mlYjBXA", "Smh7ryekIUeOQd9mlYjBXA"},
		{"https://moxfield.com/decks/Smh7ryekIUeOQd9mlYjBXA", "Smh7ryekIUeOQd9mlYjBXA"},
		{"https://www.moxfield.com/decks/Smh7ryekIUeOQd9mlYjBXA/primer", "Smh7ryekIUeOQd9mlYjBXA"},
		{"moxfield.com/decks/abc?view=stacks", "abc"},
		{"https://moxfield.com/decks/abc#top", "abc"},
		{"  abc  ", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExtractDeckID(tt.input); got != tt.want {
				t.Errorf("ExtractDeckID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDeck(t *testing.T) {
	deck, err := ParseDeck([]byte(testutil.AtraxaDeckPayload), "given-id")
	require.NoError(t, err)

	assert.Equal(t, "Atraxa Counters", deck.Name)
	assert.Equal(t, "commander", deck.Format)
	assert.Equal(t, "given-id", deck.ID)
	assert.Equal(t, "Proliferate everything.", deck.Description)
	assert.NotEmpty(t, deck.Raw)

	// payload order is kept: mainboard first, then commanders, sideboard, maybeboard
	names := make([]string, len(deck.Cards))
	for i, c := range deck.Cards {
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		"Sol Ring", "Forest", "Rhystic Study", "Doubling Season", "Grizzly Bears", "Evolution Sage",
		"Atraxa, Praetors' Voice",
		"Tamiyo's Safekeeping",
		"Deepglow Skate",
	}, names)

	assert.Equal(t, model.Mainboard, deck.Cards[0].Board)
	assert.Equal(t, model.Commanders, deck.Cards[6].Board)
	assert.Equal(t, 10, deck.Cards[1].Quantity)
	assert.Equal(t, "Basic Land — Forest", deck.Cards[1].TypeLine)
	assert.Equal(t, "{2}{U}", deck.Cards[2].ManaCost)
	assert.Equal(t, 3.0, deck.Cards[2].CMC)
	// missing quantity defaults to 1
	assert.Equal(t, 1, deck.Cards[8].Quantity)
	assert.Equal(t, 18, deck.TotalCards())
}

func TestParseDeck_UsesPublicIDWhenNoIDGiven(t *testing.T) {
	deck, err := ParseDeck([]byte(testutil.AtraxaDeckPayload), "")
	require.NoError(t, err)
	assert.Equal(t, testutil.AtraxaDeckID, deck.ID)
}

func TestParseDeck_Defaults(t *testing.T) {
	deck, err := ParseDeck([]byte(`{"boards": {"mainboard": {"cards": {"x": {"card": {"name": "Opt"}}}}}}`), "id")
	require.NoError(t, err)

	assert.Equal(t, "Unknown Deck", deck.Name)
	assert.Equal(t, "unknown", deck.Format)
	assert.Equal(t, "", deck.Description)
	require.Len(t, deck.Cards, 1)
	assert.Equal(t, model.Card{Name: "Opt", Quantity: 1, Board: model.Mainboard}, deck.Cards[0])
}

func TestParseDeck_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "missing card name",
			payload: `{"boards": {"mainboard": {"cards": {"x": {"quantity": 1, "card": {"type_line": "Instant"}}}}}}`,
			wantMsg: "name: cannot be blank",
		},
		{
			name:    "not json",
			payload: `<html>cloudflare</html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeck([]byte(tt.payload), "id")
			require.Error(t, err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestClient_FetchDeck(t *testing.T) {
	fake := testutil.NewMoxfield(t, map[string]string{
		testutil.AtraxaDeckID: testutil.AtraxaDeckPayload,
	})
	client := NewClient(http.NewClient(), WithAPIURL(fake.URL()+"/"))

	deck, err := client.FetchDeck(context.Background(), "https://moxfield.com/decks/"+testutil.AtraxaDeckID)
	require.NoError(t, err)

	assert.Equal(t, "Atraxa Counters", deck.Name)
	assert.Equal(t, testutil.AtraxaDeckID, deck.ID)
	assert.Equal(t, []string{testutil.AtraxaDeckID}, fake.Requests())
}

func TestClient_FetchDeck_NotFound(t *testing.T) {
	fake := testutil.NewMoxfield(t, nil)
	client := NewClient(http.NewClient(), WithAPIURL(fake.URL()))

	_, err := client.FetchDeck(context.Background(), "missing")

	var rfe *apperr.RemoteFetchError
	require.True(t, errors.As(err, &rfe), "expected RemoteFetchError, got %v", err)
	assert.Equal(t, 404, rfe.StatusCode)
}

func TestClient_FetchDeck_EmptyID(t *testing.T) {
	client := NewClient(http.NewClient())
	_, err := client.FetchDeck(context.Background(), "https://moxfield.com/decks/")
	assert.Error(t, err)
}
