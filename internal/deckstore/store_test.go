package deckstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/deckdoctor/internal/apperr"
	"github.com/handiism/deckdoctor/internal/model"
	"github.com/handiism/deckdoctor/internal/moxfield"
	"github.com/handiism/deckdoctor/internal/testutil"
)

func atraxaDeck(t *testing.T) *model.Deck {
	t.Helper()
	deck, err := moxfield.ParseDeck([]byte(testutil.AtraxaDeckPayload), testutil.AtraxaDeckID)
	require.NoError(t, err)
	return deck
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "atraxa")
	deck := atraxaDeck(t)

	require.NoError(t, Save(deck, dir))

	loaded, err := Load(dir)
	require.NoError(t, err)

	if diff := cmp.Diff(deck.Cards, loaded.Cards); diff != "" {
		t.Errorf("cards mismatch after round trip (-saved +loaded):\n%s", diff)
	}
	assert.Equal(t, deck.Name, loaded.Name)
	assert.Equal(t, deck.Format, loaded.Format)
	assert.Equal(t, testutil.AtraxaDeckID, loaded.ID)
	assert.Equal(t, deck.TotalCards(), loaded.TotalCards())
}

func TestSave_WritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	deck := atraxaDeck(t)

	require.NoError(t, Save(deck, dir))

	for _, name := range []string{DeckFile, CardsFile, DecklistFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, CardsFile))
	require.NoError(t, err)

	var cards []map[string]any
	require.NoError(t, json.Unmarshal(data, &cards))
	require.Len(t, cards, len(deck.Cards))
	assert.Equal(t, map[string]any{
		"name":      "Sol Ring",
		"quantity":  1.0,
		"board":     "mainboard",
		"type_line": "Artifact",
		"mana_cost": "{1}",
		"cmc":       1.0,
	}, cards[0])
}

func TestSave_WithoutRawPayload(t *testing.T) {
	dir := t.TempDir()
	deck := &model.Deck{
		Name:   "Handmade",
		Format: "commander",
		Cards:  []model.Card{{Name: "Opt", Quantity: 1, Board: model.Mainboard}},
	}

	require.NoError(t, Save(deck, dir))

	_, err := os.Stat(filepath.Join(dir, DeckFile))
	assert.True(t, errors.Is(err, os.ErrNotExist), "deck.json must not be written without a payload")

	_, err = Load(dir)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLoad_FallsBackToDirectoryName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tannuk")
	require.NoError(t, os.MkdirAll(dir, 0755))
	payload := `{"name": "Tannuk", "boards": {"commanders": {"cards": {"t": {"quantity": 1, "card": {"name": "Tannuk, Memorial Ensign"}}}}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DeckFile), []byte(payload), 0644))

	deck, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "tannuk", deck.ID)
	assert.Equal(t, "Tannuk, Memorial Ensign", deck.Commanders()[0].Name)
}

func TestLoad_CorruptPayload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DeckFile), []byte("{"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDecklist(t *testing.T) {
	deck := &model.Deck{
		Name:        "Atraxa Counters",
		Format:      "commander",
		Description: "Proliferate everything.",
		Cards: []model.Card{
			{Name: "Zulaport Cutthroat", Quantity: 1, Board: model.Maybeboard},
			{Name: "Sol Ring", Quantity: 1, Board: model.Mainboard},
			{Name: "Lurrus of the Dream-Den", Quantity: 1, Board: model.ParseBoard("companions")},
			{Name: "Forest", Quantity: 10, Board: model.Mainboard},
			{Name: "Sticker Sheet", Quantity: 1, Board: model.ParseBoard("attractions")},
			{Name: "Atraxa, Praetors' Voice", Quantity: 1, Board: model.Commanders},
			{Name: "Tamiyo's Safekeeping", Quantity: 1, Board: model.Sideboard},
		},
	}

	want := `# Atraxa Counters
# Format: commander
# Proliferate everything.

## Commanders
1 Atraxa, Praetors' Voice

## Mainboard
10 Forest
1 Sol Ring

## Sideboard
1 Tamiyo's Safekeeping

## Maybeboard
1 Zulaport Cutthroat

## Attractions
1 Sticker Sheet

## Companions
1 Lurrus of the Dream-Den

`
	assert.Equal(t, want, Decklist(deck))
}

func TestDecklist_NoDescription(t *testing.T) {
	deck := &model.Deck{Name: "Empty", Format: "commander"}
	assert.Equal(t, "# Empty\n# Format: commander\n\n", Decklist(deck))
}
