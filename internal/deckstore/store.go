// Package deckstore saves decks to and loads decks from a local directory.
//
// A saved deck directory holds three files:
//
//	deck.json     the raw Moxfield payload (only when the deck has one)
//	cards.json    the flat card list
//	decklist.txt  a human-readable list grouped by board
//
// Load only reads deck.json and re-derives the cards from it, so a deck
// saved from Moxfield loads back into the same card list.
package deckstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/deckdoctor/internal/apperr"
	ioutils "github.com/handiism/deckdoctor/internal/io"
	"github.com/handiism/deckdoctor/internal/model"
	"github.com/handiism/deckdoctor/internal/moxfield"
)

// File names inside a deck directory.
const (
	DeckFile     = "deck.json"
	CardsFile    = "cards.json"
	DecklistFile = "decklist.txt"
)

// Load reads the deck saved in dir.
//
// The deck id is the payload's publicId, or the directory's base name when
// the payload has none. Returns an error wrapping apperr.ErrNotFound when
// dir or its deck.json is missing.
func Load(dir string) (*model.Deck, error) {
	path := filepath.Join(dir, DeckFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("deckstore: load %s: %w", path, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("deckstore: load %s: %w", path, err)
	}

	deck, err := moxfield.ParseDeck(data, "")
	if err != nil {
		return nil, fmt.Errorf("deckstore: load %s: %w", path, err)
	}
	if deck.ID == "" {
		deck.ID = filepath.Base(filepath.Clean(dir))
	}
	return deck, nil
}

// Save writes deck.json (when the deck carries a raw payload), cards.json and
// decklist.txt into dir, creating it if needed.
func Save(deck *model.Deck, dir string) error {
	if err := ioutils.EnsureDir(dir); err != nil {
		return fmt.Errorf("deckstore: create %s: %w", dir, err)
	}

	if len(deck.Raw) > 0 {
		if err := ioutils.WriteIndentedJSON(filepath.Join(dir, DeckFile), deck.Raw); err != nil {
			return fmt.Errorf("deckstore: save: %w", err)
		}
	}

	cards := deck.Cards
	if cards == nil {
		cards = []model.Card{}
	}
	if err := ioutils.WriteJSON(filepath.Join(dir, CardsFile), cards); err != nil {
		return fmt.Errorf("deckstore: save: %w", err)
	}

	if err := ioutils.WriteFile(filepath.Join(dir, DecklistFile), []byte(Decklist(deck))); err != nil {
		return fmt.Errorf("deckstore: save: %w", err)
	}
	return nil
}
