package moxfield

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/handiism/deckdoctor/internal/model"
	"github.com/handiism/deckdoctor/internal/moxfield/dto"
)

const deckURLMarker = "moxfield.com/decks/"

// ExtractDeckID returns the public deck id from a bare id or a deck URL.
//
//	ExtractDeckID("Smh7ryekIUeOQd9mlYjBXA")                                  // "Smh7ryekIUeOQd9mlYjBXA"
//	ExtractDeckID("https://www.moxfield.com/decks/Smh7ryekIUeOQd9mlYjBXA/primer") // "Smh7ryekIUeOQd9mlYjBXA"
func ExtractDeckID(identifierOrURL string) string {
	s := strings.TrimSpace(identifierOrURL)
	idx := strings.LastIndex(s, deckURLMarker)
	if idx == -1 {
		return s
	}
	s = s[idx+len(deckURLMarker):]
	if end := strings.IndexAny(s, "/?#"); end != -1 {
		s = s[:end]
	}
	return s
}

// ParseDeck builds a Deck from a Moxfield v3 deck payload.
//
// Cards are emitted one per board/card-id pair, in payload order, tagged with
// their board. If id is empty the payload's publicId is used. The payload is
// kept on the returned deck as Raw.
//
// Returns an error if the payload is not valid JSON or a card has no name.
func ParseDeck(payload []byte, id string) (*model.Deck, error) {
	var jd dto.JSONDeck
	if err := json.Unmarshal(payload, &jd); err != nil {
		return nil, fmt.Errorf("moxfield: parse deck payload: %w", err)
	}

	deck, err := jd.ToDeck(id)
	if err != nil {
		return nil, fmt.Errorf("moxfield: parse deck payload: %w", err)
	}

	deck.Raw = append(json.RawMessage(nil), payload...)
	return deck, nil
}
