package dto

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/handiism/deckdoctor/internal/model"
)

const (
	defaultDeckName   = "Unknown Deck"
	defaultDeckFormat = "unknown"
)

// JSONDeck represents the deserialized deck payload from the Moxfield v3 API.
//
// Boards and cards are decoded into ordered maps so cards keep the order in
// which Moxfield lists them.
type JSONDeck struct {
	PublicID    string                                          `json:"publicId"`
	Name        *string                                         `json:"name"`
	Format      *string                                         `json:"format"`
	Description *string                                         `json:"description"`
	Boards      *orderedmap.OrderedMap[string, json.RawMessage] `json:"boards"`
}

// JSONBoard is one entry of the boards object.
type JSONBoard struct {
	Cards *orderedmap.OrderedMap[string, JSONCardEntry] `json:"cards"`
}

// JSONCardEntry is one card of a board, keyed by Moxfield card id.
type JSONCardEntry struct {
	Quantity *int     `json:"quantity"`
	Card     JSONCard `json:"card"`
}

// JSONCard holds the card fields deckdoctor uses.
type JSONCard struct {
	Name     string  `json:"name"`
	TypeLine string  `json:"type_line"`
	ManaCost string  `json:"mana_cost"`
	CMC      float64 `json:"cmc"`
}

// Validate checks the fields the payload must carry.
func (c JSONCard) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
	)
}

// ToDeck converts JSONDeck to a model.Deck. Board values that are not JSON
// objects are skipped. A card without a name fails the whole conversion.
func (jd *JSONDeck) ToDeck(id string) (*model.Deck, error) {
	deck := &model.Deck{
		Name:   stringOr(jd.Name, defaultDeckName),
		Format: stringOr(jd.Format, defaultDeckFormat),
		ID:     id,
	}
	if jd.Description != nil {
		deck.Description = *jd.Description
	}
	if deck.ID == "" {
		deck.ID = jd.PublicID
	}

	if jd.Boards == nil {
		return deck, nil
	}

	for pair := jd.Boards.Oldest(); pair != nil; pair = pair.Next() {
		if !isObject(pair.Value) {
			continue
		}
		var board JSONBoard
		if err := json.Unmarshal(pair.Value, &board); err != nil {
			return nil, fmt.Errorf("board %q: %w", pair.Key, err)
		}
		if board.Cards == nil {
			continue
		}

		b := model.ParseBoard(pair.Key)
		for entry := board.Cards.Oldest(); entry != nil; entry = entry.Next() {
			card, err := entry.Value.toCard(b)
			if err != nil {
				return nil, fmt.Errorf("board %q card %q: %w", pair.Key, entry.Key, err)
			}
			deck.Cards = append(deck.Cards, card)
		}
	}

	return deck, nil
}

func (e JSONCardEntry) toCard(board model.Board) (model.Card, error) {
	if err := e.Card.Validate(); err != nil {
		return model.Card{}, err
	}

	quantity := 1
	if e.Quantity != nil {
		quantity = *e.Quantity
	}

	return model.Card{
		Name:     e.Card.Name,
		Quantity: quantity,
		Board:    board,
		TypeLine: e.Card.TypeLine,
		ManaCost: e.Card.ManaCost,
		CMC:      e.Card.CMC,
	}, nil
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// isObject reports whether raw holds a JSON object.
func isObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
