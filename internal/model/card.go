package model

import "strings"

// Card is a single card entry in a deck.
//
// A Card is built once from the source payload and never mutated afterwards.
// The JSON form is the one written to cards.json:
//
//	{"name": "Sol Ring", "quantity": 1, "board": "mainboard",
//	 "type_line": "Artifact", "mana_cost": "{1}", "cmc": 1}
type Card struct {
	// Name is the card name as printed.
	Name string `json:"name"`

	// Quantity is the number of copies in the board.
	Quantity int `json:"quantity"`

	// Board is the deck section the card belongs to.
	Board Board `json:"board"`

	// TypeLine is the full type line, e.g. "Basic Land — Forest".
	TypeLine string `json:"type_line"`

	// ManaCost is the mana cost in brace notation, e.g. "{2}{R}".
	ManaCost string `json:"mana_cost"`

	// CMC is the converted mana cost.
	CMC float64 `json:"cmc"`
}

// IsBasicLand reports whether the card is a basic land.
func (c Card) IsBasicLand() bool {
	return strings.Contains(c.TypeLine, "Basic Land")
}
