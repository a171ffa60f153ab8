package model

import (
	"encoding/json"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BoardKind enumerates the deck sections a card can belong to.
type BoardKind int

const (
	// BoardCommanders is the command zone.
	BoardCommanders BoardKind = iota

	// BoardMainboard holds the 99.
	BoardMainboard

	// BoardSideboard holds sideboard cards.
	BoardSideboard

	// BoardMaybeboard holds cards being considered for the deck.
	BoardMaybeboard

	// BoardOther is any section Moxfield reports that is not listed above
	// (companions, attractions, tokens, ...). Board.Name keeps its raw name.
	BoardOther
)

// Board identifies the deck section a card belongs to.
//
// The well-known sections are closed variants; anything else is carried as
// BoardOther with its source name so it survives a save/load cycle:
//
//	ParseBoard("mainboard")  // Board{Kind: BoardMainboard, Name: "mainboard"}
//	ParseBoard("companions") // Board{Kind: BoardOther, Name: "companions"}
type Board struct {
	Kind BoardKind
	Name string
}

// Well-known boards.
var (
	Commanders = Board{Kind: BoardCommanders, Name: "commanders"}
	Mainboard  = Board{Kind: BoardMainboard, Name: "mainboard"}
	Sideboard  = Board{Kind: BoardSideboard, Name: "sideboard"}
	Maybeboard = Board{Kind: BoardMaybeboard, Name: "maybeboard"}
)

// ParseBoard maps a source board name to a Board.
func ParseBoard(name string) Board {
	switch name {
	case Commanders.Name:
		return Commanders
	case Mainboard.Name:
		return Mainboard
	case Sideboard.Name:
		return Sideboard
	case Maybeboard.Name:
		return Maybeboard
	default:
		return Board{Kind: BoardOther, Name: name}
	}
}

// String returns the source board name.
func (b Board) String() string {
	return b.Name
}

// Title returns the heading used in decklist.txt: first letter upper-cased,
// the rest lower-cased ("signatureSpells" becomes "Signaturespells").
func (b Board) Title() string {
	return cases.Title(language.Und).String(b.Name)
}

// Less reports whether b sorts before other in decklist order:
// commanders, mainboard, sideboard, maybeboard, then other boards by name.
func (b Board) Less(other Board) bool {
	if b.Kind != other.Kind {
		return b.Kind < other.Kind
	}
	return b.Name < other.Name
}

// MarshalJSON encodes the board as its source name.
func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Name)
}

// UnmarshalJSON decodes a board from its source name.
func (b *Board) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*b = ParseBoard(name)
	return nil
}
