package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Deck is a Commander deck fetched from Moxfield or loaded from disk.
//
// Cards keeps the order in which the source payload lists them. Raw holds the
// payload the deck was parsed from; it is nil for decks built in code.
//
// Example:
//
//	deck, _ := client.FetchDeck(ctx, "https://moxfield.com/decks/Smh7ryekIUeOQd9mlYjBXA")
//	fmt.Println(deck)
//	// Tannuk Stompy (commander) - 100 cards - Commander: Tannuk, Memorial Ensign
type Deck struct {
	// Name is the deck title.
	Name string

	// Format is the Moxfield format name, e.g. "commander".
	Format string

	// ID is the Moxfield public deck id.
	ID string

	// Description is the free-form deck description.
	Description string

	// Cards lists every card of every board.
	Cards []Card

	// Raw is the untouched source payload, if any.
	Raw json.RawMessage
}

// BoardGroup is a board together with its cards, as printed in decklist.txt.
type BoardGroup struct {
	Board Board
	Cards []Card
}

// Commanders returns the cards in the command zone.
func (d *Deck) Commanders() []Card {
	return d.cardsIn(BoardCommanders)
}

// Mainboard returns the mainboard cards.
func (d *Deck) Mainboard() []Card {
	return d.cardsIn(BoardMainboard)
}

// HasCommander reports whether the deck has at least one commander.
func (d *Deck) HasCommander() bool {
	return len(d.Commanders()) > 0
}

// TotalCards returns the number of cards across all boards, counting quantities.
func (d *Deck) TotalCards() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Quantity
	}
	return total
}

// Boards groups the cards by board in decklist order. Cards inside a group
// are sorted by name; empty boards are never returned.
func (d *Deck) Boards() []BoardGroup {
	index := make(map[string]int)
	var groups []BoardGroup
	for _, c := range d.Cards {
		i, ok := index[c.Board.Name]
		if !ok {
			i = len(groups)
			index[c.Board.Name] = i
			groups = append(groups, BoardGroup{Board: c.Board})
		}
		groups[i].Cards = append(groups[i].Cards, c)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Board.Less(groups[j].Board)
	})
	for _, g := range groups {
		sort.SliceStable(g.Cards, func(i, j int) bool {
			return g.Cards[i].Name < g.Cards[j].Name
		})
	}
	return groups
}

// String summarises the deck on one line.
func (d *Deck) String() string {
	commanders := d.Commanders()
	names := make([]string, len(commanders))
	for i, c := range commanders {
		names[i] = c.Name
	}
	return fmt.Sprintf("%s (%s) - %d cards - Commander: %s",
		d.Name, d.Format, d.TotalCards(), strings.Join(names, ", "))
}

func (d *Deck) cardsIn(kind BoardKind) []Card {
	var out []Card
	for _, c := range d.Cards {
		if c.Board.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
