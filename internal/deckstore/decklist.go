package deckstore

import (
	"fmt"
	"strings"

	"github.com/handiism/deckdoctor/internal/model"
)

// Decklist renders the human-readable decklist.txt content.
//
//	# Atraxa Counters
//	# Format: commander
//	# Proliferate everything.
//
//	## Commanders
//	1 Atraxa, Praetors' Voice
//
//	## Mainboard
//	1 Doubling Season
//	...
//
// Boards come in the order commanders, mainboard, sideboard, maybeboard, then
// any other board alphabetically; cards are sorted by name within a board.
func Decklist(deck *model.Deck) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", deck.Name)
	fmt.Fprintf(&b, "# Format: %s\n", deck.Format)
	if deck.Description != "" {
		fmt.Fprintf(&b, "# %s\n", deck.Description)
	}
	b.WriteString("\n")

	for _, group := range deck.Boards() {
		fmt.Fprintf(&b, "## %s\n", group.Board.Title())
		for _, card := range group.Cards {
			fmt.Fprintf(&b, "%d %s\n", card.Quantity, card.Name)
		}
		b.WriteString("\n")
	}

	return b.String()
}
