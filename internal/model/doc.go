// Package model defines the core data structures used throughout deckdoctor.
//
// # Deck and Card
//
// Deck is a Commander deck as fetched from Moxfield; Card is one entry of one
// board:
//
//	deck.Commanders() // cards in the command zone
//	deck.Mainboard()  // the 99
//	deck.TotalCards() // sum of quantities over every board
//	deck.Boards()     // cards grouped in decklist order
//
// # Board
//
// Board is a closed set of variants (commanders, mainboard, sideboard,
// maybeboard) plus BoardOther for any other section name.
//
// # Recommendations
//
// Recommendation, CutCandidate and Analysis carry the EDHREC-derived results.
package model
