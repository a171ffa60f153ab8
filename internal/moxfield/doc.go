// Package moxfield fetches Commander decks from the Moxfield API and turns
// the v3 deck payload into a model.Deck.
//
// # Fetching
//
//	client := moxfield.NewClient(http.NewClient())
//	deck, err := client.FetchDeck(ctx, "Smh7ryekIUeOQd9mlYjBXA")
//
// Both bare ids and deck URLs are accepted; see ExtractDeckID.
//
// # Payload Format
//
// The v3 payload nests cards as boards.{board}.cards.{cardId}:
//
//	{"name": "...", "format": "commander", "boards": {
//	    "commanders": {"cards": {"abc": {"quantity": 1,
//	        "card": {"name": "Atraxa, Praetors' Voice", "type_line": "...", "mana_cost": "...", "cmc": 4}}}}}}
//
// ParseDeck keeps the payload's ordering and stores the payload on the deck,
// so a saved deck.json can be parsed again into the same card list.
package moxfield
