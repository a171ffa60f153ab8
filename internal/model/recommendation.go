package model

// Recommendation is a card suggested by EDHREC for a commander.
type Recommendation struct {
	// Name is the card name.
	Name string `json:"name"`

	// Synergy is EDHREC's synergy score for the card with this commander.
	Synergy float64 `json:"synergy"`

	// NumDecks is the number of sampled decks playing the card.
	NumDecks int `json:"num_decks"`

	// InclusionRate is NumDecks divided by the number of decks that could
	// play the card; 0 when that number is 0.
	InclusionRate float64 `json:"inclusion_rate"`

	// InDeck is set when the card is already part of the deck being analyzed.
	InDeck bool `json:"in_deck"`
}

// InclusionRate computes numDecks/potentialDecks, returning 0 when
// potentialDecks is 0.
func InclusionRate(numDecks, potentialDecks int) float64 {
	if potentialDecks == 0 {
		return 0
	}
	return float64(numDecks) / float64(potentialDecks)
}

// CutCandidate is a deck card that may be worth cutting.
type CutCandidate struct {
	Name     string   `json:"name"`
	Reason   string   `json:"reason"`
	Synergy  *float64 `json:"synergy,omitempty"`
	TypeLine string   `json:"type_line"`
}

// Analysis is the result of comparing a deck against EDHREC data.
type Analysis struct {
	// Commander is the commander the EDHREC data was fetched for.
	Commander string `json:"commander"`

	// LowSynergy lists cards EDHREC knows about but rates poorly, lowest first.
	LowSynergy []CutCandidate `json:"low_synergy"`

	// OffTheme lists cards EDHREC does not list for this commander, in deck order.
	OffTheme []CutCandidate `json:"off_theme"`

	// Coverage is the fraction of eligible cards that appear in EDHREC data.
	Coverage float64 `json:"edhrec_coverage"`

	// Eligible counts non-basic mainboard and commander-zone cards, excluding
	// the commander itself.
	Eligible int `json:"eligible"`

	// InEDHREC counts eligible cards found in EDHREC data.
	InEDHREC int `json:"in_edhrec"`
}
