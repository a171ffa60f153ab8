// Package dto holds the EDHREC JSON payload shapes.
package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/handiism/deckdoctor/internal/model"
)

// CommanderPage is the subset of an EDHREC commander page deckdoctor reads.
type CommanderPage struct {
	Container struct {
		JSONDict struct {
			CardLists []CardList `json:"cardlists"`
		} `json:"json_dict"`
	} `json:"container"`
}

// CardList is one titled card list of a commander page.
type CardList struct {
	Header    string     `json:"header"`
	CardViews []CardView `json:"cardviews"`
}

// CardView is one card entry of a card list.
type CardView struct {
	Name           string  `json:"name"`
	Synergy        float64 `json:"synergy"`
	NumDecks       int     `json:"num_decks"`
	PotentialDecks *int    `json:"potential_decks"`
}

// Validate checks the fields every card view must carry.
func (v CardView) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Name, validation.Required),
	)
}

// List returns the card views under header, or nil when the page has no
// such list.
func (p *CommanderPage) List(header string) []CardView {
	for _, l := range p.Container.JSONDict.CardLists {
		if l.Header == header {
			return l.CardViews
		}
	}
	return nil
}

// ToRecommendation converts the view. A missing potential_decks counts as 1.
func (v CardView) ToRecommendation() model.Recommendation {
	potential := 1
	if v.PotentialDecks != nil {
		potential = *v.PotentialDecks
	}
	return model.Recommendation{
		Name:          v.Name,
		Synergy:       v.Synergy,
		NumDecks:      v.NumDecks,
		InclusionRate: model.InclusionRate(v.NumDecks, potential),
	}
}
