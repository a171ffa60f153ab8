package recommend

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/handiism/deckdoctor/internal/apperr"
	"github.com/handiism/deckdoctor/internal/edhrec"
	"github.com/handiism/deckdoctor/internal/model"
)

// LowSynergyThreshold is the synergy below which a non-staple card is a cut
// candidate.
const LowSynergyThreshold = 0.05

const offThemeReason = "Not in EDHREC top cards for this commander"

// Analyzer finds cards worth cutting from a deck.
type Analyzer struct {
	engine *Engine
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer using engine for EDHREC data.
func NewAnalyzer(engine *Engine) *Analyzer {
	return &Analyzer{engine: engine, logger: engine.logger}
}

// AnalyzeDeck compares the deck with the EDHREC data of its first commander.
//
// Only mainboard and command zone cards are considered; basic lands and the
// commander itself are skipped. A considered card EDHREC lists is a low
// synergy candidate when its best synergy across categories is below
// LowSynergyThreshold and it is not a staple. A considered card EDHREC does
// not list is off-theme.
//
// Returns apperr.ErrNoCommander when the deck has no commander.
func (a *Analyzer) AnalyzeDeck(ctx context.Context, deck *model.Deck) (*model.Analysis, error) {
	if !deck.HasCommander() {
		return nil, fmt.Errorf("recommend: analyze %q: %w", deck.Name, apperr.ErrNoCommander)
	}
	commander := deck.Commanders()[0].Name

	all, err := a.engine.AllRecommendations(ctx, commander, deck)
	if err != nil {
		return nil, err
	}

	synergy := make(map[string]float64)
	for _, category := range edhrec.Categories {
		for _, rec := range all[category.Key] {
			if s, ok := synergy[rec.Name]; !ok || rec.Synergy > s {
				synergy[rec.Name] = rec.Synergy
			}
		}
	}

	analysis := &model.Analysis{
		Commander:  commander,
		LowSynergy: []model.CutCandidate{},
		OffTheme:   []model.CutCandidate{},
	}

	for _, card := range deck.Cards {
		if !eligible(card, commander) {
			continue
		}
		analysis.Eligible++

		s, ok := synergy[card.Name]
		if !ok {
			analysis.OffTheme = append(analysis.OffTheme, model.CutCandidate{
				Name:     card.Name,
				Reason:   offThemeReason,
				TypeLine: card.TypeLine,
			})
			continue
		}

		analysis.InEDHREC++
		if s < LowSynergyThreshold && !IsStaple(card.Name) {
			analysis.LowSynergy = append(analysis.LowSynergy, model.CutCandidate{
				Name:     card.Name,
				Reason:   fmt.Sprintf("Low synergy (%+.0f%%)", s*100),
				Synergy:  &s,
				TypeLine: card.TypeLine,
			})
		}
	}

	sort.SliceStable(analysis.LowSynergy, func(i, j int) bool {
		return *analysis.LowSynergy[i].Synergy < *analysis.LowSynergy[j].Synergy
	})

	if analysis.Eligible > 0 {
		analysis.Coverage = float64(analysis.InEDHREC) / float64(analysis.Eligible)
	}

	a.logger.Debug("analyzed deck",
		zap.String("deck", deck.Name),
		zap.String("commander", commander),
		zap.Int("eligible", analysis.Eligible),
		zap.Int("low_synergy", len(analysis.LowSynergy)),
		zap.Int("off_theme", len(analysis.OffTheme)))
	return analysis, nil
}

// SuggestCuts returns the low synergy candidates, lowest first, followed by
// the off-theme ones in deck order. A negative limit returns every
// candidate.
func (a *Analyzer) SuggestCuts(ctx context.Context, deck *model.Deck, limit int) ([]model.CutCandidate, error) {
	analysis, err := a.AnalyzeDeck(ctx, deck)
	if err != nil {
		return nil, err
	}

	cuts := make([]model.CutCandidate, 0, len(analysis.LowSynergy)+len(analysis.OffTheme))
	cuts = append(cuts, analysis.LowSynergy...)
	cuts = append(cuts, analysis.OffTheme...)
	return truncate(cuts, limit), nil
}

func eligible(card model.Card, commander string) bool {
	switch card.Board.Kind {
	case model.BoardMainboard, model.BoardCommanders:
	default:
		return false
	}
	return !card.IsBasicLand() && card.Name != commander
}
