package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/deckdoctor/internal/apperr"
	"github.com/handiism/deckdoctor/internal/edhrec"
	"github.com/handiism/deckdoctor/internal/model"
)

// DefaultMaxConcurrentRequests bounds the category requests in flight.
const DefaultMaxConcurrentRequests = 4

// NoLimit returns every card from the limited queries. A limit of 0 returns
// none.
const NoLimit = -1

// Source returns the cards of one commander page category.
//
// *edhrec.Client implements Source.
type Source interface {
	FetchCategory(ctx context.Context, commander string, category edhrec.Category) ([]model.Recommendation, error)
}

// Engine ranks EDHREC recommendations for a commander.
type Engine struct {
	source        Source
	maxConcurrent int
	logger        *zap.Logger

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxConcurrentRequests bounds the category requests AllRecommendations
// runs at once. 1 makes it strictly sequential.
func WithMaxConcurrentRequests(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxConcurrent = n
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithProgress registers a callback receiving one event per finished
// category request. The callback is never called concurrently.
func WithProgress(fn func(ProgressEvent)) Option {
	return func(e *Engine) {
		e.onProgress = fn
	}
}

// NewEngine creates an Engine reading from source.
func NewEngine(source Source, opts ...Option) *Engine {
	e := &Engine{
		source:        source,
		maxConcurrent: DefaultMaxConcurrentRequests,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecommendationsForCommander returns the high synergy cards of a commander,
// highest synergy first. When deck is not nil, cards already in it are marked
// InDeck. A negative limit returns every card.
func (e *Engine) RecommendationsForCommander(ctx context.Context, commander string, deck *model.Deck, limit int) ([]model.Recommendation, error) {
	recs, err := e.fetch(ctx, commander, edhrec.HighSynergy, deck)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Synergy > recs[j].Synergy
	})
	return truncate(recs, limit), nil
}

// TopCardsForCommander returns the most played cards of a commander, highest
// inclusion rate first. A negative limit returns every card.
func (e *Engine) TopCardsForCommander(ctx context.Context, commander string, deck *model.Deck, limit int) ([]model.Recommendation, error) {
	recs, err := e.fetch(ctx, commander, edhrec.TopCards, deck)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].InclusionRate > recs[j].InclusionRate
	})
	return truncate(recs, limit), nil
}

// AllRecommendations fetches every category, keyed by Category.Key, each list
// in page order.
//
// The first failing request cancels the others and its error is returned;
// no partial result is produced.
func (e *Engine) AllRecommendations(ctx context.Context, commander string, deck *model.Deck) (map[string][]model.Recommendation, error) {
	results := make([][]model.Recommendation, len(edhrec.Categories))
	total := len(edhrec.Categories)
	done := 0
	report := func(message string, level ProgressLevel, finished bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if finished {
			done++
		}
		if e.onProgress != nil {
			e.onProgress(ProgressEvent{Message: message, Level: level, Done: done, Total: total})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrent)

	for i, category := range edhrec.Categories {
		g.Go(func() error {
			recs, err := e.fetch(ctx, commander, category, deck)
			if err != nil {
				report(fmt.Sprintf("Failed to fetch %s: %v", category.Label, err), LevelError, false)
				return err
			}
			results[i] = recs
			report(fmt.Sprintf("Fetched %s (%d cards)", category.Label, len(recs)), LevelVerbose, true)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]model.Recommendation, total)
	for i, category := range edhrec.Categories {
		out[category.Key] = results[i]
	}
	return out, nil
}

// SuggestAdditions returns cards recommended for the deck's first commander
// that the deck does not play yet, highest synergy first.
//
// Categories are merged in edhrec.Categories order and a card listed in
// several categories keeps its first entry. Returns apperr.ErrNoCommander
// when the deck has no commander. A negative limit returns every card.
func (e *Engine) SuggestAdditions(ctx context.Context, deck *model.Deck, limit int) ([]model.Recommendation, error) {
	if !deck.HasCommander() {
		return nil, fmt.Errorf("recommend: suggest additions for %q: %w", deck.Name, apperr.ErrNoCommander)
	}
	commander := deck.Commanders()[0].Name

	all, err := e.AllRecommendations(ctx, commander, deck)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var additions []model.Recommendation
	for _, category := range edhrec.Categories {
		for _, rec := range all[category.Key] {
			if rec.InDeck || seen[rec.Name] {
				continue
			}
			seen[rec.Name] = true
			additions = append(additions, rec)
		}
	}

	sort.SliceStable(additions, func(i, j int) bool {
		return additions[i].Synergy > additions[j].Synergy
	})

	e.logger.Debug("suggested additions",
		zap.String("commander", commander),
		zap.Int("candidates", len(additions)))
	return truncate(additions, limit), nil
}

func (e *Engine) fetch(ctx context.Context, commander string, category edhrec.Category, deck *model.Deck) ([]model.Recommendation, error) {
	recs, err := e.source.FetchCategory(ctx, commander, category)
	if err != nil {
		return nil, fmt.Errorf("recommend: %s: %w", category.Key, err)
	}
	if deck != nil {
		markInDeck(recs, deck)
	}
	return recs, nil
}

// markInDeck flags recommendations whose name matches, case-insensitively,
// any card of any board of deck.
func markInDeck(recs []model.Recommendation, deck *model.Deck) {
	names := make(map[string]bool, len(deck.Cards))
	for _, c := range deck.Cards {
		names[strings.ToLower(c.Name)] = true
	}
	for i := range recs {
		recs[i].InDeck = names[strings.ToLower(recs[i].Name)]
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
