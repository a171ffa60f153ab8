package guides

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/handiism/deckdoctor/internal/edhrec"
	"github.com/handiism/deckdoctor/internal/http"
)

// Guide sources.
const (
	SourceEDHREC   = "edhrec"
	SourceMoxfield = "moxfield"
)

const (
	defaultEDHRECSite     = "https://edhrec.com"
	defaultMoxfieldSite   = "https://moxfield.com"
	defaultArticleTimeout = 10 * time.Second

	edhrecPageSummary     = "Card recommendations, synergies, and deck statistics"
	moxfieldSearchSummary = "Search for community deck primers on Moxfield"
)

// Guide is one strategy resource.
type Guide struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
}

// Fetcher builds and checks guide links.
type Fetcher struct {
	http           *http.Client
	edhrecSite     string
	moxfieldSite   string
	articleTimeout time.Duration
	logger         *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithEDHRECSite sets the EDHREC site host.
func WithEDHRECSite(site string) Option {
	return func(f *Fetcher) {
		f.edhrecSite = strings.TrimRight(site, "/")
	}
}

// WithMoxfieldSite sets the Moxfield site host.
func WithMoxfieldSite(site string) Option {
	return func(f *Fetcher) {
		f.moxfieldSite = strings.TrimRight(site, "/")
	}
}

// WithArticleTimeout bounds the article request.
func WithArticleTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.articleTimeout = d
		}
	}
}

// WithLogger sets the fetcher logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher on top of an HTTP client.
func NewFetcher(httpClient *http.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		http:           httpClient,
		edhrecSite:     defaultEDHRECSite,
		moxfieldSite:   defaultMoxfieldSite,
		articleTimeout: defaultArticleTimeout,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ArticleURL returns the URL of the EDHREC deck tech article.
func (f *Fetcher) ArticleURL(commander string) string {
	return fmt.Sprintf("%s/articles/%s-commander-deck-tech", f.edhrecSite, edhrec.Slug(commander))
}

// PageURL returns the URL of the EDHREC commander page.
func (f *Fetcher) PageURL(commander string) string {
	return fmt.Sprintf("%s/commanders/%s", f.edhrecSite, edhrec.Slug(commander))
}

// SearchURL returns a Moxfield search for primers of the commander.
func (f *Fetcher) SearchURL(commander string) string {
	query := url.QueryEscape(`"` + commander + `" primer`)
	return fmt.Sprintf("%s/decks/search?q=%s&fmt=commander", f.moxfieldSite, query)
}

// FetchArticle returns the EDHREC deck tech article, or nil when it cannot be
// fetched or the page does not look like an article. Failures are logged at
// debug level, never returned.
func (f *Fetcher) FetchArticle(ctx context.Context, commander string) *Guide {
	ctx, cancel := context.WithTimeout(ctx, f.articleTimeout)
	defer cancel()

	articleURL := f.ArticleURL(commander)
	body, err := f.http.GetString(ctx, articleURL)
	if err != nil {
		f.logger.Debug("no deck tech article",
			zap.String("commander", commander),
			zap.Error(err))
		return nil
	}
	if !strings.Contains(strings.ToLower(body), "article") {
		f.logger.Debug("page is not an article", zap.String("url", articleURL))
		return nil
	}

	return &Guide{
		Title:   commander + " Commander Deck Tech",
		URL:     articleURL,
		Source:  SourceEDHREC,
		Summary: metaDescription(body),
	}
}

// AllGuides returns the article (when found), the EDHREC commander page and
// the Moxfield primer search, in that order.
func (f *Fetcher) AllGuides(ctx context.Context, commander string) []Guide {
	var out []Guide
	if article := f.FetchArticle(ctx, commander); article != nil {
		out = append(out, *article)
	}

	out = append(out,
		Guide{
			Title:   commander + " on EDHREC",
			URL:     f.PageURL(commander),
			Source:  SourceEDHREC,
			Summary: edhrecPageSummary,
		},
		Guide{
			Title:   "Search Moxfield for " + commander + " primers",
			URL:     f.SearchURL(commander),
			Source:  SourceMoxfield,
			Summary: moxfieldSearchSummary,
		},
	)
	return out
}
