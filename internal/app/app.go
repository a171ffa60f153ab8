// Package app wires configuration, logging and the service clients shared by
// the deckdoctor commands.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/handiism/deckdoctor/internal/config"
	"github.com/handiism/deckdoctor/internal/edhrec"
	"github.com/handiism/deckdoctor/internal/guides"
	"github.com/handiism/deckdoctor/internal/http"
	"github.com/handiism/deckdoctor/internal/logging"
	"github.com/handiism/deckdoctor/internal/moxfield"
	"github.com/handiism/deckdoctor/internal/recommend"
)

// App holds the configured clients.
type App struct {
	Settings *config.Settings
	Logger   *zap.Logger

	HTTP     *http.Client
	Moxfield *moxfield.Client
	EDHREC   *edhrec.Client
	Guides   *guides.Fetcher
}

// Load reads the settings at configPath (defaults when the file does not
// exist), builds the logger and the clients.
func Load(configPath string, verbose bool) (*App, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(settings.LogLevel, verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	logger.Debug("configuration loaded",
		zap.String("path", configPath),
		zap.String("decks_dir", settings.DecksDir),
		zap.String("moxfield_api", settings.Moxfield.APIURL),
		zap.String("edhrec_json", settings.EDHREC.JSONURL))

	return New(settings, logger), nil
}

// New builds the clients from already loaded settings.
func New(settings *config.Settings, logger *zap.Logger) *App {
	httpClient := http.NewClient(
		http.WithTimeout(settings.HTTP.Timeout),
		http.WithUserAgent(settings.HTTP.UserAgent),
		http.WithLogger(logger.Named("http")),
	)

	return &App{
		Settings: settings,
		Logger:   logger,
		HTTP:     httpClient,
		Moxfield: moxfield.NewClient(httpClient,
			moxfield.WithAPIURL(settings.Moxfield.APIURL),
			moxfield.WithLogger(logger.Named("moxfield")),
		),
		EDHREC: edhrec.NewClient(httpClient,
			edhrec.WithJSONURL(settings.EDHREC.JSONURL),
			edhrec.WithLogger(logger.Named("edhrec")),
		),
		Guides: guides.NewFetcher(httpClient,
			guides.WithEDHRECSite(settings.EDHREC.SiteURL),
			guides.WithMoxfieldSite(settings.Moxfield.SiteURL),
			guides.WithArticleTimeout(settings.HTTP.ArticleTimeout),
			guides.WithLogger(logger.Named("guides")),
		),
	}
}

// Engine returns a recommendation engine over the EDHREC client, bounded by
// the configured request concurrency. opts are applied last.
func (a *App) Engine(opts ...recommend.Option) *recommend.Engine {
	base := []recommend.Option{
		recommend.WithMaxConcurrentRequests(a.Settings.Recommendations.MaxConcurrentRequests),
		recommend.WithLogger(a.Logger.Named("recommend")),
	}
	return recommend.NewEngine(a.EDHREC, append(base, opts...)...)
}

// Analyzer returns a deck analyzer over a new Engine.
func (a *App) Analyzer(opts ...recommend.Option) *recommend.Analyzer {
	return recommend.NewAnalyzer(a.Engine(opts...))
}

// Close releases idle connections and flushes the logger.
func (a *App) Close() {
	a.HTTP.CloseIdleConnections()
	_ = a.Logger.Sync()
}
