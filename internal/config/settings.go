package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// DecksDir is where deck-fetch saves decks, one sub-directory per deck.
	DecksDir string `yaml:"decks_dir"`

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	Moxfield        MoxfieldSettings       `yaml:"moxfield"`
	EDHREC          EDHRECSettings         `yaml:"edhrec"`
	HTTP            HTTPSettings           `yaml:"http"`
	Recommendations RecommendationSettings `yaml:"recommendations"`
}

// MoxfieldSettings locates the Moxfield API and web site.
type MoxfieldSettings struct {
	APIURL  string `yaml:"api_url"`
	SiteURL string `yaml:"site_url"`
}

// EDHRECSettings locates the EDHREC JSON data host and web site.
type EDHRECSettings struct {
	JSONURL string `yaml:"json_url"`
	SiteURL string `yaml:"site_url"`
}

// HTTPSettings configures outgoing requests.
type HTTPSettings struct {
	UserAgent string `yaml:"user_agent"`

	// Timeout bounds every request.
	Timeout time.Duration `yaml:"timeout"`

	// ArticleTimeout bounds the EDHREC deck tech article lookup.
	ArticleTimeout time.Duration `yaml:"article_timeout"`
}

// MarshalYAML writes the durations in their string form ("30s"), the only
// form yaml.v3 reads back into a time.Duration.
func (h HTTPSettings) MarshalYAML() (interface{}, error) {
	return struct {
		UserAgent      string `yaml:"user_agent"`
		Timeout        string `yaml:"timeout"`
		ArticleTimeout string `yaml:"article_timeout"`
	}{
		UserAgent:      h.UserAgent,
		Timeout:        h.Timeout.String(),
		ArticleTimeout: h.ArticleTimeout.String(),
	}, nil
}

// RecommendationSettings holds list sizes and the category fan-out limit.
type RecommendationSettings struct {
	Limit                 int `yaml:"limit"`
	AdditionsLimit        int `yaml:"additions_limit"`
	CutsLimit             int `yaml:"cuts_limit"`
	MaxConcurrentRequests int `yaml:"max_concurrent_requests"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DecksDir: "decks",
		LogLevel: "info",
		Moxfield: MoxfieldSettings{
			APIURL:  "https://api2.moxfield.com",
			SiteURL: "https://moxfield.com",
		},
		EDHREC: EDHRECSettings{
			JSONURL: "https://json.edhrec.com",
			SiteURL: "https://edhrec.com",
		},
		HTTP: HTTPSettings{
			UserAgent:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
			Timeout:        30 * time.Second,
			ArticleTimeout: 10 * time.Second,
		},
		Recommendations: RecommendationSettings{
			Limit:                 20,
			AdditionsLimit:        20,
			CutsLimit:             10,
			MaxConcurrentRequests: 4,
		},
	}
}

// Validate checks every section.
func (s *Settings) Validate() error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.DecksDir, validation.Required),
		validation.Field(&s.LogLevel, validation.In("debug", "info", "warn", "error")),
	); err != nil {
		return err
	}
	if err := s.Moxfield.Validate(); err != nil {
		return fmt.Errorf("moxfield: %w", err)
	}
	if err := s.EDHREC.Validate(); err != nil {
		return fmt.Errorf("edhrec: %w", err)
	}
	if err := s.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if err := s.Recommendations.Validate(); err != nil {
		return fmt.Errorf("recommendations: %w", err)
	}
	return nil
}

// Validate validates the Moxfield section.
func (m *MoxfieldSettings) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.APIURL, validation.Required, is.URL),
		validation.Field(&m.SiteURL, validation.Required, is.URL),
	)
}

// Validate validates the EDHREC section.
func (e *EDHRECSettings) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.JSONURL, validation.Required, is.URL),
		validation.Field(&e.SiteURL, validation.Required, is.URL),
	)
}

// Validate validates the HTTP section.
func (h *HTTPSettings) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.UserAgent, validation.Required),
		validation.Field(&h.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&h.ArticleTimeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// Validate validates the recommendations section.
func (r *RecommendationSettings) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Limit, validation.Required, validation.Min(1)),
		validation.Field(&r.AdditionsLimit, validation.Required, validation.Min(1)),
		validation.Field(&r.CutsLimit, validation.Required, validation.Min(1)),
		validation.Field(&r.MaxConcurrentRequests, validation.Required, validation.Min(1), validation.Max(10)),
	)
}

// Load reads settings from a YAML file, expanding ${VAR} references from the
// environment. Values missing from the file keep their defaults; a missing
// file yields DefaultSettings.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), settings); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a YAML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
