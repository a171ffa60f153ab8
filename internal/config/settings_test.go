package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings_Valid(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_OverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("DECKDOCTOR_TEST_DIR", "/srv/decks")

	path := filepath.Join(t.TempDir(), "deckdoctor.yaml")
	content := `
decks_dir: ${DECKDOCTOR_TEST_DIR}
http:
  timeout: 5s
recommendations:
  max_concurrent_requests: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/decks", settings.DecksDir)
	assert.Equal(t, 5*time.Second, settings.HTTP.Timeout)
	assert.Equal(t, 2, settings.Recommendations.MaxConcurrentRequests)
	// untouched keys keep defaults
	assert.Equal(t, 10*time.Second, settings.HTTP.ArticleTimeout)
	assert.Equal(t, "https://json.edhrec.com", settings.EDHREC.JSONURL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad url", content: "moxfield:\n  api_url: not a url\n"},
		{name: "concurrency too high", content: "recommendations:\n  max_concurrent_requests: 50\n"},
		{name: "unknown log level", content: "log_level: loud\n"},
		{name: "malformed yaml", content: "decks_dir: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "deckdoctor.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deckdoctor.yaml")

	settings := DefaultSettings()
	settings.DecksDir = "my-decks"
	settings.Recommendations.CutsLimit = 15
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}
