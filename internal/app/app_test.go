package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/handiism/deckdoctor/internal/config"
	"github.com/handiism/deckdoctor/internal/recommend"
	"github.com/handiism/deckdoctor/internal/testutil"
)

func TestLoad_MissingConfigUsesDefaults(t *testing.T) {
	a, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, config.DefaultSettings(), a.Settings)
	assert.Equal(t, "https://api2.moxfield.com/v3/decks/all/abc", a.Moxfield.DeckURL("abc"))
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckdoctor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recommendations:\n  max_concurrent_requests: 50\n"), 0644))

	_, err := Load(path, false)
	assert.Error(t, err)
}

func TestNew_WiresConfiguredHosts(t *testing.T) {
	mox := testutil.NewMoxfield(t, map[string]string{testutil.AtraxaDeckID: testutil.AtraxaDeckPayload})
	edh := testutil.NewEDHREC(t)
	edh.SetPage("atraxa-praetors-voice", map[string][]map[string]any{
		"High Synergy Cards": {testutil.CardView("Doubling Season", 0.61, 9000, 20000)},
	})

	settings := config.DefaultSettings()
	settings.Moxfield.APIURL = mox.URL()
	settings.Moxfield.SiteURL = "https://moxfield.example"
	settings.EDHREC.JSONURL = edh.URL()
	settings.EDHREC.SiteURL = edh.URL()
	settings.Recommendations.MaxConcurrentRequests = 1

	a := New(settings, zap.NewNop())
	t.Cleanup(a.Close)

	deck, err := a.Moxfield.FetchDeck(context.Background(), testutil.AtraxaDeckID)
	require.NoError(t, err)
	assert.Equal(t, "Atraxa Counters", deck.Name)

	recs, err := a.Engine().RecommendationsForCommander(context.Background(), deck.Commanders()[0].Name, deck, recommend.NoLimit)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].InDeck)

	guides := a.Guides.AllGuides(context.Background(), "Atraxa, Praetors' Voice")
	require.Len(t, guides, 2)
	assert.Equal(t, edh.URL()+"/commanders/atraxa-praetors-voice", guides[0].URL)
	assert.Contains(t, guides[1].URL, "https://moxfield.example/decks/search?q=")
}
