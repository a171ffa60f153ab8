// Package testutil provides fake Moxfield and EDHREC servers for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Moxfield is a fake Moxfield API serving /v3/decks/all/{id}.
type Moxfield struct {
	Server *httptest.Server

	mu       sync.Mutex
	decks    map[string]string
	requests []string
}

// NewMoxfield starts a fake Moxfield API serving the given id → payload map.
// Unknown ids answer 404. The server is closed when the test ends.
func NewMoxfield(t *testing.T, decks map[string]string) *Moxfield {
	t.Helper()
	m := &Moxfield{decks: decks}

	r := chi.NewRouter()
	r.Get("/v3/decks/all/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		m.mu.Lock()
		m.requests = append(m.requests, id)
		payload, ok := m.decks[id]
		m.mu.Unlock()

		if !ok {
			http.Error(w, `{"status":404}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})

	m.Server = httptest.NewServer(r)
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the base URL of the fake API.
func (m *Moxfield) URL() string {
	return m.Server.URL
}

// Requests returns the deck ids requested so far.
func (m *Moxfield) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}

// EDHREC is a fake EDHREC host serving commander JSON pages under
// /pages/commanders/{slug}.json and articles under /articles/{slug}.
type EDHREC struct {
	Server *httptest.Server

	mu       sync.Mutex
	pages    map[string][]byte
	articles map[string]string
	requests int
	failOn   int
	failWith int
}

// NewEDHREC starts a fake EDHREC host. The server is closed when the test ends.
func NewEDHREC(t *testing.T) *EDHREC {
	t.Helper()
	e := &EDHREC{
		pages:    make(map[string][]byte),
		articles: make(map[string]string),
	}

	r := chi.NewRouter()
	r.Get("/pages/commanders/{slug}.json", func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		e.mu.Lock()
		e.requests++
		fail := e.failOn != 0 && e.requests == e.failOn
		page, ok := e.pages[slug]
		status := e.failWith
		e.mu.Unlock()

		if fail {
			http.Error(w, "upstream failure", status)
			return
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(page)
	})
	r.Get("/articles/{slug}", func(w http.ResponseWriter, r *http.Request) {
		e.mu.Lock()
		body, ok := e.articles[chi.URLParam(r, "slug")]
		e.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	})

	e.Server = httptest.NewServer(r)
	t.Cleanup(e.Server.Close)
	return e
}

// URL returns the base URL of the fake host.
func (e *EDHREC) URL() string {
	return e.Server.URL
}

// SetPage serves a commander page built from header → card views.
func (e *EDHREC) SetPage(slug string, lists map[string][]map[string]any) {
	e.SetRawPage(slug, CommanderPage(lists))
}

// SetRawPage serves the given bytes as a commander page.
func (e *EDHREC) SetRawPage(slug string, page []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pages[slug] = page
}

// SetArticle serves html as the deck tech article for slug.
func (e *EDHREC) SetArticle(slug, html string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.articles[slug] = html
}

// FailRequest makes the n-th commander page request (1-based) answer status.
func (e *EDHREC) FailRequest(n, status int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failOn = n
	e.failWith = status
}

// Requests returns the number of commander page requests served.
func (e *EDHREC) Requests() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.requests
}

// CardView builds one EDHREC card view entry.
func CardView(name string, synergy float64, numDecks, potentialDecks int) map[string]any {
	return map[string]any{
		"name":            name,
		"synergy":         synergy,
		"num_decks":       numDecks,
		"potential_decks": potentialDecks,
	}
}

// CommanderPage renders an EDHREC commander page with one card list per header.
func CommanderPage(lists map[string][]map[string]any) []byte {
	cardlists := make([]map[string]any, 0, len(lists))
	for header, views := range lists {
		cardlists = append(cardlists, map[string]any{
			"header":    header,
			"cardviews": views,
		})
	}
	page := map[string]any{
		"container": map[string]any{
			"json_dict": map[string]any{
				"cardlists": cardlists,
			},
		},
	}
	data, err := json.Marshal(page)
	if err != nil {
		panic(err)
	}
	return data
}
