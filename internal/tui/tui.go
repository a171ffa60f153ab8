// Package tui provides a Bubble Tea terminal user interface for deckdoctor.
//
// The user types the directory of a saved deck; the model then runs the cut
// analysis and the addition suggestions against EDHREC, showing one progress
// tick per category request, and ends on a summary screen.
package tui

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/deckdoctor/internal/app"
	"github.com/handiism/deckdoctor/internal/deckstore"
	"github.com/handiism/deckdoctor/internal/edhrec"
	"github.com/handiism/deckdoctor/internal/model"
	"github.com/handiism/deckdoctor/internal/recommend"
)

const (
	maxLogs        = 10
	shownCuts      = 5
	shownAdditions = 5
)

var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateAnalyzing
	StateComplete
	StateError
)

// LogEntry is one line of the request log.
type LogEntry struct {
	Message string
	Level   recommend.ProgressLevel
}

// Result is what the summary screen shows.
type Result struct {
	Deck      *model.Deck
	Analysis  *model.Analysis
	Cuts      []model.CutCandidate
	Additions []model.Recommendation
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	app    *app.App
	keys   keyMap
	styles styles

	state  State
	input  textinput.Model
	spin   spinner.Model
	bar    progress.Model
	help   help.Model
	logs   []LogEntry
	result *Result
	err    error

	ctx    context.Context
	cancel context.CancelFunc

	// run identifies the current analysis; messages of older runs are dropped.
	run int
	// fetched counts category requests finished across both passes.
	fetched int
	events  chan ProgressMsg
	verbose bool
}

// NewModel creates a new TUI model.
func NewModel(a *app.App) Model {
	st := defaultStyles()

	in := textinput.New()
	in.Placeholder = "decks/atraxa"
	in.CharLimit = 500
	in.Width = 60
	in.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.spinner))

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(50))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		app:    a,
		keys:   defaultKeyMap(),
		styles: st,
		state:  StateInput,
		input:  in,
		spin:   sp,
		bar:    bar,
		help:   help.New(),
		ctx:    ctx,
		cancel: cancel,
		events: make(chan ProgressMsg, 64),
	}
}

// Message types
type (
	// ProgressMsg carries one engine progress event.
	ProgressMsg struct {
		Run   int
		Event recommend.ProgressEvent
	}

	// AnalysisDoneMsg is sent when both passes finished or one failed.
	AnalysisDoneMsg struct {
		Run    int
		Result *Result
		Err    error
	}
)

// Init starts the cursor blink, the spinner and the progress listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.waitForProgress())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-20, 20), 80)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			m.cancel()
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd

	case ProgressMsg:
		return m.handleProgress(msg)

	case AnalysisDoneMsg:
		if msg.Run != m.run || m.state != StateAnalyzing {
			// result of a cancelled run
			return m, nil
		}
		if msg.Err != nil {
			m.state, m.err = StateError, msg.Err
			return m, nil
		}
		m.state, m.result = StateComplete, msg.Result
		return m, nil
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateInput:
		switch {
		case key.Matches(msg, m.keys.Analyze):
			dir := strings.TrimSpace(m.input.Value())
			if dir == "" {
				return m, nil
			}
			m.run++
			m.state = StateAnalyzing
			return m, tea.Batch(m.analyze(dir), m.spin.Tick)
		case key.Matches(msg, m.keys.Verbose):
			m.verbose = !m.verbose
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case StateAnalyzing:
		if key.Matches(msg, m.keys.Cancel) {
			m.cancel()
			m.state, m.err = StateError, errCancelled
		}
		return m, nil

	default:
		switch {
		case key.Matches(msg, m.keys.Restart):
			return m.reset()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m Model) handleProgress(msg ProgressMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.waitForProgress()}
	if msg.Run != m.run {
		return m, cmds[0]
	}
	e := msg.Event

	if e.Level == recommend.LevelVerbose {
		m.fetched++
		cmds = append(cmds, m.bar.SetPercent(m.percent()))
		if !m.verbose {
			return m, tea.Batch(cmds...)
		}
	}

	m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
	return m, tea.Batch(cmds...)
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.state = StateInput
	m.logs = nil
	m.result = nil
	m.err = nil
	m.fetched = 0
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.input.SetValue("")
	m.input.Focus()
	return m, m.bar.SetPercent(0)
}

// totalRequests is the number of category requests of one analysis: the cut
// pass and the addition pass each fetch every category.
func totalRequests() int {
	return 2 * len(edhrec.Categories)
}

func (m Model) percent() float64 {
	return min(float64(m.fetched)/float64(totalRequests()), 1)
}

// waitForProgress delivers the next engine event.
func (m Model) waitForProgress() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return <-events
	}
}

// analyze loads the deck and runs the cut and addition passes.
func (m Model) analyze(dir string) tea.Cmd {
	ctx, events, a, run := m.ctx, m.events, m.app, m.run

	return func() tea.Msg {
		deck, err := deckstore.Load(dir)
		if err != nil {
			return AnalysisDoneMsg{Run: run, Err: err}
		}

		report := recommend.WithProgress(func(e recommend.ProgressEvent) {
			select {
			case events <- ProgressMsg{Run: run, Event: e}:
			case <-ctx.Done():
			}
		})

		analysis, err := a.Analyzer(report).AnalyzeDeck(ctx, deck)
		if err != nil {
			return AnalysisDoneMsg{Run: run, Err: err}
		}
		additions, err := a.Engine(report).SuggestAdditions(ctx, deck, shownAdditions)
		if err != nil {
			return AnalysisDoneMsg{Run: run, Err: err}
		}

		cuts := slices.Concat(analysis.LowSynergy, analysis.OffTheme)
		cuts = cuts[:min(len(cuts), shownCuts)]

		return AnalysisDoneMsg{Run: run, Result: &Result{
			Deck:      deck,
			Analysis:  analysis,
			Cuts:      cuts,
			Additions: additions,
		}}
	}
}

// Run starts the TUI application.
func Run(a *app.App) error {
	p := tea.NewProgram(NewModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
