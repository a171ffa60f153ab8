package tui

import (
	"fmt"
	"strings"

	"github.com/handiism/deckdoctor/internal/recommend"
	"github.com/handiism/deckdoctor/internal/render"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.header.Render("🃏 Deck Doctor"))
	b.WriteString("\n")
	b.WriteString(m.styles.faint.Render("Tune a Commander deck with EDHREC data"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		m.viewInput(&b)
	case StateAnalyzing:
		m.viewAnalyzing(&b)
	case StateComplete:
		m.viewResult(&b)
	case StateError:
		m.viewError(&b)
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.forState(m.state)))
	return b.String()
}

func (m Model) viewInput(b *strings.Builder) {
	b.WriteString(m.styles.heading.Render("Enter a saved deck directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if m.verbose {
		check = "[×]"
	}
	fmt.Fprintf(b, "%s %s Show every request\n\n", m.styles.info.Render("Options:"), check)
	b.WriteString(m.styles.faint.Render("Decks directory: " + m.app.Settings.DecksDir))
	b.WriteString("\n")
}

func (m Model) viewAnalyzing(b *strings.Builder) {
	fmt.Fprintf(b, "%s %s\n\n", m.spin.View(), m.styles.heading.Render("Fetching EDHREC data..."))

	b.WriteString(m.bar.View())
	b.WriteString("\n")
	b.WriteString(m.styles.info.Render(fmt.Sprintf("Categories: %d/%d", m.fetched, totalRequests())))
	b.WriteString("\n\n")

	for _, entry := range m.logs {
		b.WriteString(m.logLine(entry))
		b.WriteString("\n")
	}
}

func (m Model) logLine(entry LogEntry) string {
	switch entry.Level {
	case recommend.LevelError:
		return m.styles.bad.Render("✗ " + entry.Message)
	case recommend.LevelWarning:
		return m.styles.warn.Render("! " + entry.Message)
	case recommend.LevelSuccess:
		return m.styles.good.Render("✓ " + entry.Message)
	case recommend.LevelInfo:
		return m.styles.info.Render("› " + entry.Message)
	default:
		return m.styles.faint.Render("• " + entry.Message)
	}
}

func (m Model) viewResult(b *strings.Builder) {
	r := m.result
	a := r.Analysis

	b.WriteString(m.styles.summary.Render(fmt.Sprintf(
		"✨ Analysis Complete!\n\nDeck: %s\nCommander: %s\nEDHREC coverage: %s (%d/%d cards)",
		r.Deck.Name, a.Commander, render.Percent(a.Coverage), a.InEDHREC, a.Eligible,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.heading.Render("Cut candidates:"))
	b.WriteString("\n")
	if len(r.Cuts) == 0 {
		b.WriteString(m.styles.faint.Render("  none") + "\n")
	}
	for _, c := range r.Cuts {
		fmt.Fprintf(b, "  %s %s\n      %s\n",
			m.styles.warn.Render("−"), m.styles.card.Render(c.Name), m.styles.faint.Render(c.Reason))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.heading.Render("Suggested additions:"))
	b.WriteString("\n")
	if len(r.Additions) == 0 {
		b.WriteString(m.styles.faint.Render("  none") + "\n")
	}
	for _, rec := range r.Additions {
		fmt.Fprintf(b, "  %s %s %s\n",
			m.styles.good.Render("+"),
			m.styles.card.Render(rec.Name),
			m.styles.faint.Render(fmt.Sprintf("(%s synergy, in %d decks)", render.Percent(rec.Synergy), rec.NumDecks)))
	}
}

func (m Model) viewError(b *strings.Builder) {
	b.WriteString(m.styles.bad.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString("  " + m.err.Error())
	}
}
