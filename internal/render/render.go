// Package render prints deckdoctor results for the command line tools.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/deckdoctor/internal/guides"
	"github.com/handiism/deckdoctor/internal/model"
)

const (
	maxSummaryLen  = 150
	maxLowSynergy  = 10
	maxOffTheme    = 15
	inDeckMarker   = "[IN DECK]"
	summaryEllipse = "..."
)

// Printer writes styled results to a writer. Colors are only emitted when the
// writer is a color-capable terminal.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	heading lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	dim     lipgloss.Style
	card    lipgloss.Style
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		heading: r.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
		good:    r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
		card:    r.NewStyle().Foreground(lipgloss.Color("#F8B500")),
	}
}

// Line writes a plain line.
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

// Recommendations writes a titled list of recommendations:
//
//	High synergy cards for Atraxa, Praetors' Voice
//	==============================================
//	  Doubling Season: 61% synergy, in 9000 decks [IN DECK]
func (p *Printer) Recommendations(recs []model.Recommendation, title string) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(p.title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", lipgloss.Width(title)))
	b.WriteString("\n")

	for _, rec := range recs {
		line := fmt.Sprintf("  %s: %s synergy, in %d decks",
			p.card.Render(rec.Name), Percent(rec.Synergy), rec.NumDecks)
		if rec.InDeck {
			line += " " + p.dim.Render(inDeckMarker)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return p.write(b.String())
}

// Guides writes a numbered list of guides. Summaries longer than 150
// characters are cut.
func (p *Printer) Guides(list []guides.Guide) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nFound %d guides/resources:\n\n", len(list))
	for i, g := range list {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1,
			p.heading.Render("["+strings.ToUpper(g.Source)+"]"), p.title.Render(g.Title))
		fmt.Fprintf(&b, "   %s\n", g.URL)
		if g.Summary != "" {
			fmt.Fprintf(&b, "   %s\n", p.dim.Render(TruncateSummary(g.Summary)))
		}
		b.WriteString("\n")
	}

	return p.write(b.String())
}

// Analysis writes the coverage, the first low synergy candidates and the
// first off-theme cards of an analysis.
func (p *Printer) Analysis(a *model.Analysis) error {
	var b strings.Builder

	fmt.Fprintf(&b, "EDHREC coverage: %s of cards appear in EDHREC recommendations\n\n",
		p.good.Render(Percent(a.Coverage)))

	if len(a.LowSynergy) > 0 {
		b.WriteString(p.heading.Render("Low synergy cards (potential cuts):"))
		b.WriteString("\n")
		for _, c := range a.LowSynergy[:min(len(a.LowSynergy), maxLowSynergy)] {
			var synergy float64
			if c.Synergy != nil {
				synergy = *c.Synergy
			}
			fmt.Fprintf(&b, "  %s %s - %s\n", p.bad.Render(SignedPercent(synergy)), c.Name, c.TypeLine)
		}
		b.WriteString("\n")
	}

	if len(a.OffTheme) > 0 {
		b.WriteString(p.heading.Render(fmt.Sprintf("Off-theme cards (%d not in EDHREC data):", len(a.OffTheme))))
		b.WriteString("\n")
		for _, c := range a.OffTheme[:min(len(a.OffTheme), maxOffTheme)] {
			fmt.Fprintf(&b, "  %s - %s\n", p.warn.Render(c.Name), c.TypeLine)
		}
	}

	return p.write(b.String())
}

// Cuts writes a numbered list of cut candidates with their reasons.
func (p *Printer) Cuts(cuts []model.CutCandidate, title string) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(p.title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", lipgloss.Width(title)))
	b.WriteString("\n")

	for i, c := range cuts {
		fmt.Fprintf(&b, "%2d. %s (%s)\n", i+1, p.card.Render(c.Name), p.dim.Render(c.Reason))
	}

	return p.write(b.String())
}

func (p *Printer) write(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

// Percent formats a ratio as a whole percentage ("61%").
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// SignedPercent formats a ratio as a signed whole percentage ("+2%", "-10%").
func SignedPercent(ratio float64) string {
	return fmt.Sprintf("%+.0f%%", ratio*100)
}

// TruncateSummary cuts s to 150 characters followed by "...".
func TruncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSummaryLen {
		return s
	}
	return string(runes[:maxSummaryLen]) + summaryEllipse
}
