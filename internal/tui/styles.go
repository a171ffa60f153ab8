package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("#FF6B6B")
	colorTeal   = lipgloss.Color("#4ECDC4")
	colorGreen  = lipgloss.Color("#95E1A3")
	colorYellow = lipgloss.Color("#FFE66D")
	colorIce    = lipgloss.Color("#A8DADC")
	colorGrey   = lipgloss.Color("#6C757D")
	colorGold   = lipgloss.Color("#F8B500")
)

// styles groups every style the views use.
type styles struct {
	header  lipgloss.Style
	heading lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
	faint   lipgloss.Style
	card    lipgloss.Style
	summary lipgloss.Style
	spinner lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		heading: lipgloss.NewStyle().Foreground(colorTeal),
		good:    lipgloss.NewStyle().Foreground(colorGreen),
		bad:     lipgloss.NewStyle().Foreground(colorAccent),
		warn:    lipgloss.NewStyle().Foreground(colorYellow),
		info:    lipgloss.NewStyle().Foreground(colorIce),
		faint:   lipgloss.NewStyle().Foreground(colorGrey),
		card:    lipgloss.NewStyle().Foreground(colorGold),
		summary: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal).
			Padding(1, 2),
		spinner: lipgloss.NewStyle().Foreground(colorAccent),
	}
}
