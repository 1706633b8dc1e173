package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains all styling for the report
type Styles struct {
	Header    lipgloss.Style
	Section   lipgloss.Style
	Category  lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

// newStyles builds styles bound to a renderer for w. With color disabled the
// renderer is pinned to the ASCII profile.
func newStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		Section: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Category: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
