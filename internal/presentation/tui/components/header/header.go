// Package header provides the module header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Link    string
	Title   string
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("link  ")+textStyle.Render(p.Link),
		labelStyle.Render("feed  ")+textStyle.Render(p.Title),
	)
}
