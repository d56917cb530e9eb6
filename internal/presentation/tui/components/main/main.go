// Package mainview provides the main content area component.
package mainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	// Error is shown above the body when set.
	Error      string
	ErrorColor lipgloss.Color
	Body       string
}

const defaultErrorColor = lipgloss.Color("203")

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	var parts []string
	if p.Header != "" {
		parts = append(parts, p.Header)
	}
	if p.Error != "" {
		color := p.ErrorColor
		if color == "" {
			color = defaultErrorColor
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(color).Render("Error: "+p.Error))
	}
	if p.Body != "" {
		parts = append(parts, p.Body)
	}
	return mainStyle.Render(strings.Join(parts, "\n"))
}
