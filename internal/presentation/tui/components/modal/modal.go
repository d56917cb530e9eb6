// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// AddFeed shows the add subscription dialog.
	AddFeed
	// Quit asks for confirmation before exiting.
	Quit
	// Help shows the full key help.
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
}

const dialogWidth = 56

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	switch p.Kind {
	case AddFeed:
		style = style.Width(dialogWidth).BorderForeground(lipgloss.Color("205"))
	case Quit:
		style = style.BorderForeground(lipgloss.Color("203"))
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, style.Render(p.Body))
}
