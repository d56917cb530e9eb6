// Package sidebar draws the subscription column.
package sidebar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the sidebar component.
type Props struct {
	Title string
	// Count is appended to the title when positive.
	Count  int
	View   string
	Empty  string
	Width  int
	Height int
	Active bool
}

var (
	idleBorder   = lipgloss.Color("63")
	activeBorder = lipgloss.Color("205")

	headingStyle = lipgloss.NewStyle().PaddingLeft(2).PaddingBottom(1).Foreground(activeBorder)
	hintStyle    = lipgloss.NewStyle().PaddingLeft(2).Faint(true)
)

// Render draws the column with a right border that lights up while the
// subscription list has focus. Empty, when set, replaces View.
func Render(p Props) string {
	border := idleBorder
	if p.Active {
		border = activeBorder
	}

	title := p.Title
	if p.Count > 0 {
		title = fmt.Sprintf("%s (%d)", title, p.Count)
	}

	body := p.View
	if p.Empty != "" {
		body = hintStyle.Render(p.Empty)
	}

	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border).
		Render(headingStyle.Render(title) + "\n" + body)
}
