// Package view composes the TUI components into a screen.
package view

import (
	"github.com/tesso57/jrss/internal/presentation/tui/components/header"
	"github.com/tesso57/jrss/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/jrss/internal/presentation/tui/components/main"
	"github.com/tesso57/jrss/internal/presentation/tui/components/modal"
	"github.com/tesso57/jrss/internal/presentation/tui/components/sidebar"
)

// Props aggregates properties for all UI components.
type Props struct {
	Sidebar sidebar.Props
	Header  header.Props
	Main    mainview.Props
	Modal   modal.Props
	Footer  string
}

// Render draws the whole screen. A visible modal replaces everything else.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	p.Main.Header = header.Render(p.Header)

	return layout.Render(layout.Props{
		Sidebar: sidebar.Render(p.Sidebar),
		Main:    mainview.Render(p.Main),
		Footer:  p.Footer,
	})
}
