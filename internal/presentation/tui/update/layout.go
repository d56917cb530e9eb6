package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jrss/internal/presentation/tui/metrics"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

// pane is the size given to one list.
type pane struct{ width, height int }

// UpdateListSizes resizes the lists and the detail viewport to the terminal.
// The sidebar takes a third of the width; the rest minus its border goes to
// the main area.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	side, main := panes(s)
	s.FeedList.SetSize(side.width, side.height)
	s.ArticleList.SetSize(main.width, main.height)
	s.Viewport.Width = main.width
	s.Viewport.Height = main.height
}

func panes(s *state.ModelState) (side, main pane) {
	body := max(s.Height-footerHeight(s), 1)

	chrome := metrics.HeaderLines
	if s.Err != nil {
		chrome += metrics.ErrorLines
	}

	side.width = s.Width / 3
	side.height = fitPagination(s.FeedList, max(body-metrics.SidebarTitleLines, 1))
	main.width = max(s.Width-side.width-metrics.SidebarRightBorderWidth, 1)
	main.height = fitPagination(s.ArticleList, max(body-chrome, 1))
	return side, main
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Session, s.Loading, s.StatusMessage, s.Help.View(&s.Keys)))
}

// fitPagination gives up a line for the page dots when the visible items
// overflow height.
func fitPagination(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}
	rows := height
	if m.ShowStatusBar() {
		rows--
	}
	if rows >= 1 && len(m.VisibleItems()) > rows {
		return height - 1
	}
	return height
}
