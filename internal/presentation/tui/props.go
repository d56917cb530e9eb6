// Package tui provides the terminal reader: subscriptions on the left,
// entries of the fetched feed on the right.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jrss/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/jrss/internal/presentation/tui/components/main"
	"github.com/tesso57/jrss/internal/presentation/tui/components/modal"
	"github.com/tesso57/jrss/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/jrss/internal/presentation/tui/metrics"
	"github.com/tesso57/jrss/internal/presentation/tui/presenter"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
	"github.com/tesso57/jrss/internal/presentation/tui/textutil"
	"github.com/tesso57/jrss/internal/presentation/tui/view"
)

const (
	sidebarTitle = "Subscriptions"
	emptySidebar = "No subscriptions yet.\nPress a to add one."
	emptyEntries = "Open a subscription to read it."

	addDialogHint = "(tab to switch, enter to add, esc to cancel)"
	quitPrompt    = "Are you sure you want to quit?\n\n(y/n)"
)

var faint = lipgloss.NewStyle().Faint(true)

func (m *Model) props() view.Props {
	return view.Props{
		Sidebar: m.sidebarProps(),
		Header:  m.headerProps(),
		Main:    m.mainProps(),
		Modal:   m.modalProps(),
		Footer:  state.FooterText(m.state.Session, m.state.Loading, m.state.StatusMessage, m.state.Help.View(&m.state.Keys)),
	}
}

func (m *Model) sidebarProps() sidebar.Props {
	p := sidebar.Props{
		Title:  sidebarTitle,
		Count:  len(m.state.FeedList.Items()),
		View:   m.state.FeedList.View(),
		Width:  m.state.FeedList.Width(),
		Height: m.state.FeedList.Height(),
		Active: m.state.Session == state.FeedView,
	}
	if p.Count == 0 {
		p.Empty = emptySidebar
	}
	return p
}

// headerProps describes what the cursor is on: the selected subscription
// in the sidebar, or the selected entry and its feed elsewhere.
func (m *Model) headerProps() header.Props {
	if !m.headerVisible() {
		return header.Props{}
	}

	var link, title string
	if m.state.Session == state.FeedView {
		if i, ok := m.state.FeedList.SelectedItem().(*presenter.Item); ok {
			link, title = i.Link, i.Name
		}
	} else {
		if i, ok := m.state.ArticleList.SelectedItem().(*presenter.Item); ok {
			link = i.Link
		}
		if f := m.session.Current(); f != nil {
			title = f.Title
		}
	}

	width := m.state.ArticleList.Width() - metrics.HeaderWidthPadding
	return header.Props{
		Visible: true,
		Link:    textutil.Truncate(textutil.SingleLine(link), width),
		Title:   textutil.Truncate(textutil.SingleLine(title), width),
	}
}

func (m *Model) mainProps() mainview.Props {
	p := mainview.Props{
		Width:      m.state.ArticleList.Width(),
		Height:     m.state.ArticleList.Height(),
		ErrorColor: lipgloss.Color(m.settings.Theme.Error),
	}

	switch {
	case m.state.Loading:
		p.Body = "\n\n   " + m.state.Spinner.View() + " Fetching feed..."
	case m.state.Session == state.DetailView:
		p.Body = m.state.Viewport.View()
	case m.session.Current() == nil:
		p.Body = faint.Render(emptyEntries)
	default:
		p.Body = m.state.ArticleList.View()
	}

	if m.headerVisible() {
		p.Height += metrics.HeaderLines
	}
	if m.state.Err != nil && !m.state.Loading {
		p.Error = textutil.SingleLine(m.state.Err.Error())
		p.Height += metrics.ErrorLines
	}
	return p
}

func (m *Model) modalProps() modal.Props {
	p := modal.Props{Visible: true, Width: m.state.Width, Height: m.state.Height}
	switch {
	case m.state.Session == state.AddingFeedView:
		p.Kind = modal.AddFeed
		p.Body = "Add subscription\n\nName\n" + m.state.NameInput.View() +
			"\n\nURL\n" + m.state.URLInput.View() + "\n\n" + addDialogHint
	case m.state.Session == state.QuitView:
		p.Kind = modal.Quit
		p.Body = quitPrompt
	case m.state.Help.ShowAll:
		p.Kind = modal.Help
		p.Body = m.state.Help.View(&m.state.Keys)
	default:
		return modal.Props{}
	}
	return p
}

func (m *Model) headerVisible() bool {
	switch m.state.Session {
	case state.FeedView:
		return len(m.state.FeedList.Items()) > 0
	case state.ArticleView, state.DetailView:
		return m.session.Current() != nil
	default:
		return false
	}
}
