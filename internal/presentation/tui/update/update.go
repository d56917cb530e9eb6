// Package update applies key presses and fetch results to the reader state.
package update

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jrss/internal/application/usecase"
	"github.com/tesso57/jrss/internal/presentation/tui/intent"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Session     *usecase.Session
	OpenBrowser func(string) error
}

// screenHandler applies an action on one screen. It reports false when the
// action means nothing there.
type screenHandler func(*state.ModelState, intent.Action, Deps) (tea.Cmd, bool)

var screens = map[state.Session]screenHandler{
	state.FeedView:    onSubscriptions,
	state.ArticleView: onEntries,
	state.DetailView:  onDetail,
}

// HandleKeyMsg processes key input based on the current session.
// It reports false when the message should fall through to the focused list.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch {
	case s.Session == state.AddingFeedView:
		return onAddDialog(s, msg, deps)
	case s.Session == state.QuitView:
		return onQuitDialog(s, msg)
	case filtering(s):
		return nil, false
	}

	action := intent.Of(msg, s.Keys)
	switch {
	case action == intent.Quit:
		s.Previous, s.Session = s.Session, state.QuitView
		return nil, true
	case action == intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case action == intent.Back && s.Help.ShowAll:
		s.Help.ShowAll = false
		return nil, true
	}

	if h, ok := screens[s.Session]; ok {
		return h(s, action, deps)
	}
	return nil, false
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width, s.Height = msg.Width, msg.Height
	UpdateListSizes(s)
}

// filtering reports whether the focused list owns the keyboard for its
// filter prompt.
func filtering(s *state.ModelState) bool {
	var l *list.Model
	switch s.Session {
	case state.FeedView:
		l = &s.FeedList
	case state.ArticleView:
		l = &s.ArticleList
	default:
		return false
	}
	return l.FilterState() == list.Filtering
}
