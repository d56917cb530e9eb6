package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jrss/internal/presentation/tui/intent"
	"github.com/tesso57/jrss/internal/presentation/tui/presenter"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

func onSubscriptions(s *state.ModelState, action intent.Action, deps Deps) (tea.Cmd, bool) {
	switch action {
	case intent.Open, intent.Refresh:
		if i, ok := s.FeedList.SelectedItem().(*presenter.Item); ok {
			return startFetch(s, deps, i.Index, i.Name), true
		}
		return nil, true
	case intent.AddFeed:
		s.Session = state.AddingFeedView
		s.ResetInputs()
		return textinput.Blink, true
	default:
		return nil, false
	}
}

func onEntries(s *state.ModelState, action intent.Action, deps Deps) (tea.Cmd, bool) {
	switch action {
	case intent.Back:
		s.Session = state.FeedView
	case intent.Open:
		if i, ok := s.ArticleList.SelectedItem().(*presenter.Item); ok {
			s.Session = state.DetailView
			showDetail(s, i)
		}
	case intent.Refresh:
		if deps.Session.Current() != nil {
			return startFetch(s, deps, s.CurrentIndex, s.CurrentName), true
		}
	default:
		return nil, false
	}
	return nil, true
}

func onDetail(s *state.ModelState, action intent.Action, deps Deps) (tea.Cmd, bool) {
	switch action {
	case intent.Back:
		s.Session = state.ArticleView
	case intent.Open:
		i, ok := s.ArticleList.SelectedItem().(*presenter.Item)
		if ok && i.HasLink && deps.OpenBrowser != nil {
			if err := deps.OpenBrowser(i.Link); err != nil {
				s.Err = fmt.Errorf("open %s: %w", i.Link, err)
			}
		}
	default:
		return nil, false
	}
	return nil, true
}

func showDetail(s *state.ModelState, item *presenter.Item) {
	s.Viewport.SetContent(buildDetailContentForWidth(item, detailWrapWidth(s)))
	s.Viewport.GotoTop()
}

// detailWrapWidth is the text width inside the viewport. Before the first
// resize the viewport has no width, so the entry list width stands in.
func detailWrapWidth(s *state.ModelState) int {
	frame := s.Viewport.Style.GetHorizontalFrameSize()
	if w := s.Viewport.Width - frame; w > 0 {
		return w
	}
	return max(s.ArticleList.Width()-1-frame, 0)
}
