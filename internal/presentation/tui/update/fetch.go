package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jrss/internal/application/usecase"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/presentation/tui/presenter"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

// FeedFetchedMsg is emitted after a subscription has been fetched.
type FeedFetchedMsg struct {
	Index int
	Name  string
	Feed  *reading.Feed
	Err   error
}

// FetchFeedCmd selects the subscription at index and fetches it.
func FetchFeedCmd(session *usecase.Session, index int, name string) tea.Cmd {
	return func() tea.Msg {
		f, err := session.SelectAndFetch(context.Background(), index)
		return FeedFetchedMsg{Index: index, Name: name, Feed: f, Err: err}
	}
}

// startFetch switches to the entry list and fetches in the background.
// Requests made while a fetch is running are dropped.
func startFetch(s *state.ModelState, deps Deps, index int, name string) tea.Cmd {
	if s.Loading {
		return nil
	}
	s.Loading = true
	s.Err = nil
	s.StatusMessage = ""
	s.Session = state.ArticleView
	return tea.Batch(s.Spinner.Tick, FetchFeedCmd(deps.Session, index, name))
}

// HandleFeedFetchedMsg shows the fetched entries, or the error.
// A failed fetch leaves the entries of the previous feed in place.
func HandleFeedFetchedMsg(s *state.ModelState, msg FeedFetchedMsg) {
	s.Loading = false
	defer UpdateListSizes(s)

	if msg.Err != nil {
		s.Err = msg.Err
		s.StatusMessage = ""
		s.Session = state.FeedView
		return
	}

	s.Err = nil
	s.CurrentIndex = msg.Index
	s.CurrentName = msg.Name
	presenter.ApplyArticleList(&s.ArticleList, msg.Feed)
	s.ArticleList.ResetSelected()
	s.StatusMessage = fetchedStatus(msg.Name, msg.Feed)
}

func fetchedStatus(name string, f *reading.Feed) string {
	if f == nil {
		return ""
	}
	if name == "" {
		name = f.Title
	}
	noun := "entries"
	if len(f.Items) == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("Fetched %d %s from %s", len(f.Items), noun, name)
}
