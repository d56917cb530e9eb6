package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/jrss/internal/application/settings"
	"github.com/tesso57/jrss/internal/application/usecase"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/domain/subscription"
	"github.com/tesso57/jrss/internal/presentation/tui/update"
)

type stubFeedFetcher struct {
	mock.Mock
}

func (s *stubFeedFetcher) Fetch(ctx context.Context, url string) (*reading.Feed, error) {
	args := s.Called(url)
	feed, _ := args.Get(0).(*reading.Feed)
	return feed, args.Error(1)
}

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Left: "h", Right: "l",
			UpPage: "ctrl+u", DownPage: "ctrl+d", Top: "g", Bottom: "G",
			Open: "enter", Back: "esc", Quit: "q",
			AddFeed: "a", Refresh: "r",
		},
		Theme: settings.ThemeConfig{FeedName: "244", Error: "203"},
	}
}

func newTestModel(fetcher *stubFeedFetcher, subs ...subscription.Subscription) *Model {
	list := subscription.NewList()
	for _, sub := range subs {
		list.Add(sub.Name, sub.URL)
	}
	session := usecase.NewSession(list, usecase.NewReadingService(fetcher, nil, 0))
	m := NewModel(testSettings(), session)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, msgs ...tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var tm tea.Model
		tm, cmd = m.Update(msg)
		m = tm.(*Model)
	}
	return m, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and feeds the fetch results it produces back into m.
// Spinner ticks and cursor blinks are dropped.
func drain(m *Model, cmd tea.Cmd) *Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(m, c)
		}
	case update.FeedFetchedMsg:
		m, _ = press(m, msg)
	}
	return m
}
