package update

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/jrss/internal/application/settings"
	"github.com/tesso57/jrss/internal/presentation/tui/metrics"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

func TestFooterHeight_ReflectsStatusMessage(t *testing.T) {
	s := newLayoutTestState()
	s.Session = state.ArticleView

	base := footerHeight(s)
	s.StatusMessage = "Fetched 3 entries"
	withStatus := footerHeight(s)
	if withStatus <= base {
		t.Fatalf("footer height should grow with a status message: base=%d with=%d", base, withStatus)
	}

	s.Loading = true
	if loading := footerHeight(s); loading != base {
		t.Fatalf("footer height should ignore status while loading: base=%d loading=%d", base, loading)
	}
}

func TestPanes_MainWidthSubtractsSidebarBorder(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 120

	side, main := panes(s)
	if side.width != 40 {
		t.Fatalf("sidebar width = %d, want 40", side.width)
	}
	if want := 120 - 40 - metrics.SidebarRightBorderWidth; main.width != want {
		t.Fatalf("main width = %d, want %d", main.width, want)
	}
}

func TestPanes_ErrorLineShrinksMainList(t *testing.T) {
	s := newLayoutTestState()

	_, main := panes(s)
	before := main.height
	s.Err = errors.New("boom")
	_, main = panes(s)
	after := main.height
	if before-after != metrics.ErrorLines {
		t.Fatalf("main list height = %d with error, want %d", after, before-metrics.ErrorLines)
	}
}

func TestUpdateListSizes_IgnoresZeroSize(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 0
	UpdateListSizes(s)
	if s.FeedList.Width() != 0 {
		t.Fatalf("feed list width = %d, want 0", s.FeedList.Width())
	}
}

func newLayoutTestState() *state.ModelState {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", Left: "h", Right: "l",
		Open: "enter", Back: "esc", Quit: "q",
		AddFeed: "a", Refresh: "r",
		UpPage: "pgup", DownPage: "pgdn", Top: "g", Bottom: "G",
	})
	return &state.ModelState{
		Session:     state.FeedView,
		Help:        help.New(),
		Keys:        keys,
		FeedList:    list.New(nil, list.NewDefaultDelegate(), 0, 0),
		ArticleList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		Width:       100,
		Height:      40,
	}
}
