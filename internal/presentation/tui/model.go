package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jrss/internal/application/settings"
	"github.com/tesso57/jrss/internal/application/usecase"
	"github.com/tesso57/jrss/internal/presentation/tui/presenter"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
	"github.com/tesso57/jrss/internal/presentation/tui/update"
	"github.com/tesso57/jrss/internal/presentation/tui/view"
	listview "github.com/tesso57/jrss/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	session  *usecase.Session
	state    *state.ModelState
}

// NewModel creates a new application model over session.
func NewModel(cfg settings.Settings, session *usecase.Session) *Model {
	return &Model{
		settings: cfg,
		session:  session,
		state:    newModelState(cfg, session),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, textinput.Blink)
}

// Update handles messages and updates the model state. Keys the reader
// binds are consumed; everything else reaches the spinner and whichever pane
// has focus.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps()); handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.FeedFetchedMsg:
		update.HandleFeedFetchedMsg(m.state, msg)
	}

	var spin tea.Cmd
	if m.state.Loading {
		m.state.Spinner, spin = m.state.Spinner.Update(msg)
	}
	return m, tea.Batch(spin, m.forward(msg))
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state.Session {
	case state.FeedView:
		m.state.FeedList, cmd = m.state.FeedList.Update(msg)
	case state.ArticleView:
		m.state.ArticleList, cmd = m.state.ArticleList.Update(msg)
	case state.DetailView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
	}
	return cmd
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.props())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Session:     m.session,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings, session *usecase.Session) *state.ModelState {
	st := &state.ModelState{
		Session:     state.FeedView,
		FeedList:    newFeedList(cfg),
		ArticleList: newArticleList(),
		NameInput:   newTextInput("Name (optional)", 64),
		URLInput:    newTextInput("https://example.com/feed.xml", 512),
		Viewport:    newViewport(),
		Help:        help.New(),
		Spinner:     newSpinner(),
		Keys:        state.NewKeyMap(cfg.KeyMap),
	}

	bindListKeys(&st.FeedList, st.Keys)
	bindListKeys(&st.ArticleList, st.Keys)
	st.ResetInputs()

	presenter.ApplyFeedList(&st.FeedList, session.ListSubscriptions())
	presenter.ApplyArticleList(&st.ArticleList, nil)

	return st
}

func bindListKeys(l *list.Model, keys state.KeyMap) {
	l.KeyMap.CursorUp = keys.Up
	l.KeyMap.CursorDown = keys.Down
	l.KeyMap.PrevPage = keys.UpPage
	l.KeyMap.NextPage = keys.DownPage
	l.KeyMap.GoToStart = keys.Top
	l.KeyMap.GoToEnd = keys.Bottom
}

func newFeedList(cfg settings.Settings) list.Model {
	l := newList(listview.NewFeedDelegate(lipgloss.Color(cfg.Theme.FeedName)))
	l.Title = sidebarTitle
	return l
}

func newArticleList() list.Model {
	return newList(listview.NewArticleDelegate())
}

// newList builds a bare list: titles, help and quit keys are drawn and
// handled by the reader itself.
func newList(d list.ItemDelegate) list.Model {
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	return ti
}

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
	)
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Padding(0, 1)
	return vp
}
