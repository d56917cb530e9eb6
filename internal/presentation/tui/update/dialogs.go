package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jrss/internal/presentation/tui/presenter"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

// onAddDialog drives the two-field add subscription form. Keys other than
// the form controls are typed into the focused field.
func onAddDialog(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab":
		s.FocusInput(!s.NameInput.Focused())
		return textinput.Blink, true
	case "esc":
		closeAddDialog(s)
		return nil, true
	case "enter":
		return submitAddDialog(s, deps), true
	}

	var cmd tea.Cmd
	if s.NameInput.Focused() {
		s.NameInput, cmd = s.NameInput.Update(msg)
	} else {
		s.URLInput, cmd = s.URLInput.Update(msg)
	}
	return cmd, true
}

// submitAddDialog subscribes to the entered URL and selects it. Without a
// URL the dialog stays open with the URL field focused.
func submitAddDialog(s *state.ModelState, deps Deps) tea.Cmd {
	url := strings.TrimSpace(s.URLInput.Value())
	if url == "" {
		s.FocusInput(false)
		return textinput.Blink
	}
	name := strings.TrimSpace(s.NameInput.Value())

	index := deps.Session.AddSubscription(name, url)
	presenter.ApplyFeedList(&s.FeedList, deps.Session.ListSubscriptions())
	s.FeedList.Select(index)

	label := name
	if label == "" {
		label = url
	}
	s.StatusMessage = "Added " + label
	closeAddDialog(s)
	UpdateListSizes(s)
	return nil
}

func closeAddDialog(s *state.ModelState) {
	s.ResetInputs()
	s.Session = state.FeedView
}

// onQuitDialog swallows every key; only y and the cancel keys do anything.
func onQuitDialog(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch strings.ToLower(msg.String()) {
	case "y":
		return tea.Quit, true
	case "n", "q", "esc":
		s.Session = s.Previous
	}
	return nil, true
}
