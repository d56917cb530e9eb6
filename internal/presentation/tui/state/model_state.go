package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session     Session
	Previous    Session
	FeedList    list.Model
	ArticleList list.Model
	NameInput   textinput.Model
	URLInput    textinput.Model
	Viewport    viewport.Model
	Help        help.Model
	Spinner     spinner.Model
	Loading     bool
	Keys        KeyMap
	Width       int
	Height      int
	// CurrentIndex and CurrentName are the subscription the entry list was
	// fetched from; the feed itself is the session's current one.
	CurrentName   string
	CurrentIndex  int
	Err           error
	StatusMessage string
}

// FocusInput focuses the name input when name is true, the URL input otherwise.
func (s *ModelState) FocusInput(name bool) {
	if name {
		s.URLInput.Blur()
		s.NameInput.Focus()
		return
	}
	s.NameInput.Blur()
	s.URLInput.Focus()
}

// ResetInputs clears the add dialog.
func (s *ModelState) ResetInputs() {
	s.NameInput.Reset()
	s.URLInput.Reset()
	s.FocusInput(true)
}
