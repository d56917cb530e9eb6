// Package intent turns key presses into reader actions.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

// Action is what a key press asks the reader to do.
type Action int

const (
	None Action = iota
	Quit
	ToggleHelp
	AddFeed
	Open
	Back
	Refresh
)

var actionNames = [...]string{"none", "quit", "toggle help", "add feed", "open", "back", "refresh"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

type binding struct {
	action Action
	keys   []key.Binding
}

// Of resolves msg against keys. When one key is bound to several actions the
// first one in table order wins.
func Of(msg tea.KeyMsg, keys state.KeyMap) Action {
	table := []binding{
		{Quit, []key.Binding{keys.Quit}},
		{ToggleHelp, []key.Binding{keys.Help}},
		{AddFeed, []key.Binding{keys.AddFeed}},
		{Open, []key.Binding{keys.Right, keys.Open}},
		{Back, []key.Binding{keys.Left, keys.Back}},
		{Refresh, []key.Binding{keys.Refresh}},
	}
	for _, b := range table {
		if key.Matches(msg, b.keys...) {
			return b.action
		}
	}
	return None
}
