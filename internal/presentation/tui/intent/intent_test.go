package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/tesso57/jrss/internal/application/settings"
	"github.com/tesso57/jrss/internal/presentation/tui/state"
)

func TestOf(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Left:    "h",
		Right:   "l",
		Open:    "enter",
		Back:    "esc",
		Quit:    "q",
		AddFeed: "a",
		Refresh: "r",
	})

	runes := func(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
	cases := map[string]struct {
		msg  tea.KeyMsg
		want Action
	}{
		"quit":           {runes('q'), Quit},
		"help":           {runes('?'), ToggleHelp},
		"add":            {runes('a'), AddFeed},
		"enter opens":    {tea.KeyMsg{Type: tea.KeyEnter}, Open},
		"right opens":    {runes('l'), Open},
		"esc goes back":  {tea.KeyMsg{Type: tea.KeyEsc}, Back},
		"left goes back": {runes('h'), Back},
		"refresh":        {runes('r'), Refresh},
		"unbound":        {runes('x'), None},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Of(tc.msg, keys))
		})
	}
}

func TestOf_SharedKeyResolvesInTableOrder(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{Open: "r", Refresh: "r"})

	assert.Equal(t, Open, Of(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, keys))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "toggle help", ToggleHelp.String())
	assert.Equal(t, "refresh", Refresh.String())
	assert.Equal(t, "unknown", Action(42).String())
}
