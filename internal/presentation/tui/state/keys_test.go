package state

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/tesso57/jrss/internal/application/settings"
)

func TestNewKeyMap_ParsesKeyLists(t *testing.T) {
	keys := NewKeyMap(settings.KeyMapConfig{
		Up:       "k, up",
		DownPage: "pgdn",
		AddFeed:  "a",
	})

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, keys.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, keys.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyPgDown}, keys.DownPage), "pgdn also binds pgdown")
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, keys.Help))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, keys.AddFeed))
}

func TestParseKeys(t *testing.T) {
	assert.Equal(t, []string{"j", "down"}, parseKeys(" j ,, down "))
	assert.Equal(t, []string{"pgdown", "pgdn"}, parseKeys("pgdown"))
	assert.Nil(t, parseKeys(""))
}
