package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/jrss/internal/application/settings"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	UpPage   key.Binding
	DownPage key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	Back     key.Binding
	Quit     key.Binding
	AddFeed  key.Binding
	Refresh  key.Binding
	Help     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.AddFeed, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap. Columns group movement, paging,
// navigation and commands.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.UpPage, k.DownPage},
		{k.Open, k.Back},
		{k.AddFeed, k.Refresh, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from comma separated key lists. Help is always ?.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:       bind(cfg.Up, "up"),
		Down:     bind(cfg.Down, "down"),
		Left:     bind(cfg.Left, "back"),
		Right:    bind(cfg.Right, "open"),
		UpPage:   bind(cfg.UpPage, "page up"),
		DownPage: bind(cfg.DownPage, "page down"),
		Top:      bind(cfg.Top, "top"),
		Bottom:   bind(cfg.Bottom, "bottom"),
		Open:     bind(cfg.Open, "open"),
		Back:     bind(cfg.Back, "back"),
		Quit:     bind(cfg.Quit, "quit"),
		AddFeed:  bind(cfg.AddFeed, "add"),
		Refresh:  bind(cfg.Refresh, "refetch"),
		Help:     bind("?", "toggle help"),
	}
}

func bind(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(parseKeys(keys)...), key.WithHelp(keys, desc))
}

// keyAliases lists names bubbletea reports differently from how users
// usually write them.
var keyAliases = map[string]string{
	"pgdn":   "pgdown",
	"pgdown": "pgdn",
}

func parseKeys(list string) []string {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
		if alias, ok := keyAliases[name]; ok {
			out = append(out, alias)
		}
	}
	return out
}
