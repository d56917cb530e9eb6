// Package listview draws the rows of the subscription and entry lists.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jrss/internal/presentation/tui/textutil"
)

// FeedItem is a subscription row.
type FeedItem interface {
	list.Item
	Title() string
	URL() string
}

// ArticleItem is an entry row.
type ArticleItem interface {
	list.Item
	Title() string
	Description() string
}

// Delegate renders rows of one or two lines: a title and, for taller rows,
// a single-line description under it.
type Delegate struct {
	Styles list.DefaultItemStyles

	lines int
	gap   int
	text  func(list.Item) (title, desc string, ok bool)
}

// NewFeedDelegate renders subscriptions one per line in the theme color.
func NewFeedDelegate(themeColor lipgloss.Color) *Delegate {
	styles := paddedStyles()
	styles.NormalTitle = styles.NormalTitle.Foreground(themeColor)
	return &Delegate{
		Styles: styles,
		lines:  1,
		text: func(item list.Item) (string, string, bool) {
			i, ok := item.(FeedItem)
			if !ok {
				return "", "", false
			}
			return i.Title(), "", true
		},
	}
}

// NewArticleDelegate renders entries as a title over a flattened description.
func NewArticleDelegate() *Delegate {
	return &Delegate{
		Styles: paddedStyles(),
		lines:  2,
		gap:    1,
		text: func(item list.Item) (string, string, bool) {
			i, ok := item.(ArticleItem)
			if !ok {
				return "", "", false
			}
			return i.Title(), textutil.SingleLine(i.Description()), true
		},
	}
}

func (d *Delegate) Height() int                          { return d.lines }
func (d *Delegate) Spacing() int                         { return d.gap }
func (d *Delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render writes the row for item.
func (d *Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	title, desc, ok := d.text(item)
	if !ok {
		return
	}

	titleStyle, descStyle := rowStyles(d.Styles, m, index)
	writeLine(w, m, titleStyle, title)
	if d.lines > 1 {
		_, _ = io.WriteString(w, "\n")
		writeLine(w, m, descStyle, desc)
	}
}
