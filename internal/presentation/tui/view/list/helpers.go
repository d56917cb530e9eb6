package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jrss/internal/presentation/tui/metrics"
	"github.com/tesso57/jrss/internal/presentation/tui/textutil"
)

// paddedStyles returns the default item styles with room on the right edge.
func paddedStyles() list.DefaultItemStyles {
	s := list.NewDefaultItemStyles()
	for _, st := range []*lipgloss.Style{
		&s.NormalTitle, &s.SelectedTitle, &s.DimmedTitle,
		&s.NormalDesc, &s.SelectedDesc, &s.DimmedDesc,
	} {
		*st = st.PaddingRight(metrics.ItemRightPadding)
	}
	return s
}

// rowStyles picks the title and description style for the row at index.
// Rows are dimmed while the filter prompt is open and still empty.
func rowStyles(s list.DefaultItemStyles, m list.Model, index int) (title, desc lipgloss.Style) {
	switch {
	case m.FilterState() == list.Filtering && m.FilterValue() == "":
		return s.DimmedTitle, s.DimmedDesc
	case index == m.Index():
		return s.SelectedTitle, s.SelectedDesc
	default:
		return s.NormalTitle, s.NormalDesc
	}
}

// writeLine renders text in style, cut to the list width.
func writeLine(w io.Writer, m list.Model, style lipgloss.Style, text string) {
	maxWidth := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding
	_, _ = io.WriteString(w, style.Render(textutil.Truncate(text, maxWidth)))
}
