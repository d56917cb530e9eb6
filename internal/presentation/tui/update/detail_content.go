package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/jrss/internal/presentation/tui/presenter"
)

const dividerWidth = 40

func buildDetailContent(i *presenter.Item) string {
	return detailContent(i, dividerWidth)
}

func detailContent(i *presenter.Item, divider int) string {
	if i == nil {
		return ""
	}

	title := strings.TrimSpace(i.TitleText)
	if title == "" {
		title = presenter.NoTitle
	}
	link := strings.TrimSpace(i.Link)
	if link == "" {
		link = presenter.NoLink
	}
	desc := strings.TrimSpace(i.Desc)
	if desc == "" {
		desc = presenter.NoDescription
	}

	return fmt.Sprintf(
		"%s\n%s\n\n%s\nDescription\n%s",
		title, link,
		strings.Repeat("-", divider), desc,
	)
}

// buildDetailContentForWidth wraps the detail text to width; width < 1 leaves
// it unwrapped. No line ends up wider than width.
func buildDetailContentForWidth(i *presenter.Item, width int) string {
	if width < 1 {
		return buildDetailContent(i)
	}
	content := detailContent(i, min(dividerWidth, width))
	return ansi.Hardwrap(ansi.Wrap(content, width, " -"), width, true)
}
