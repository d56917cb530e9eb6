// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/net/html"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr"

// PlainText renders an HTML fragment as text, one paragraph per line.
// Input that is not HTML comes back with its whitespace normalised.
func PlainText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return SingleLine(fragment)
	}
	doc.Find("script, style").Remove()
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(newline())
	})
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendNodes(newline())
	})

	var lines []string
	blank := true
	for line := range strings.Lines(doc.Text()) {
		line = SingleLine(line)
		if line == "" {
			if !blank {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		lines = append(lines, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
