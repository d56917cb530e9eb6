package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	got := Render(Props{Visible: true, Link: "http://example.com", Title: "Example Feed"})

	lines := strings.Split(got, "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "link")
		assert.Contains(t, lines[0], "http://example.com")
		assert.Contains(t, lines[1], "feed")
		assert.Contains(t, lines[1], "Example Feed")
	}
}

func TestRender_Hidden(t *testing.T) {
	assert.Empty(t, Render(Props{Link: "http://example.com"}))
}
