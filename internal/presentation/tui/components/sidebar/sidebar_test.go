package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := Render(Props{Title: "Subscriptions", Count: 2, View: "FEED LIST", Width: 30, Height: 10, Active: true})

	assert.Contains(t, out, "Subscriptions (2)")
	assert.Contains(t, out, "FEED LIST")
}

func TestRender_Inactive(t *testing.T) {
	out := Render(Props{Title: "Subscriptions", View: "FEED LIST", Width: 30, Height: 10})

	assert.Contains(t, out, "FEED LIST")
	assert.NotContains(t, out, "(0)")
}

func TestRender_Empty(t *testing.T) {
	out := Render(Props{Title: "Subscriptions", View: "No items.", Empty: "press a", Width: 30, Height: 10})

	assert.Contains(t, out, "press a")
	assert.NotContains(t, out, "No items.")
}
