package presenter

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/domain/subscription"
)

func TestBuildFeedListItems(t *testing.T) {
	subs := subscription.NewList()
	subs.Add("Tech News", "https://example.com/feed.xml")
	subs.Add("", "https://example.org/rss")

	items := BuildFeedListItems(subs.All())
	require.Len(t, items, 2)

	first := items[0].(*Item)
	assert.Equal(t, "1. Tech News", first.Title())
	assert.Equal(t, "https://example.com/feed.xml", first.URL())
	assert.Equal(t, 0, first.Index)

	second := items[1].(*Item)
	assert.Equal(t, "2. https://example.org/rss", second.Title(), "unnamed subscriptions show their URL")
	assert.Equal(t, 1, second.Index)
	assert.Empty(t, second.Name)
}

func TestBuildArticleListItems_Placeholders(t *testing.T) {
	feed := &reading.Feed{
		Title:       "T",
		Description: "D",
		Items: []reading.Item{
			{Title: reading.Text("First"), Link: reading.Text("https://example.com/1"), Description: reading.Text("<p>Hello <b>world</b></p>")},
			{},
			{Title: reading.Text(""), Description: reading.Text("")},
		},
	}

	items := BuildArticleListItems(feed)
	require.Len(t, items, 3)

	first := items[0].(*Item)
	assert.Equal(t, "First", first.Title())
	assert.Equal(t, "Hello world", first.Description())
	assert.Equal(t, "https://example.com/1", first.URL())
	assert.True(t, first.HasLink)

	absent := items[1].(*Item)
	assert.Equal(t, NoTitle, absent.Title())
	assert.Equal(t, NoLink, absent.URL())
	assert.Equal(t, NoDescription, absent.Description())
	assert.False(t, absent.HasLink)

	empty := items[2].(*Item)
	assert.Equal(t, "", empty.Title(), "present but empty is not absent")
	assert.Equal(t, "", empty.Description())
}

func TestApplyArticleList(t *testing.T) {
	model := list.New(nil, list.NewDefaultDelegate(), 0, 0)

	ApplyArticleList(&model, &reading.Feed{Title: "Tech", Items: []reading.Item{{}}})
	assert.Equal(t, "Tech", model.Title)
	assert.Len(t, model.Items(), 1)

	ApplyArticleList(&model, nil)
	assert.Equal(t, "Entries", model.Title)
	assert.Empty(t, model.Items())
}
