// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"iter"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/domain/subscription"
	"github.com/tesso57/jrss/internal/presentation/tui/textutil"
)

// Placeholders shown for absent entry fields.
const (
	NoTitle       = "(untitled)"
	NoLink        = "(no link)"
	NoDescription = "(no description)"
)

// Item is a view model for list items.
// Subscriptions fill Index and Name; entries fill HasLink.
type Item struct {
	TitleText string
	Desc      string
	Link      string
	HasLink   bool
	Index     int
	Name      string
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// URL returns the item's URL.
func (i *Item) URL() string { return i.Link }

// Description returns the list description.
func (i *Item) Description() string { return i.Desc }

// BuildFeedListItems builds sidebar items, one per subscription.
func BuildFeedListItems(subs iter.Seq2[int, subscription.Subscription]) []list.Item {
	var items []list.Item
	for idx, sub := range subs {
		name := sub.Name
		if name == "" {
			name = sub.URL
		}
		items = append(items, &Item{
			TitleText: fmt.Sprintf("%d. %s", idx+1, name),
			Link:      sub.URL,
			HasLink:   sub.URL != "",
			Index:     idx,
			Name:      sub.Name,
		})
	}
	return items
}

// ApplyFeedList updates the list model with subscription items.
func ApplyFeedList(model *list.Model, subs iter.Seq2[int, subscription.Subscription]) {
	model.SetItems(BuildFeedListItems(subs))
}

// BuildArticleListItems builds one item per feed entry, in feed order.
func BuildArticleListItems(feed *reading.Feed) []list.Item {
	if feed == nil {
		return nil
	}
	result := make([]list.Item, len(feed.Items))
	for i, it := range feed.Items {
		desc := NoDescription
		if it.Description != nil {
			desc = textutil.PlainText(*it.Description)
		}
		result[i] = &Item{
			TitleText: textutil.SingleLine(reading.TextOr(it.Title, NoTitle)),
			Desc:      desc,
			Link:      reading.TextOr(it.Link, NoLink),
			HasLink:   it.Link != nil && *it.Link != "",
			Index:     i,
		}
	}
	return result
}

// ApplyArticleList updates the entry list and its title from feed.
func ApplyArticleList(model *list.Model, feed *reading.Feed) {
	model.SetItems(BuildArticleListItems(feed))
	if feed == nil {
		model.Title = "Entries"
		return
	}
	model.Title = feed.Title
}
