package feed

import (
	"bytes"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
	"github.com/tesso57/jrss/internal/domain/reading"
)

// Decode parses an RSS document fetched from url.
// Atom and JSON feeds are rejected as unsupported.
func Decode(url string, body []byte) (*reading.Feed, error) {
	switch kind := gofeed.DetectFeedType(bytes.NewReader(body)); kind {
	case gofeed.FeedTypeAtom:
		return nil, &reading.ParseError{URL: url, Reason: "unsupported feed format: atom"}
	case gofeed.FeedTypeJSON:
		return nil, &reading.ParseError{URL: url, Reason: "unsupported feed format: json"}
	}

	parsed, err := new(rss.Parser).Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &reading.ParseError{URL: url, Reason: "malformed rss document", Err: err}
	}
	if parsed.Title == "" {
		return nil, &reading.ParseError{URL: url, Reason: "channel title is missing"}
	}
	if parsed.Description == "" {
		return nil, &reading.ParseError{URL: url, Reason: "channel description is missing"}
	}

	f := &reading.Feed{
		Title:       parsed.Title,
		Description: parsed.Description,
		Items:       make([]reading.Item, 0, len(parsed.Items)),
	}
	present, ok := scanItems(body)
	if !ok || len(present) != len(parsed.Items) {
		present = nil
	}
	for i, item := range parsed.Items {
		if item == nil {
			continue
		}
		var has fields
		if present != nil {
			has = present[i]
		}
		f.Items = append(f.Items, reading.Item{
			Title:       optional(item.Title, has.title),
			Link:        optional(item.Link, has.link),
			Description: optional(item.Description, has.description),
		})
	}
	return f, nil
}

// optional keeps s when the element was present, even if it is empty.
// Without a presence scan an empty value counts as missing.
func optional(s string, present bool) *string {
	if !present && s == "" {
		return nil
	}
	return &s
}
