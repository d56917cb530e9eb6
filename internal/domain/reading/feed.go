// Package reading defines core reading models.
package reading

// Item represents a single RSS item.
// Nil fields were absent in the source document.
type Item struct {
	Title       *string
	Link        *string
	Description *string
}

// Feed represents a parsed RSS feed.
type Feed struct {
	Title       string
	Description string
	Items       []Item
}

// Text returns a pointer to s, for building items.
func Text(s string) *string {
	return &s
}

// TextOr returns *s, or fallback when s is nil.
func TextOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
