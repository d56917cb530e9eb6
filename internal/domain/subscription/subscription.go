// Package subscription defines feed subscription models.
package subscription

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndex is matched by IndexError through errors.Is.
var ErrIndex = errors.New("subscription index out of range")

// Subscription represents a single named feed subscription.
type Subscription struct {
	Name string
	URL  string
}

// IndexError reports a lookup of a subscription position that does not exist.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("subscription index %d out of range (have %d)", e.Index, e.Len)
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// List is an ordered, append-only collection of subscriptions.
// Positions are stable for the lifetime of the list.
type List struct {
	items []Subscription
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Add appends a subscription and returns its index.
// Duplicates by name or URL are kept.
func (l *List) Add(name, url string) int {
	l.items = append(l.items, Subscription{Name: name, URL: url})
	return len(l.items) - 1
}

// Get returns the subscription at index.
func (l *List) Get(index int) (Subscription, bool) {
	if index < 0 || index >= len(l.items) {
		return Subscription{}, false
	}
	return l.items[index], true
}

// Len returns the number of subscriptions.
func (l *List) Len() int {
	return len(l.items)
}

// All yields subscriptions with their index in insertion order.
func (l *List) All() iter.Seq2[int, Subscription] {
	return func(yield func(int, Subscription) bool) {
		snapshot := l.items[:len(l.items):len(l.items)]
		for i, sub := range snapshot {
			if !yield(i, sub) {
				return
			}
		}
	}
}
