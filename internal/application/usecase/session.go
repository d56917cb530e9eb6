package usecase

import (
	"context"
	"iter"
	"sync"

	"github.com/google/uuid"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/domain/subscription"
)

// Session owns the subscriptions of one run and the feed last fetched.
// It is safe for concurrent use.
type Session struct {
	ID string

	mu      sync.Mutex
	subs    *subscription.List
	reading ReadingService
	current *reading.Feed
}

// NewSession constructs a Session. A nil list starts empty.
func NewSession(subs *subscription.List, rs ReadingService) *Session {
	if subs == nil {
		subs = subscription.NewList()
	}
	id := uuid.NewString()
	if rs.SessionID == "" {
		rs.SessionID = id
	}
	return &Session{
		ID:      id,
		subs:    subs,
		reading: rs,
	}
}

// AddSubscription appends a subscription and returns its index.
// Names and URLs are stored as given; they are validated only when fetched.
func (s *Session) AddSubscription(name, url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subs.Add(name, url)
}

// ListSubscriptions enumerates subscriptions in insertion order.
func (s *Session) ListSubscriptions() iter.Seq2[int, subscription.Subscription] {
	return func(yield func(int, subscription.Subscription) bool) {
		s.mu.Lock()
		snapshot := make([]subscription.Subscription, 0, s.subs.Len())
		for _, sub := range s.subs.All() {
			snapshot = append(snapshot, sub)
		}
		s.mu.Unlock()

		for i, sub := range snapshot {
			if !yield(i, sub) {
				return
			}
		}
	}
}

// Len returns the number of subscriptions.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subs.Len()
}

// Subscription returns the subscription at index.
func (s *Session) Subscription(index int) (subscription.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(index)
}

// SelectAndFetch fetches the subscription at index and makes the result current.
// On failure the current feed is left as it was.
func (s *Session) SelectAndFetch(ctx context.Context, index int) (*reading.Feed, error) {
	s.mu.Lock()
	sub, err := s.lookup(index)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	feed, err := s.reading.Fetch(ctx, sub.URL)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = feed
	s.mu.Unlock()
	return feed, nil
}

// Current returns the last successfully fetched feed, or nil.
func (s *Session) Current() *reading.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) lookup(index int) (subscription.Subscription, error) {
	sub, ok := s.subs.Get(index)
	if !ok {
		return subscription.Subscription{}, &subscription.IndexError{Index: index, Len: s.subs.Len()}
	}
	return sub, nil
}
