// Package usecase contains application-level services.
package usecase

import (
	"context"
	"time"

	"github.com/tesso57/jrss/internal/domain/reading"
	"go.uber.org/zap"
)

// FeedFetcher abstracts RSS fetching.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*reading.Feed, error)
}

// FetchJournal abstracts the fetch attempt log.
type FetchJournal interface {
	Record(a reading.Attempt) error
}

// ReadingService bounds each fetch with a timeout and reports its outcome.
type ReadingService struct {
	Fetcher FeedFetcher
	// Journal is optional.
	Journal FetchJournal
	// Timeout of zero leaves the caller's context untouched.
	Timeout   time.Duration
	Now       func() time.Time
	SessionID string
	Log       *zap.Logger
}

// NewReadingService constructs a ReadingService.
func NewReadingService(fetcher FeedFetcher, journal FetchJournal, timeout time.Duration) ReadingService {
	return ReadingService{
		Fetcher: fetcher,
		Journal: journal,
		Timeout: timeout,
	}
}

// Fetch performs one attempt against url.
func (s ReadingService) Fetch(ctx context.Context, url string) (*reading.Feed, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	started := s.now()
	feed, err := s.Fetcher.Fetch(ctx, url)
	took := s.now().Sub(started)

	log := s.logger().With(zap.String("url", url), zap.Duration("took", took))
	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
	} else {
		log.Debug("fetched feed", zap.String("title", feed.Title), zap.Int("items", len(feed.Items)))
	}

	if s.Journal != nil {
		attempt := reading.NewAttempt(s.SessionID, url, feed, err, started, took)
		if jerr := s.Journal.Record(attempt); jerr != nil {
			log.Error("record fetch attempt", zap.Error(jerr))
		}
	}
	return feed, err
}

func (s ReadingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s ReadingService) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
