// Package feed provides functionality to fetch and parse RSS feeds.
package feed

import (
	"context"
	"errors"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tesso57/jrss/internal/domain/reading"
)

var errEmptyURL = errors.New("feed url is empty")

// Fetcher retrieves a feed over HTTP(S) and decodes it.
// It keeps no per-feed state; every call is a single independent attempt.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher constructs a Fetcher.
func NewFetcher(opt Options) *Fetcher {
	return &Fetcher{client: newClient(opt)}
}

// Fetch downloads url and decodes the body as RSS.
// Errors are *reading.NetworkError or *reading.ParseError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*reading.Feed, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &reading.NetworkError{URL: url, Err: errEmptyURL}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	return Decode(url, body)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &reading.NetworkError{URL: url, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &reading.NetworkError{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Err:        errors.New(resp.Status()),
		}
	}
	return resp.Body(), nil
}
