package feed

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const feedAcceptHeader = "application/rss+xml, application/rdf+xml;q=0.9, application/xml;q=0.8, text/xml;q=0.8, */*;q=0.5"

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = "jrss/1.0"

// Options configures the HTTP side of a Fetcher.
type Options struct {
	UserAgent string
	// MaxBodyBytes caps the response body; zero or less means unlimited.
	MaxBodyBytes int
	Logger       *zap.Logger
	// Transport overrides the round tripper, mainly for tests.
	Transport http.RoundTripper
}

func newClient(opt Options) *resty.Client {
	ua := opt.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	c := resty.New().
		SetHeader("User-Agent", ua).
		SetHeader("Accept", feedAcceptHeader).
		SetLogger(log.Sugar()).
		SetRetryCount(0)
	if opt.MaxBodyBytes > 0 {
		c.SetResponseBodyLimit(opt.MaxBodyBytes)
	}
	if opt.Transport != nil {
		c.SetTransport(opt.Transport)
	}
	return c
}
