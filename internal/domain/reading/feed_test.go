package reading

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestTextOr(t *testing.T) {
	tests := []struct {
		name     string
		in       *string
		fallback string
		want     string
	}{
		{name: "absent", in: nil, fallback: "(none)", want: "(none)"},
		{name: "empty is kept", in: Text(""), fallback: "(none)", want: ""},
		{name: "value", in: Text("hello"), fallback: "(none)", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextOr(tt.in, tt.fallback); got != tt.want {
				t.Fatalf("TextOr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkError(t *testing.T) {
	cause := context.DeadlineExceeded
	err := fmt.Errorf("select: %w", &NetworkError{URL: "https://example.com/rss", Err: cause})

	if !errors.Is(err, ErrNetwork) {
		t.Fatal("expected ErrNetwork match")
	}
	if errors.Is(err, ErrParse) {
		t.Fatal("network error must not match ErrParse")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("cause should be preserved")
	}

	status := &NetworkError{URL: "https://example.com/rss", StatusCode: 404, Err: errors.New("404 Not Found")}
	if got := status.Error(); got != "fetch https://example.com/rss: unexpected status 404" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestParseError(t *testing.T) {
	cause := errors.New("XML syntax error")
	err := &ParseError{URL: "u", Reason: "malformed feed", Err: cause}

	if !errors.Is(err, ErrParse) {
		t.Fatal("expected ErrParse match")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause should be preserved")
	}
	if got := err.Error(); got != "parse u: malformed feed: XML syntax error" {
		t.Fatalf("Error() = %q", got)
	}

	bare := &ParseError{URL: "u", Reason: "channel title is missing"}
	if got := bare.Error(); got != "parse u: channel title is missing" {
		t.Fatalf("Error() = %q", got)
	}
}
