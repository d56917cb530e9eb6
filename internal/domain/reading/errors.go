package reading

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork is matched by NetworkError through errors.Is.
	ErrNetwork = errors.New("feed network error")
	// ErrParse is matched by ParseError through errors.Is.
	ErrParse = errors.New("feed parse error")
)

// NetworkError reports a failed retrieval: DNS, connect, TLS, redirect,
// timeout or a non-success status.
type NetworkError struct {
	URL string
	// StatusCode is set when the server answered with a non-success status.
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is reports whether target is ErrNetwork.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ParseError reports a body that could not be decoded as a feed.
type ParseError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.URL, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
