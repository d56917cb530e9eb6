package reading

import (
	"errors"
	"time"
)

// Outcome classifies a fetch attempt.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeNetwork Outcome = "network"
	OutcomeParse   Outcome = "parse"
)

// OutcomeOf maps a fetch result error onto an Outcome.
// Any failure that did not get as far as decoding counts as network.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrParse):
		return OutcomeParse
	default:
		return OutcomeNetwork
	}
}

// Attempt describes one fetch. It carries no feed content.
type Attempt struct {
	SessionID string
	URL       string
	Outcome   Outcome
	Items     int
	Duration  time.Duration
	Error     string
	FetchedAt time.Time
}

// NewAttempt builds the Attempt for a finished fetch.
func NewAttempt(sessionID, url string, feed *Feed, err error, started time.Time, took time.Duration) Attempt {
	a := Attempt{
		SessionID: sessionID,
		URL:       url,
		Outcome:   OutcomeOf(err),
		Duration:  took,
		FetchedAt: started,
	}
	if err != nil {
		a.Error = err.Error()
	} else if feed != nil {
		a.Items = len(feed.Items)
	}
	return a
}
