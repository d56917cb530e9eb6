// Package state holds the presentation state of the reader.
package state

// Session is the screen the reader is on.
type Session int

const (
	// FeedView lists subscriptions.
	FeedView Session = iota
	// ArticleView lists the entries of the current feed.
	ArticleView
	// DetailView shows one entry.
	DetailView
	AddingFeedView
	QuitView
)

var sessionNames = [...]string{"feeds", "entries", "detail", "add subscription", "quit"}

func (s Session) String() string {
	if s < 0 || int(s) >= len(sessionNames) {
		return "unknown"
	}
	return sessionNames[s]
}

// Dialog reports whether s is drawn as a modal over the screen.
func (s Session) Dialog() bool {
	return s == AddingFeedView || s == QuitView
}
