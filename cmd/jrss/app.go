package main

import (
	"io"

	"github.com/tesso57/jrss/internal/application/settings"
	"github.com/tesso57/jrss/internal/application/usecase"
	"github.com/tesso57/jrss/internal/infrastructure/feed"
	"github.com/tesso57/jrss/internal/infrastructure/journal"
	"github.com/tesso57/jrss/internal/infrastructure/logging"
	"go.uber.org/zap"
)

// app carries what every command needs.
type app struct {
	settings settings.Settings
	stdout   io.Writer
	stderr   io.Writer
}

// logger logs to console, which may be nil, and to the configured file.
func (a *app) logger(console io.Writer) (*zap.Logger, func(), error) {
	return logging.New(logging.Config{
		Level:      a.settings.Log.Level,
		File:       a.settings.Log.File,
		MaxSizeMB:  a.settings.Log.MaxSizeMB,
		MaxBackups: a.settings.Log.MaxBackups,
		MaxAgeDays: a.settings.Log.MaxAgeDays,
	}, console)
}

// newSession wires fetcher, journal and reading service into a Session.
// A journal that cannot be opened is logged and skipped.
func (a *app) newSession(log *zap.Logger) (*usecase.Session, func()) {
	fetcher := feed.NewFetcher(feed.Options{
		UserAgent:    a.settings.Fetch.UserAgent,
		MaxBodyBytes: a.settings.Fetch.MaxBodyBytes,
		Logger:       log,
	})

	var (
		recorder usecase.FetchJournal
		closeFn  = func() {}
	)
	if a.settings.Journal.Enabled {
		j, err := journal.Open(a.settings.Journal.File)
		if err != nil {
			log.Warn("journal disabled", zap.String("path", a.settings.Journal.File), zap.Error(err))
		} else {
			recorder = j
			closeFn = func() {
				if err := j.Close(); err != nil {
					log.Warn("close journal", zap.Error(err))
				}
			}
		}
	}

	rs := usecase.NewReadingService(fetcher, recorder, a.settings.Fetch.Timeout())
	rs.Log = log
	session := usecase.NewSession(nil, rs)
	log.Debug("session started", zap.String("session", session.ID))
	return session, closeFn
}
