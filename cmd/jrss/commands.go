package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/infrastructure/journal"
	"github.com/tesso57/jrss/internal/presentation/tui"
	"github.com/tesso57/jrss/internal/presentation/tui/presenter"
	"github.com/tesso57/jrss/internal/presentation/tui/textutil"
)

type tuiCmd struct {
	Feeds []string `arg:"" optional:"" help:"Feed URLs to subscribe to at startup."`
}

// Run starts the reader. The terminal belongs to the TUI, so logs only go
// to the configured file.
func (c *tuiCmd) Run(a *app) error {
	log, closeLog, err := a.logger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	session, closeSession := a.newSession(log)
	defer closeSession()
	for _, url := range c.Feeds {
		session.AddSubscription("", url)
	}

	_, err = tea.NewProgram(tui.NewModel(a.settings, session), tea.WithAltScreen()).Run()
	return err
}

type fetchCmd struct {
	URL  string `arg:"" help:"Feed URL."`
	Name string `help:"Subscription name."`
}

// Run subscribes to the URL in a fresh session, fetches it and prints it.
func (c *fetchCmd) Run(a *app) error {
	log, closeLog, err := a.logger(a.stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	session, closeSession := a.newSession(log)
	defer closeSession()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	index := session.AddSubscription(c.Name, c.URL)
	f, err := session.SelectAndFetch(ctx, index)
	if err != nil {
		return err
	}
	return printFeed(a.stdout, f)
}

type journalCmd struct {
	Limit int `help:"Number of attempts to show (0 for all)." default:"20"`
}

// Run prints the most recent fetch attempts.
func (c *journalCmd) Run(a *app) error {
	j, err := journal.Open(a.settings.Journal.File)
	if err != nil {
		return err
	}
	defer func() { _ = j.Close() }()

	entries, err := j.Recent(c.Limit)
	if err != nil {
		return err
	}
	return printJournal(a.stdout, entries)
}

func printFeed(w io.Writer, f *reading.Feed) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", f.Title, f.Description)
	for i, it := range f.Items {
		desc := presenter.NoDescription
		if it.Description != nil {
			desc = textutil.SingleLine(textutil.PlainText(*it.Description))
		}
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n   %s\n",
			i+1,
			textutil.SingleLine(reading.TextOr(it.Title, presenter.NoTitle)),
			reading.TextOr(it.Link, presenter.NoLink),
			desc,
		)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func printJournal(w io.Writer, entries []journal.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No fetch attempts recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tOUTCOME\tITEMS\tTOOK\tURL\tERROR")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			e.FetchedAt.Local().Format(time.DateTime),
			e.Outcome,
			e.Items,
			e.Duration.Round(time.Millisecond),
			e.URL,
			e.Error,
		)
	}
	return tw.Flush()
}
