package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jrss/internal/domain/reading"
	"github.com/tesso57/jrss/internal/domain/subscription"
)

const testRSS = `<?xml version="1.0"?>
<rss version="2.0"><channel>
<title>Example</title><description>An example feed</description>
<item><title>Hello</title><link>https://example.com/1</link><description>&lt;p&gt;World&lt;/p&gt;</description></item>
<item><link>https://example.com/2</link></item>
</channel></rss>`

func serveFeed(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("JRSS_JOURNAL_FILE", filepath.Join(dir, "journal.db"))
	return filepath.Join(dir, "config.yaml")
}

func TestRunFetchPrintsFeed(t *testing.T) {
	cfg := testEnv(t)
	srv := serveFeed(t, http.StatusOK, testRSS)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--config", cfg, "fetch", srv.URL, "--name", "Example"}, &stdout, &stderr)
	require.NoError(t, err)

	want := "Example\nAn example feed\n" +
		"\n1. Hello\n   https://example.com/1\n   World\n" +
		"\n2. (untitled)\n   https://example.com/2\n   (no description)\n"
	assert.Equal(t, want, stdout.String())
}

func TestRunFetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		code     int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", sentinel: reading.ErrNetwork, code: 2},
		{name: "not rss", status: http.StatusOK, body: "<html><body>hi</body></html>", sentinel: reading.ErrParse, code: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testEnv(t)
			srv := serveFeed(t, tt.status, tt.body)

			var stdout, stderr bytes.Buffer
			err := run([]string{"--config", cfg, "fetch", srv.URL}, &stdout, &stderr)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.code, exitCode(err))
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunJournalListsAttempts(t *testing.T) {
	cfg := testEnv(t)
	ok := serveFeed(t, http.StatusOK, testRSS)
	bad := serveFeed(t, http.StatusNotFound, "")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--config", cfg, "fetch", ok.URL}, &stdout, &stderr))
	require.Error(t, run([]string{"--config", cfg, "fetch", bad.URL}, &stdout, &stderr))

	stdout.Reset()
	require.NoError(t, run([]string{"--config", cfg, "journal", "--limit", "5"}, &stdout, &stderr))
	out := stdout.String()
	assert.Contains(t, out, "OUTCOME")
	assert.Contains(t, out, ok.URL)
	assert.Contains(t, out, bad.URL)
	assert.Contains(t, out, "network")
	assert.Contains(t, out, "unexpected status 404")
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte(bad.URL)), bytes.Index(stdout.Bytes(), []byte(ok.URL)), "newest first")
}

func TestRunJournalEmpty(t *testing.T) {
	cfg := testEnv(t)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--config", cfg, "journal"}, &stdout, &stderr))
	assert.Equal(t, "No fetch attempts recorded.\n", stdout.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("other")))
	assert.Equal(t, 4, exitCode(&subscription.IndexError{Index: 3, Len: 0}))
}
