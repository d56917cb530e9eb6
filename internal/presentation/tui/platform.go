package tui

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// OSOpenCmd builds the command that opens link in the desktop browser.
// Tests replace it.
var OSOpenCmd = func(link string) *exec.Cmd {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", link) //nolint:gosec
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link) //nolint:gosec
	case "darwin":
		return exec.Command("open", link) //nolint:gosec
	default:
		return nil
	}
}

// openBrowser opens an entry link. Links come from remote documents, so
// anything but http and https is refused.
func openBrowser(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q link", u.Scheme)
	}
	cmd := OSOpenCmd(u.String())
	if cmd == nil {
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	return cmd.Start()
}
