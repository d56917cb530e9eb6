package state

import "strings"

// FooterText puts the status line above the help text. The status is left
// out while loading and inside dialogs.
func FooterText(session Session, loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if loading || session.Dialog() {
		status = ""
	}
	switch {
	case status == "":
		return helpText
	case helpText == "":
		return status
	default:
		return status + "\n" + helpText
	}
}
