// internal/app/formatter.go
package app

import (
	"fmt"
	"strings"

	"homework_status_bot/internal/domain/homework"
)

const (
	statusMessagePrefix  = `Changed review status for "`
	statusMessageSep     = `". `
	failureMessagePrefix = "Program failure: "
)

// FormatStatus turns a homework record into the chat notification text.
func FormatStatus(hw homework.Homework) (string, error) {
	name, ok := hw.Name()
	if !ok {
		return "", homework.NewError(homework.KindMissingField, `homework record has no string "homework_name"`, nil)
	}
	status, ok := hw.Status()
	if !ok {
		return "", homework.NewError(homework.KindUnknownStatus, fmt.Sprintf("homework %q has no string status", name), nil)
	}
	verdict, ok := homework.VerdictFor(status)
	if !ok {
		return "", homework.NewError(homework.KindUnknownStatus, fmt.Sprintf("homework %q has unknown status %q", name, status), nil)
	}
	return statusMessagePrefix + name + statusMessageSep + verdict, nil
}

// ParseStatusMessage recovers the homework name and verdict from a FormatStatus result.
func ParseStatusMessage(text string) (name, verdict string, ok bool) {
	rest, found := strings.CutPrefix(text, statusMessagePrefix)
	if !found {
		return "", "", false
	}
	i := strings.LastIndex(rest, statusMessageSep)
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+len(statusMessageSep):], true
}

// FailureMessage is the text reported to the chat when a poll cycle fails.
func FailureMessage(err error) string {
	return failureMessagePrefix + err.Error()
}
