package app

import (
	"errors"
	"strconv"
	"strings"
)

// Errors for operations on empty or non-matching containers
var (
	ErrNothingToUndo        = errors.New("nothing to undo")
	ErrNoPendingRequests    = errors.New("no requests pending")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNoPerformancesQueued = errors.New("no performances in queue")
	ErrNothingScheduled     = errors.New("no performances scheduled")
	ErrPerformanceNotFound  = errors.New("performance not found in the schedule")
	ErrUnauthorized         = errors.New("principal sign-off failed")
)

// InputError carries the message shown to the user. Err, when set, is the
// sentinel describing the failure.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string {
	return e.Msg
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// fail reports sentinel err with the message the screens display
func fail(err error, msg string) error {
	return &InputError{Msg: msg, Err: err}
}

// requireText trims value and fails with msg if nothing is left
func requireText(value, msg string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &InputError{Msg: msg}
	}
	return value, nil
}

// requirePair trims both values and fails with msg if either is empty
func requirePair(a, b, msg string) (string, string, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return "", "", &InputError{Msg: msg}
	}
	return a, b, nil
}

// parseNumber parses trimmed text as an integer, failing with msg
func parseNumber(text, msg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &InputError{Msg: msg}
	}
	return n, nil
}

func success(text string) Notice {
	return Notice{Level: LevelSuccess, Title: "Success", Text: text}
}

func info(title, text string) Notice {
	return Notice{Level: LevelInfo, Title: title, Text: text}
}
