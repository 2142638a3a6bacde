package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrIncomplete is returned by the required-field validator when the
	// entered digits do not fill every input slot.
	ErrIncomplete = errors.New("tui: value does not fill the pattern")
)
