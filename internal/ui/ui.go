// Package ui renders the scaffolder's terminal output: result cards,
// spinners and progress bars, the init-project form and markdown pages.
// Every component degrades to plain lines when no terminal is attached.
package ui

import (
	"context"
	"errors"
)

var (
	// ErrCancelled is returned when the user aborts an interactive form.
	ErrCancelled = errors.New("cancelled by user")

	// ErrHeadlessNoDefaults is returned when a form runs without a terminal
	// and the caller supplied nothing to fall back on.
	ErrHeadlessNoDefaults = errors.New("no terminal attached and no defaults given")
)

// Progress creates progress indicators for long-running work.
type Progress interface {
	// Start creates a determinate progress bar with total steps.
	Start(title string, total int) ProgressBar

	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar reports determinate progress.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner reports indeterminate progress.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// Wizard collects the answers needed to create a project.
type Wizard interface {
	// Run asks for every field, pre-filled from defaults. Without a
	// terminal it returns defaults as-is, or ErrHeadlessNoDefaults when
	// defaults carry no project code.
	Run(ctx context.Context, defaults InitAnswers) (*InitAnswers, error)
}
