package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether components may draw interactively.
type HeadlessManager struct {
	forced *bool
	fd     uintptr
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{fd: os.Stdin.Fd()}
}

// IsHeadless reports whether the UI must run without a terminal.
// A forced value wins over terminal detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h == nil {
		return true
	}
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(h.fd) && !isatty.IsCygwinTerminal(h.fd)
}

// ForceHeadless overrides terminal detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce restores terminal detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
