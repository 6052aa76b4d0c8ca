package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the column width markdown is wrapped at.
const DefaultWrap = 80

// RenderMarkdown renders md for the terminal. With color disabled the
// source is returned unchanged.
func (t *Theme) RenderMarkdown(md string, width int) (string, error) {
	if t == nil || t.NoColor {
		return md, nil
	}
	if width <= 0 {
		width = DefaultWrap
	}
	style := glamour.WithStandardStyle("dark")
	if t.Mode == "light" {
		style = glamour.WithStandardStyle("light")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
