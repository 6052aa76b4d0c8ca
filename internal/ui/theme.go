package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig selects a palette.
type ThemeConfig struct {
	// Mode is "light" or "dark". Anything else means dark.
	Mode    string
	NoColor bool
}

// Colors holds hex colors for one palette.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme is the palette every component draws with.
type Theme struct {
	Colors  Colors
	NoColor bool
	Mode    string
}

var (
	darkColors = Colors{
		Primary:   "#E87D3E",
		Secondary: "#5D9BD5",
		Success:   "#10B981",
		Warning:   "#F59E0B",
		Error:     "#EF4444",
		Text:      "#E5E7EB",
		Muted:     "#6B7280",
		Border:    "#4B5563",
	}
	lightColors = Colors{
		Primary:   "#C2571A",
		Secondary: "#2F6DA8",
		Success:   "#059669",
		Warning:   "#B45309",
		Error:     "#DC2626",
		Text:      "#111827",
		Muted:     "#9CA3AF",
		Border:    "#D1D5DB",
	}
)

// NewTheme creates a Theme for cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	colors := darkColors
	if mode == "light" {
		colors = lightColors
	} else {
		mode = "dark"
	}
	return &Theme{Colors: colors, NoColor: cfg.NoColor, Mode: mode}
}

// Style returns a foreground style for color, or a plain style when the
// theme has color disabled.
func (t *Theme) Style(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t == nil || t.NoColor || color == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}
