package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled line in a card.
type Field struct {
	Label string
	Value string
}

// Renderer draws cards with a theme. Without color it falls back to plain
// indented text so that output stays greppable.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a Renderer.
func NewRenderer(theme *Theme) *Renderer {
	if theme == nil {
		theme = NewTheme(ThemeConfig{NoColor: true})
	}
	return &Renderer{theme: theme}
}

func (r *Renderer) cardStyle(border string) lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if !r.theme.NoColor {
		s = s.BorderForeground(lipgloss.Color(border))
	}
	return s
}

// Card renders title and fields in a rounded box.
func (r *Renderer) Card(title string, fields ...Field) string {
	body := r.theme.Style(r.theme.Colors.Primary).Bold(!r.theme.NoColor).Render(title)
	if len(fields) > 0 {
		body += "\n\n" + r.Fields(fields)
	}
	if r.theme.NoColor {
		return body
	}
	return r.cardStyle(r.theme.Colors.Border).Render(body)
}

// Success renders a check-marked card.
func (r *Renderer) Success(title string, fields ...Field) string {
	mark := r.theme.Style(r.theme.Colors.Success).Render("✓")
	return r.Card(mark+" "+title, fields...)
}

// Warnings renders each warning on its own line, or "" for none.
func (r *Renderer) Warnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	style := r.theme.Style(r.theme.Colors.Warning)
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = style.Render("! ") + w
	}
	return strings.Join(lines, "\n")
}

// Error renders a failure as "Kind: message".
func (r *Renderer) Error(kind, message string) string {
	head := r.theme.Style(r.theme.Colors.Error).Bold(!r.theme.NoColor).Render(kind + ":")
	return head + " " + message
}

// Fields renders label/value pairs with aligned values.
func (r *Renderer) Fields(fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Label))
	}
	label := r.theme.Style(r.theme.Colors.Muted)
	lines := make([]string, len(fields))
	for i, f := range fields {
		pad := strings.Repeat(" ", width-lipgloss.Width(f.Label))
		lines[i] = label.Render(f.Label+":") + pad + " " + f.Value
	}
	return strings.Join(lines, "\n")
}

// Tree renders slash-separated relative paths as an indented listing.
// Paths must be in pre-order, parents before children.
func (r *Renderer) Tree(root string, paths []string) string {
	var b strings.Builder
	b.WriteString(r.theme.Style(r.theme.Colors.Secondary).Render(root + "/"))
	dir := r.theme.Style(r.theme.Colors.Text)
	for _, p := range paths {
		depth := strings.Count(p, "/")
		name := p[strings.LastIndex(p, "/")+1:]
		b.WriteString("\n")
		b.WriteString(strings.Repeat("  ", depth+1))
		b.WriteString(dir.Render(name))
	}
	return b.String()
}
