package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress that draws on w, or on os.Stderr when w
// is nil so that command output on stdout stays clean.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stderr
	}
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Start creates a progress bar. Without a terminal each step is a line.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.plain() {
		return newHeadlessProgressBar(title, total, p.writer)
	}
	return newInteractiveProgressBar(p.theme, title, total, p.writer)
}

// Spinner creates a spinner. Without a terminal the title is printed once
// per change.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.plain() {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

func (p *progressImpl) plain() bool {
	return p.headless.IsHeadless() || p.theme == nil || p.theme.NoColor
}

// programOptions keeps animated indicators off stdin so that a running
// spinner never swallows keystrokes meant for a prompt.
func programOptions(w io.Writer) []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(w)}
}

type (
	spinnerTitleMsg string
	spinnerStopMsg  struct{}
)

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = theme.Style(theme.Colors.Primary)
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// liveProgram runs one animated indicator until finish is called.
type liveProgram struct {
	program *tea.Program
	once    sync.Once
}

// @MX:WARN: finish must be called; the program goroutine runs until it is.
func startLive(m tea.Model, w io.Writer) *liveProgram {
	p := tea.NewProgram(m, programOptions(w)...)
	go func() {
		_, _ = p.Run()
	}()
	return &liveProgram{program: p}
}

// finish delivers the final message once and waits for the program to exit.
func (l *liveProgram) finish(msg tea.Msg) {
	l.once.Do(func() {
		l.program.Send(msg)
		l.program.Wait()
	})
}

type interactiveSpinner struct {
	*liveProgram
}

func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	return &interactiveSpinner{startLive(newSpinnerModel(theme, title), w)}
}

func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *interactiveSpinner) Stop() {
	s.finish(spinnerStopMsg{})
}

type (
	progressIncrMsg  int
	progressTitleMsg string
	progressDoneMsg  struct{}
)

// progressModel draws a step counter next to the bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Secondary, theme.Colors.Primary),
		progress.WithWidth(32),
		progress.WithoutPercentage(),
	)
	return progressModel{bar: bar, title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return fmt.Sprintf("%s %d/%d %s\n", m.bar.ViewAs(pct), m.current, m.total, m.title)
}

type interactiveProgressBar struct {
	*liveProgram
}

func newInteractiveProgressBar(theme *Theme, title string, total int, w io.Writer) *interactiveProgressBar {
	return &interactiveProgressBar{startLive(newProgressModel(theme, title, total), w)}
}

func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

// Done fills the bar and waits for the program to exit.
func (b *interactiveProgressBar) Done() {
	b.finish(progressDoneMsg{})
}

type headlessProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func newHeadlessProgressBar(title string, total int, w io.Writer) *headlessProgressBar {
	return &headlessProgressBar{title: title, total: total, writer: w}
}

// Increment advances by n and prints the step.
func (b *headlessProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	b.print()
}

// SetTitle sets the label printed with the next step.
func (b *headlessProgressBar) SetTitle(title string) {
	b.title = title
}

// Done prints the final step once.
func (b *headlessProgressBar) Done() {
	if b.current == b.total {
		return
	}
	b.current = b.total
	b.print()
}

func (b *headlessProgressBar) print() {
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

type headlessSpinner struct {
	title   string
	writer  io.Writer
	stopped bool
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	_, _ = fmt.Fprintf(w, "%s...\n", title)
	return &headlessSpinner{title: title, writer: w}
}

// SetTitle prints the new title unless the spinner has stopped.
func (s *headlessSpinner) SetTitle(title string) {
	if s.stopped || title == s.title {
		return
	}
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s...\n", title)
}

// Stop halts the spinner.
func (s *headlessSpinner) Stop() {
	s.stopped = true
}
