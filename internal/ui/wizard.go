package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// InitAnswers holds what init-project needs to know.
type InitAnswers struct {
	BasePath   string
	Code       string
	Type       models.ProjectType
	AuthorName string
	Studio     string
}

type wizardImpl struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewWizard creates a Wizard.
func NewWizard(theme *Theme, hm *HeadlessManager) Wizard {
	return &wizardImpl{theme: theme, headless: hm}
}

// Run implements Wizard.
func (w *wizardImpl) Run(ctx context.Context, defaults InitAnswers) (*InitAnswers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.headless.IsHeadless() {
		return runHeadless(defaults)
	}
	return w.runInteractive(ctx, defaults)
}

func runHeadless(defaults InitAnswers) (*InitAnswers, error) {
	if strings.TrimSpace(defaults.Code) == "" {
		return nil, ErrHeadlessNoDefaults
	}
	if defaults.Type == "" {
		defaults.Type = models.ProjectTypeShortFilm
	}
	return &defaults, nil
}

func (w *wizardImpl) runInteractive(ctx context.Context, defaults InitAnswers) (*InitAnswers, error) {
	ans := defaults
	if ans.Type == "" {
		ans.Type = models.ProjectTypeShortFilm
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project code").
				Description("Becomes the project folder name.").
				Placeholder("my_film").
				Value(&ans.Code).
				Validate(requireText("project code")),
			huh.NewSelect[models.ProjectType]().
				Title("Project type").
				Options(projectTypeOptions()...).
				Value(&ans.Type),
			huh.NewInput().
				Title("Base folder").
				Description("The project folder is created inside it.").
				Value(&ans.BasePath).
				Validate(requireText("base folder")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Author").
				Description("Optional. Stored in project.json.").
				Value(&ans.AuthorName),
			huh.NewInput().
				Title("Studio").
				Description("Optional.").
				Value(&ans.Studio),
		),
	).WithTheme(w.formTheme()).WithAccessible(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("init form: %w", err)
	}
	ans.Code = strings.TrimSpace(ans.Code)
	ans.BasePath = strings.TrimSpace(ans.BasePath)
	return &ans, nil
}

func requireText(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func projectTypeOptions() []huh.Option[models.ProjectType] {
	types := models.ValidProjectTypes()
	opts := make([]huh.Option[models.ProjectType], len(types))
	for i, t := range types {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", TitleCase(string(t)), t.Label()), t)
	}
	return opts
}

// formTheme maps the palette onto huh's base theme.
func (w *wizardImpl) formTheme() *huh.Theme {
	t := huh.ThemeBase()
	if w.theme == nil || w.theme.NoColor {
		return t
	}
	c := w.theme.Colors
	primary := lipgloss.Color(c.Primary)
	muted := lipgloss.Color(c.Muted)
	red := lipgloss.Color(c.Error)

	t.Focused.Base = t.Focused.Base.BorderForeground(lipgloss.Color(c.Border))
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color(c.Success))
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(lipgloss.Color(c.Secondary))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)
	return t
}

// TitleCase turns an identifier such as "short_film" into "Short Film".
func TitleCase(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}
