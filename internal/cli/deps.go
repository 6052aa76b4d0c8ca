// Package cli provides the cobra command tree of the scaffolder and the
// composition root that wires configuration, logging and the studio
// services together.
package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/studio-scaffolder/scaffolder/internal/config"
	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/logging"
	"github.com/studio-scaffolder/scaffolder/internal/metadata"
	"github.com/studio-scaffolder/scaffolder/internal/schema"
	"github.com/studio-scaffolder/scaffolder/internal/studio"
	"github.com/studio-scaffolder/scaffolder/internal/template"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// Dependencies holds everything commands use. It is the only place where
// concrete services are constructed.
type Dependencies struct {
	Config    *config.Manager
	StatePath string
	Logger    *slog.Logger
	Registry  *schema.Registry
	Store     *metadata.Store
	Generator *project.Generator
	Session   *project.Session
	Theme     *ui.Theme
	Headless  *ui.HeadlessManager
	Cards     *ui.Renderer
	Progress  ui.Progress
	Wizard    ui.Wizard

	state config.State
}

// Options configures InitDependencies.
type Options struct {
	ConfigPath string // Empty means config.DefaultPath.
	Verbose    bool
	Stderr     io.Writer // Log and progress output; os.Stderr when nil.
}

// deps is set by the root command before any subcommand runs.
var deps *Dependencies

// @MX:ANCHOR: composition root; every command reaches the services through the value built here.
// InitDependencies loads configuration and session state and wires the
// services.
func InitDependencies(opts Options) (*Dependencies, error) {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	mgr := config.NewManager()
	cfg, err := mgr.Load(path)
	if err != nil {
		return nil, err
	}

	level := cfg.System.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.NewLogger(level, cfg.System.LogFormat, opts.Stderr)

	registry, err := schema.Default()
	if err != nil {
		return nil, err
	}
	store := metadata.NewStore(logging.WithComponent(logger, "metadata"))
	baseline := newBaseline(cfg.Baseline)
	logger.Debug("baseline writer selected", "command", cfg.Baseline.Command)
	generator := project.NewGenerator(registry, store, template.NewRenderer(nil), baseline,
		logging.WithComponent(logger, "generator"))

	statePath := config.StatePath(path)
	st, err := config.LoadState(statePath)
	if err != nil {
		logger.Warn("ignoring unreadable session state", "path", logging.SanitizePath(statePath), "error", err)
		st = config.State{}
	}

	noColor := cfg.System.NoColor || os.Getenv("NO_COLOR") != ""
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: noColor})
	headless := ui.NewHeadlessManager()
	if cfg.System.NonInteractive {
		headless.ForceHeadless(true)
	}

	return &Dependencies{
		Config:    mgr,
		StatePath: statePath,
		Logger:    logger,
		Registry:  registry,
		Store:     store,
		Generator: generator,
		Session:   project.NewSession(st.Root, models.ProjectType(st.ProjectType)),
		Theme:     theme,
		Headless:  headless,
		Cards:     ui.NewRenderer(theme),
		Progress:  ui.NewProgress(theme, headless, opts.Stderr),
		Wizard:    ui.NewWizard(theme, headless),
		state:     st,
	}, nil
}

func newBaseline(c config.BaselineConfig) project.BaselineWriter {
	if c.Command == "" {
		return project.PlaceholderBaseline{}
	}
	return project.ExecBaseline{
		Command: c.Command,
		Args:    c.Args,
		Timeout: time.Duration(c.TimeoutSeconds) * time.Second,
	}
}

// Service returns a studio service bound to host, which may be nil.
func (d *Dependencies) Service(host studio.Host) *studio.Service {
	return studio.NewService(d.Generator, d.Store, d.Session, host, logging.WithComponent(d.Logger, "studio"))
}

// SaveState persists the remembered root when it changed during the run.
func (d *Dependencies) SaveState() error {
	st := config.State{Root: d.Session.Root(), ProjectType: string(d.Session.ProjectType())}
	if st == d.state {
		return nil
	}
	if err := config.SaveState(d.StatePath, st); err != nil {
		return err
	}
	d.state = st
	return nil
}
