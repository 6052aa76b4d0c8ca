package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/internal/metadata"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

func newInitProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-project",
		Short: "Create a new project tree",
		Long: `Create a project folder named after the project code inside --base,
lay out the tree for the project type, and write the marker, project.json,
the structure README and the project settings.

Without --code on a terminal a short form asks for the missing values.
Empty --base and --type fall back to the defaults section of the config.

Examples:
  scaffolder init-project --code "My Film" --type short_film --base ~/projects
  scaffolder init-project --code lib --type asset_library`,
		Args: cobra.NoArgs,
		RunE: runInitProject,
	}
	f := cmd.Flags()
	f.String("base", "", "Folder the project is created in (default: config defaults.base_path)")
	f.String("code", "", "Project code; becomes the root folder name")
	f.String("type", "", "Project type: single_shot, short_film or asset_library (default: config defaults.project_type)")
	f.String("author", "", "Author name (default: config identity.author_name)")
	f.String("studio", "", "Studio name (default: config identity.studio)")
	return cmd
}

func runInitProject(cmd *cobra.Command, _ []string) error {
	cfg := deps.Config.Get()

	ans := ui.InitAnswers{
		BasePath:   flagOrDefault(cmd, "base", cfg.Defaults.BasePath),
		Code:       flagOrDefault(cmd, "code", ""),
		AuthorName: flagOrDefault(cmd, "author", cfg.Identity.AuthorName),
		Studio:     flagOrDefault(cmd, "studio", cfg.Identity.Studio),
	}
	typeArg := flagOrDefault(cmd, "type", cfg.Defaults.ProjectType)
	t, err := models.ParseProjectType(typeArg)
	if err != nil {
		return fmt.Errorf("%w: %q", project.ErrUnknownProjectType, typeArg)
	}
	ans.Type = t

	if ans.Code == "" && !deps.Headless.IsHeadless() {
		filled, err := deps.Wizard.Run(cmd.Context(), ans)
		if err != nil {
			return err
		}
		ans = *filled
	}

	opts := project.ProjectOptions{
		BasePath: ans.BasePath,
		Code:     ans.Code,
		Type:     ans.Type,
		Author: metadata.Author{
			Name:      ans.AuthorName,
			Studio:    ans.Studio,
			Role:      cfg.Identity.Role,
			Contact:   cfg.Identity.Contact,
			Copyright: cfg.Identity.Copyright,
		},
	}

	sp := deps.Progress.Spinner("Creating project")
	res, err := deps.Service(nil).InitProject(opts)
	sp.Stop()
	if err != nil {
		return err
	}

	printResult(cmd, "Project created", &res.Result,
		ui.Field{Label: "Code", Value: res.Code},
		ui.Field{Label: "Type", Value: fmt.Sprintf("%s (%s)", res.Type, res.Type.Label())},
		ui.Field{Label: "Metadata", Value: defs.MetadataFile},
	)
	return nil
}
