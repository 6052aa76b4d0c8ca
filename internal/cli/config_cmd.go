package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/config"
	"github.com/studio-scaffolder/scaffolder/internal/logging"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
	"github.com/studio-scaffolder/scaffolder/pkg/version"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := config.Marshal(deps.Config.Get())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				state := "missing"
				if deps.Config.Exists() {
					state = "present"
				}
				writeLine(cmd, deps.Config.Path()+"\t"+state)
				return nil
			},
		},
		newConfigInitCmd(),
	)
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the configuration file",
		Long: `Write the current configuration, defaults included, so it can be edited.
An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if deps.Config.Exists() && !force {
				return newUsageError(fmt.Sprintf("%s already exists; use --force to overwrite", deps.Config.Path()))
			}
			if err := deps.Config.Save(); err != nil {
				return err
			}
			writeLine(cmd, deps.Cards.Success("Configuration written",
				ui.Field{Label: "Path", Value: logging.SanitizePath(deps.Config.Path())}))
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeLine(cmd, "scaffolder "+version.GetFullVersion())
			return nil
		},
	}
}
