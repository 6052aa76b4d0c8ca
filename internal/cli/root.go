package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/pkg/version"
)

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "scaffolder",
		Short: "Create and maintain Blender studio project trees",
		Long: `scaffolder lays out studio projects on disk: the project tree, asset and
shot subtrees with seed work files, project metadata, and the naming
convention every work file follows.

A project root is a folder holding 01_assets or 02_shots. Commands that
take --root fall back to the remembered project; detect-root --hint finds
and remembers one by walking up from a path.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			d, err := InitDependencies(Options{
				ConfigPath: configPath,
				Verbose:    verbose,
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			deps = d
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if deps == nil {
				return nil
			}
			if err := deps.SaveState(); err != nil {
				deps.Logger.Warn("could not remember project root", "error", err)
			}
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("scaffolder %s\n", version.GetFullVersion()))

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $SCAFFOLDER_CONFIG or the user config dir)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newInitProjectCmd(),
		newNewAssetCmd(),
		newNewShotCmd(),
		newChangeAssetKindCmd(),
		newValidateNameCmd(),
		newMakeNameCmd(),
		newDetectRootCmd(),
		newInfoCmd(),
		newIdentityCmd(),
		newLsCmd(),
		newReadmeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and prints any failure as "Kind: message".
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	kind := ErrorKind(err)
	if deps != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), deps.Cards.Error(kind, err.Error()))
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", kind, err)
}
