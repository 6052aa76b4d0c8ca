package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/config"
	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/metadata"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

func newDetectRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect-root",
		Short: "Find the project root above a path",
		Long: `Print the project root containing --hint (default: the current directory)
and its classified type, separated by a tab. The remembered project is
checked first unless --fresh is given. Prints "not found" and exits
non-zero when no root is within reach.`,
		Args: cobra.NoArgs,
		RunE: runDetectRoot,
	}
	cmd.Flags().String("hint", "", "File or folder to start from (default: current directory)")
	cmd.Flags().Bool("fresh", false, "Ignore the remembered project root")
	return cmd
}

func runDetectRoot(cmd *cobra.Command, _ []string) error {
	hint := flagOrDefault(cmd, "hint", "")
	if hint == "" {
		wd, err := os.Getwd()
		if err != nil {
			return &project.IOError{Op: "getwd", Path: ".", Err: err}
		}
		hint = wd
	}
	fresh, _ := cmd.Flags().GetBool("fresh")

	info, err := deps.Service(nil).DetectRoot(hint, fresh)
	if err != nil {
		if errors.Is(err, project.ErrRootNotFound) {
			writeLine(cmd, "not found")
		}
		return err
	}
	writeLine(cmd, info.Root+"\t"+string(info.Type))
	return nil
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a project's type and metadata",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
	cmd.Flags().String("root", "", "Project root (default: detected)")
	return cmd
}

func runInfo(cmd *cobra.Command, _ []string) error {
	info, err := deps.Service(nil).ProjectInfo(flagOrDefault(cmd, "root", ""))
	if err != nil {
		return err
	}
	fields := []ui.Field{
		{Label: "Root", Value: info.Root},
		{Label: "Type", Value: fmt.Sprintf("%s (%s)", info.Type, info.Type.Label())},
		{Label: "Marker", Value: strconv.FormatBool(info.Marked)},
	}
	if m := info.Metadata; m != nil {
		fields = append(fields,
			ui.Field{Label: "Code", Value: m.Project.Code},
			ui.Field{Label: "Created", Value: m.Project.CreatedAt},
			ui.Field{Label: "Schema", Value: strconv.Itoa(m.Project.SchemaVersion)},
		)
		fields = append(fields, authorFields(m.Author)...)
	} else {
		fields = append(fields, ui.Field{Label: "Metadata", Value: "none"})
	}
	writeLine(cmd, deps.Cards.Card("Project", fields...))
	return nil
}

func newIdentityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Show or update the project identity in project.json",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the stored project identity",
		Args:  cobra.NoArgs,
		RunE:  runIdentityShow,
	}
	show.Flags().String("root", "", "Project root (default: detected)")

	set := &cobra.Command{
		Use:   "set",
		Short: "Merge values into the stored project identity",
		Long: `Merge the given values into project.json. Omitted flags keep their stored
values; created_at never changes. With --from-config the identity section
of the config file fills every flag left empty.`,
		Args: cobra.NoArgs,
		RunE: runIdentitySet,
	}
	f := set.Flags()
	f.String("root", "", "Project root (default: detected)")
	f.String("name", "", "Author name")
	f.String("studio", "", "Studio")
	f.String("role", "", "Role")
	f.String("contact", "", "Contact")
	f.String("copyright", "", "Copyright line")
	f.String("code", "", "Project code")
	f.String("type", "", "Project type")
	f.Bool("from-config", false, "Fill empty values from the config identity")

	cmd.AddCommand(show, set)
	return cmd
}

func runIdentityShow(cmd *cobra.Command, _ []string) error {
	m, err := deps.Service(nil).LoadIdentity(flagOrDefault(cmd, "root", ""))
	if err != nil {
		return err
	}
	if m == nil {
		writeLine(cmd, "no project metadata")
		return nil
	}
	fields := []ui.Field{
		{Label: "Code", Value: m.Project.Code},
		{Label: "Type", Value: m.Project.Type},
	}
	writeLine(cmd, deps.Cards.Card("Identity", append(fields, authorFields(m.Author)...)...))
	return nil
}

func runIdentitySet(cmd *cobra.Command, _ []string) error {
	var ident config.IdentityConfig
	if fromConfig, _ := cmd.Flags().GetBool("from-config"); fromConfig {
		ident = deps.Config.Get().Identity
	}

	fields := metadata.Fields{
		Code:       flagOrDefault(cmd, "code", ""),
		AuthorName: flagOrDefault(cmd, "name", ident.AuthorName),
		Studio:     flagOrDefault(cmd, "studio", ident.Studio),
		Role:       flagOrDefault(cmd, "role", ident.Role),
		Contact:    flagOrDefault(cmd, "contact", ident.Contact),
		Copyright:  flagOrDefault(cmd, "copyright", ident.Copyright),
	}
	if t := flagOrDefault(cmd, "type", ""); t != "" {
		pt, err := models.ParseProjectType(t)
		if err != nil {
			return fmt.Errorf("%w: %q", project.ErrUnknownProjectType, t)
		}
		fields.Type = pt
	}
	if fields.IsZero() {
		return newUsageError("nothing to set: pass at least one value or --from-config")
	}

	m, err := deps.Service(nil).SyncIdentity(flagOrDefault(cmd, "root", ""), fields)
	if err != nil {
		return err
	}
	writeLine(cmd, deps.Cards.Success("Identity updated", authorFields(m.Author)...))
	return nil
}

// authorFields lists the non-empty author values.
func authorFields(a metadata.Author) []ui.Field {
	var out []ui.Field
	for _, f := range []ui.Field{
		{Label: "Author", Value: a.Name},
		{Label: "Studio", Value: a.Studio},
		{Label: "Role", Value: a.Role},
		{Label: "Contact", Value: a.Contact},
		{Label: "Copyright", Value: a.Copyright},
	} {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}
