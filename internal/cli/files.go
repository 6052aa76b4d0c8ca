package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/internal/template"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
)

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List a folder inside a project",
		Long: `List the entries of a folder given relative to the project root, sorted
by name. Paths leading outside the root are refused.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLs,
	}
	cmd.Flags().String("root", "", "Project root (default: detected)")
	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
	rel := "."
	if len(args) == 1 {
		rel = args[0]
	}
	entries, err := deps.Service(nil).ListFiles(flagOrDefault(cmd, "root", ""), rel)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		writeLine(cmd, "(empty)")
		return nil
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers("NAME", "SIZE", "MODIFIED")
	for _, e := range entries {
		name, size := e.Name, humanize.IBytes(uint64(e.Size))
		if e.IsDir {
			name, size = name+"/", "-"
		}
		t.Row(name, size, humanize.Time(e.ModTime))
	}
	writeLine(cmd, t.Render())
	return nil
}

func newReadmeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Show the project structure README",
		Long: `Render the generated structure README of a project. Its front matter is
shown as a summary card; --raw prints the file unchanged.`,
		Args: cobra.NoArgs,
		RunE: runReadme,
	}
	cmd.Flags().String("root", "", "Project root (default: detected)")
	cmd.Flags().Bool("raw", false, "Print the file without rendering")
	cmd.Flags().Int("width", ui.DefaultWrap, "Wrap width")
	return cmd
}

func runReadme(cmd *cobra.Command, _ []string) error {
	info, err := deps.Service(nil).ProjectInfo(flagOrDefault(cmd, "root", ""))
	if err != nil {
		return err
	}
	p := filepath.Join(info.Root, filepath.FromSlash(defs.ReadmeRelPath))
	doc, err := os.ReadFile(p)
	if err != nil {
		return &project.IOError{Op: "read", Path: p, Err: err}
	}
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		_, err := cmd.OutOrStdout().Write(doc)
		return err
	}

	fm, body, err := template.SplitReadme(doc)
	switch {
	case errors.Is(err, template.ErrNoFrontMatter):
		deps.Logger.Debug("readme has no front matter", "path", p)
	case err != nil:
		return err
	default:
		fields := []ui.Field{
			{Label: "Code", Value: fm.ProjectCode},
			{Label: "Type", Value: fm.ProjectType},
			{Label: "Created", Value: fm.CreatedAt},
		}
		if fm.Author != "" {
			fields = append(fields, ui.Field{Label: "Author", Value: fm.Author})
		}
		writeLine(cmd, deps.Cards.Card(ui.TitleCase(fm.ProjectType)+" project", fields...))
	}

	width, _ := cmd.Flags().GetInt("width")
	out, err := deps.Theme.RenderMarkdown(string(body), width)
	if err != nil {
		return err
	}
	writeLine(cmd, out)
	return nil
}
