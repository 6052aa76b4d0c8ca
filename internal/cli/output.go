package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
)

// writeLine writes one block of output followed by a newline.
func writeLine(cmd *cobra.Command, s string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
}

// printResult renders a create or move outcome. Dir is always the first
// line printed in plain text so scripts can capture it with head -1.
func printResult(cmd *cobra.Command, title string, res *project.Result, fields ...ui.Field) {
	writeLine(cmd, res.Dir)

	fields = append(fields,
		ui.Field{Label: "Directories", Value: fmt.Sprintf("%d created", len(res.CreatedDirs))},
		ui.Field{Label: "Files", Value: fmt.Sprintf("%d created", len(res.CreatedFiles))},
	)
	for _, seed := range res.SeedFiles {
		rel, err := filepath.Rel(res.Dir, seed)
		if err != nil {
			rel = seed
		}
		fields = append(fields, ui.Field{Label: "Seed", Value: filepath.ToSlash(rel)})
	}
	writeLine(cmd, deps.Cards.Success(title, fields...))

	if len(res.CreatedDirs) > 0 {
		writeLine(cmd, deps.Cards.Tree(filepath.Base(res.Dir), res.CreatedDirs))
	}
	if w := deps.Cards.Warnings(res.Warnings); w != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), w)
	}
}

// flagOrDefault returns the flag value, or def when the flag was not set.
func flagOrDefault(cmd *cobra.Command, name, def string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil || strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
