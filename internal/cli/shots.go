package cli

import (
	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
)

func newNewShotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new-shot",
		Short: "Create one or more shot subtrees",
		Long: `Create 02_shots/<seq>/<shot>/ with the shot stage folders and a layout
seed file. Bare numbers are padded and prefixed, so --seq 10 --shot 20
creates seq_010/sh_0020. --shot may be repeated or comma separated to
create several shots of one sequence; creation stops at the first failure.

Examples:
  scaffolder new-shot --seq 10 --shot 10
  scaffolder new-shot --seq 10 --shot 10,20,30`,
		Args: cobra.NoArgs,
		RunE: runNewShot,
	}
	f := cmd.Flags()
	f.String("root", "", "Project root (default: detected)")
	f.String("seq", "", "Sequence id")
	f.StringSlice("shot", nil, "Shot id; repeatable")
	f.String("from-file", "", "Document saved as the first work file of each shot")
	_ = cmd.MarkFlagRequired("seq")
	_ = cmd.MarkFlagRequired("shot")
	return cmd
}

func runNewShot(cmd *cobra.Command, _ []string) error {
	shots, err := cmd.Flags().GetStringSlice("shot")
	if err != nil {
		return err
	}
	if len(shots) == 0 {
		return project.ErrUnknownSeqOrShot
	}
	root, seq := flagOrDefault(cmd, "root", ""), flagOrDefault(cmd, "seq", "")
	svc := deps.Service(documentHost(cmd, "from-file"))

	results := make([]*project.Result, 0, len(shots))
	bar := deps.Progress.Start("Creating shots", len(shots))
	for _, shot := range shots {
		bar.SetTitle(shot)
		res, err := svc.AddShot(root, seq, shot)
		if err != nil {
			bar.Done()
			return err
		}
		results = append(results, res)
		bar.Increment(1)
	}
	bar.Done()

	for _, res := range results {
		printResult(cmd, "Shot created", res, ui.Field{Label: "Sequence", Value: seq})
	}
	return nil
}
