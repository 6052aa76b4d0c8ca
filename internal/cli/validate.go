package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/naming"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

func newValidateNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-name <filename>",
		Short: "Check a work file name against the naming convention",
		Long: `Check a file name in the asset or shot domain. Without --domain the
domain is taken from the path: files under 01_assets/ are asset files and
files under 02_shots/ are shot files.

Exits non-zero and names the violated rule when the name is invalid.

Examples:
  scaffolder validate-name --domain asset hero_model_v001.blend
  scaffolder validate-name 02_shots/seq_010/sh_0010/work/shot_seq010sh0010_anim_v012.blend`,
		Args: cobra.ExactArgs(1),
		RunE: runValidateName,
	}
	cmd.Flags().String("domain", "", "Naming domain: asset or shot (default: inferred from the path)")
	cmd.Flags().String("path", "", "Path used to infer the domain (default: the argument)")
	return cmd
}

func runValidateName(cmd *cobra.Command, args []string) error {
	domain, err := models.ParseDomain(flagOrDefault(cmd, "domain", ""))
	if err != nil {
		return newUsageError(err.Error())
	}
	arg := args[0]
	path := flagOrDefault(cmd, "path", arg)

	c, err := deps.Service(nil).ValidateName(filepath.Base(arg), domain, path)
	if err != nil {
		return err
	}

	fields := []ui.Field{}
	if c.HasTask() {
		fields = append(fields, ui.Field{Label: "Scope", Value: c.Scope})
	}
	fields = append(fields, ui.Field{Label: "Subject", Value: c.Subject})
	if c.HasTask() {
		fields = append(fields, ui.Field{Label: "Task", Value: c.Task})
	}
	fields = append(fields, ui.Field{Label: "Version", Value: strconv.Itoa(c.Version)})
	writeLine(cmd, deps.Cards.Success("valid", fields...))
	return nil
}

func newMakeNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-name",
		Short: "Print a conforming work file name",
		Long: `Build a work file name from its parts. Asset names take the asset id and
an optional task; shot names take the sequence and shot ids and a task.

Examples:
  scaffolder make-name --domain asset --id hero --task model --version 3
  scaffolder make-name --domain shot --seq seq_010 --shot sh_0010 --task anim`,
		Args: cobra.NoArgs,
		RunE: runMakeName,
	}
	f := cmd.Flags()
	f.String("domain", "", "Naming domain: asset or shot")
	f.String("id", "", "Asset id")
	f.String("seq", "", "Sequence id (shot domain)")
	f.String("shot", "", "Shot id (shot domain)")
	f.String("task", "", "Task")
	f.Int("version", 1, "Version number")
	_ = cmd.MarkFlagRequired("domain")
	return cmd
}

func runMakeName(cmd *cobra.Command, _ []string) error {
	domain, err := models.ParseDomain(flagOrDefault(cmd, "domain", ""))
	if err != nil || domain == models.DomainNone {
		return newUsageError("--domain must be asset or shot")
	}
	version, err := cmd.Flags().GetInt("version")
	if err != nil {
		return err
	}
	task := flagOrDefault(cmd, "task", "")

	var name string
	switch domain {
	case models.DomainAsset:
		name, err = naming.GenerateAssetFilename(flagOrDefault(cmd, "id", ""), task, version)
	case models.DomainShot:
		var seq, shot string
		if seq, err = project.NormalizeSequenceID(flagOrDefault(cmd, "seq", "")); err != nil {
			return err
		}
		if shot, err = project.NormalizeShotID(flagOrDefault(cmd, "shot", "")); err != nil {
			return err
		}
		name, err = naming.GenerateShotFilename(naming.CompactID(seq, shot), task, version)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
	return err
}
