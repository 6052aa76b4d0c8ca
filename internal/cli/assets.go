package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-scaffolder/scaffolder/internal/core/project"
	"github.com/studio-scaffolder/scaffolder/internal/studio"
	"github.com/studio-scaffolder/scaffolder/internal/ui"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

func newNewAssetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new-asset",
		Short: "Create an asset subtree",
		Long: `Create 01_assets/<kind>/<id>/ with the stage folders of the kind and a
seed work file. With --from-file the given document becomes the first work
file instead of an empty baseline.

Examples:
  scaffolder new-asset --kind char --id hero
  scaffolder new-asset --root ~/projects/my_film --kind prop --id crate --from-file crate.blend`,
		Args: cobra.NoArgs,
		RunE: runNewAsset,
	}
	f := cmd.Flags()
	f.String("root", "", "Project root (default: detected)")
	f.String("kind", "", "Asset kind: char, prop, env, veh, veg, fx or light")
	f.String("id", "", "Asset id")
	f.String("from-file", "", "Document saved as the first work file")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func runNewAsset(cmd *cobra.Command, _ []string) error {
	kind, err := parseKind(flagOrDefault(cmd, "kind", ""))
	if err != nil {
		return err
	}
	svc := deps.Service(documentHost(cmd, "from-file"))

	res, err := svc.AddAsset(flagOrDefault(cmd, "root", ""), kind, flagOrDefault(cmd, "id", ""))
	if err != nil {
		return err
	}
	printResult(cmd, "Asset created", res, ui.Field{Label: "Kind", Value: fmt.Sprintf("%s (%s)", kind, kind.Label())})
	return nil
}

func newChangeAssetKindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change-asset-kind",
		Short: "Move an asset to another kind",
		Long: `Move 01_assets/<from>/<id>/ to 01_assets/<to>/<id>/ with everything in it.

With --file the asset is found from a document inside it and --from and
--id are not needed; the document's new path is printed.

Examples:
  scaffolder change-asset-kind --from prop --to char --id robot
  scaffolder change-asset-kind --file 01_assets/prop/robot/work/robot_model_v003.blend --to char`,
		Args: cobra.NoArgs,
		RunE: runChangeAssetKind,
	}
	f := cmd.Flags()
	f.String("root", "", "Project root (default: detected)")
	f.String("from", "", "Current asset kind")
	f.String("to", "", "New asset kind")
	f.String("id", "", "Asset id")
	f.String("file", "", "Document inside the asset; replaces --from and --id")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runChangeAssetKind(cmd *cobra.Command, _ []string) error {
	to, err := parseKind(flagOrDefault(cmd, "to", ""))
	if err != nil {
		return err
	}

	if host := documentHost(cmd, "file"); host != nil {
		r, err := deps.Service(host).ReclassifyCurrent(to)
		if err != nil {
			return err
		}
		writeLine(cmd, r.NewPath)
		writeLine(cmd, deps.Cards.Success("Asset moved",
			ui.Field{Label: "Asset", Value: r.ID},
			ui.Field{Label: "Kind", Value: fmt.Sprintf("%s → %s", r.From, r.To)},
			ui.Field{Label: "Directory", Value: r.Dir},
			ui.Field{Label: "Document", Value: r.NewPath},
		))
		return nil
	}

	fromArg, id := flagOrDefault(cmd, "from", ""), flagOrDefault(cmd, "id", "")
	if fromArg == "" || id == "" {
		return newUsageError("--from and --id are required unless --file is given")
	}
	from, err := parseKind(fromArg)
	if err != nil {
		return err
	}
	dir, err := deps.Service(nil).ChangeAssetKind(flagOrDefault(cmd, "root", ""), from, to, id)
	if err != nil {
		return err
	}
	writeLine(cmd, dir)
	writeLine(cmd, deps.Cards.Success("Asset moved",
		ui.Field{Label: "Asset", Value: id},
		ui.Field{Label: "Kind", Value: fmt.Sprintf("%s → %s", from, to)},
	))
	return nil
}

func parseKind(s string) (models.AssetKind, error) {
	k, err := models.ParseAssetKind(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", project.ErrUnknownAssetKind, s)
	}
	return k, nil
}

// documentHost returns a host for the document named by flag, or nil.
func documentHost(cmd *cobra.Command, flag string) studio.Host {
	p := flagOrDefault(cmd, flag, "")
	if p == "" {
		return nil
	}
	return &fileHost{path: p}
}
