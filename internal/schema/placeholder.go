package schema

import "strings"

// Placeholder tokens substituted into root and seed-file patterns.
const (
	PlaceholderProjectCode = "{project_code}"
	PlaceholderAssetID     = "{asset_id}"
	PlaceholderShotID      = "{shot_id}"
)

// Values supplies the substitutions for Expand. Empty fields leave their
// placeholder untouched.
type Values struct {
	ProjectCode string
	AssetID     string
	ShotID      string
}

// Expand replaces the placeholders in pattern.
func Expand(pattern string, v Values) string {
	var pairs []string
	if v.ProjectCode != "" {
		pairs = append(pairs, PlaceholderProjectCode, v.ProjectCode)
	}
	if v.AssetID != "" {
		pairs = append(pairs, PlaceholderAssetID, v.AssetID)
	}
	if v.ShotID != "" {
		pairs = append(pairs, PlaceholderShotID, v.ShotID)
	}
	if len(pairs) == 0 {
		return pattern
	}
	return strings.NewReplacer(pairs...).Replace(pattern)
}
