package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
)

// idPattern is the alphabet of generated subjects.
var idPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// GenerateAssetFilename formats an asset work file name. task may be empty.
// The same task checks as ValidateAsset run first, so the result always validates.
func GenerateAssetFilename(assetID, task string, version int) (string, error) {
	if assetID == "" {
		return "", ErrMissingSubject
	}
	if !idPattern.MatchString(assetID) {
		return "", fmt.Errorf("%w: asset id %q", ErrInvalidFilenameFormat, assetID)
	}
	if err := checkAssetTask(assetID, task); err != nil {
		return "", err
	}
	if version < 1 {
		return "", fmt.Errorf("%w: version %d is not positive", ErrInvalidFilenameFormat, version)
	}

	name := fmt.Sprintf("%s_%s_v%03d%s", assetID, task, version, defs.DocumentExt)
	if task == "" {
		name = fmt.Sprintf("%s_v%03d%s", assetID, version, defs.DocumentExt)
	}
	// An id such as big_hero_boy without a task would parse back as task "boy".
	if _, err := ValidateAsset(name); err != nil {
		return "", fmt.Errorf("%w: %q does not validate as an asset name: %v", ErrInvalidFilenameFormat, name, err)
	}
	return name, nil
}

// GenerateShotFilename formats a shot work file name. The shot id is compacted
// (underscores removed) so the "shot" scope stays unambiguous when parsed.
func GenerateShotFilename(shotID, task string, version int) (string, error) {
	subject := CompactID(shotID)
	if subject == "" || !idPattern.MatchString(subject) {
		return "", fmt.Errorf("%w: shot id %q", ErrInvalidFilenameFormat, shotID)
	}
	if err := checkShotTask(task); err != nil {
		return "", err
	}
	if version < 1 {
		return "", fmt.Errorf("%w: version %d is not positive", ErrInvalidFilenameFormat, version)
	}
	return fmt.Sprintf("%s_%s_%s_v%03d%s", ShotScope, subject, task, version, defs.DocumentExt), nil
}

// CompactID removes underscores: "seq_010" + "sh_0010" compact to "seq010sh0010".
func CompactID(parts ...string) string {
	return strings.ReplaceAll(strings.Join(parts, ""), "_", "")
}
