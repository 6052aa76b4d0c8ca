package naming

import (
	"fmt"
	"strings"

	"github.com/studio-scaffolder/scaffolder/internal/defs"
	"github.com/studio-scaffolder/scaffolder/pkg/models"
)

// ValidateAsset parses filename and applies the asset-domain rules.
// The scope segment is ignored for assets.
func ValidateAsset(filename string) (Components, error) {
	c, err := Parse(filename)
	if err != nil {
		return Components{}, err
	}
	if err := checkAssetTask(c.Subject, c.Task); err != nil {
		return c, err
	}
	return c, nil
}

// ValidateShot parses filename and applies the shot-domain rules.
func ValidateShot(filename string) (Components, error) {
	c, err := Parse(filename)
	if err != nil {
		return Components{}, err
	}
	if c.Scope != ShotScope {
		return c, fmt.Errorf("%w: got scope %q in %s", ErrInvalidShotScope, c.Scope, filename)
	}
	if err := checkShotTask(c.Task); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks filename in the given domain. When domain is DomainNone it
// is inferred from path; an empty or unclassified path yields ErrIndeterminateDomain.
func Validate(filename string, domain models.Domain, path string) (Components, error) {
	if domain == models.DomainNone {
		domain = DomainFromPath(path)
	}

	switch domain {
	case models.DomainAsset:
		return ValidateAsset(filename)
	case models.DomainShot:
		return ValidateShot(filename)
	case models.DomainNone:
		return Components{}, fmt.Errorf("%w: supply a domain or a path under %s/ or %s/",
			ErrIndeterminateDomain, defs.AssetsDir, defs.ShotsDir)
	default:
		return Components{}, fmt.Errorf("%w: %q", ErrIndeterminateDomain, domain)
	}
}

// DomainFromPath infers the naming domain from the directories in path.
// Both slash styles are accepted.
func DomainFromPath(path string) models.Domain {
	p := "/" + strings.ReplaceAll(path, "\\", "/")
	switch {
	case strings.Contains(p, "/"+defs.AssetsDir+"/"):
		return models.DomainAsset
	case strings.Contains(p, "/"+defs.ShotsDir+"/"):
		return models.DomainShot
	default:
		return models.DomainNone
	}
}

// checkAssetTask enforces the asset rules. The forbidden check runs before the
// vocabulary check so shot stages get their own error.
func checkAssetTask(subject, task string) error {
	if subject == "" {
		return ErrMissingSubject
	}
	if task == "" {
		return nil
	}
	if IsForbiddenAssetTask(task) {
		return fmt.Errorf("%w: %q", ErrForbiddenAssetTask, task)
	}
	if !IsAssetTask(task) {
		return fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownAssetTask, task, taskNames(assetTasks))
	}
	return nil
}

func checkShotTask(task string) error {
	if task == "" {
		return fmt.Errorf("%w: expected shot_<id>_<task>_v###", ErrMissingShotTask)
	}
	if !IsShotTask(task) {
		return fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownShotTask, task, taskNames(shotTasks))
	}
	return nil
}
