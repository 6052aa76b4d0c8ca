// Package version reports the build of the scaffolder binary.
package version

import "fmt"

// Set with -ldflags "-X github.com/studio-scaffolder/scaffolder/pkg/version.Version=...".
var (
	Version = "v0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
