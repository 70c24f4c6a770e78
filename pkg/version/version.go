package version

import "fmt"

// Build-time variables injected via -ldflags.
// Default version for local/dev builds (overridden by -ldflags in releases)
var (
	Version = "v0.3.0"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
