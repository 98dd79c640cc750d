// Package version holds the chlog build information. It is a separate
// package with no dependencies so any package can import it safely.
package version

var (
	// Set via ldflags during release builds.
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)
