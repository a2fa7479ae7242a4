// Package buildconfig exposes version metadata stamped at build time.
package buildconfig

// Injected via -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version string.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}

// VersionInfo returns version metadata for health reporting.
func VersionInfo() map[string]string {
	return map[string]string{
		"version": version,
		"commit":  commit,
	}
}
