// Package settings provides build metadata and runtime parameters shared
// by the gridcol CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "gridcol"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the CLI:
// logging verbosity and error handling behavior.
type Run struct {
	MinLogLevel int8
	IsQuiet     bool
	ExitOnError bool
}

// NewCliParams returns a Run with default CLI parameters: info-level
// logging, output enabled, and exit on error.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		ExitOnError: true,
	}
}
