// Package version exposes build metadata stamped into the binary.
package version

import (
	"fmt"
	"runtime"
)

// Injected at build time via -ldflags. An untagged local build keeps
// the "dev" defaults.
var (
	// Version is the release tag, or "dev" for untagged builds.
	Version = "dev"

	// CommitHash identifies the commit the binary was built from.
	CommitHash = "dev"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Info bundles the stamped metadata together with the toolchain and
// platform captured at runtime.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get assembles the Info for the running binary.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders a one-line description suitable for terminal output.
func (i Info) String() string {
	release := i.Version
	if release == "dev" {
		release = "dev-" + i.Short()
	}
	return fmt.Sprintf("whence %s (commit %s, built %s)", release, i.CommitHash, i.BuildTime)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
