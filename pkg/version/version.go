// Package version reports build information for the blox binary
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Version is the semantic version (set at build time via ldflags)
	Version = "dev"
	// Commit is the git commit hash (set at build time via ldflags)
	Commit = "unknown"
	// BuildTime is the build timestamp (set at build time via ldflags)
	BuildTime = "unknown"
	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("Blox CLI\n  Version:    %s\n  Commit:     %s\n  Build Time: %s\n  Go Version: %s\n  Platform:   %s",
		i.Version, i.Commit, i.BuildTime, i.GoVersion, i.Platform)
}

// UserAgent is the User-Agent header sent with API requests,
// e.g. "blox/1.2.0 (linux/amd64)"
func (i Info) UserAgent() string {
	v := strings.TrimPrefix(i.Version, "v")
	if v == "" {
		v = "dev"
	}
	return fmt.Sprintf("blox/%s (%s)", v, i.Platform)
}
