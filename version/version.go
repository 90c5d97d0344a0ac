// Package version reports build metadata for the --version flag.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// devVersion is reported when no version was set at link time.
const devVersion = "dev"

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision embedded by the Go toolchain.
	Revision = revision(readSettings())
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// Platform is the OS/architecture target.
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// String returns a one-line summary of the build, such as
// "v1.2.0 (rev abc123, go1.25.0 linux/amd64)".
func String() string {
	v := Version
	if v == "" {
		v = devVersion
	}

	s := fmt.Sprintf("%s (rev %s, %s %s", v, Revision, GoVersion, Platform)
	if BuildDate != "" {
		s += ", built " + BuildDate
	}

	return s + ")"
}

func readSettings() []debug.BuildSetting {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	return info.Settings
}

// revision extracts the VCS revision from build settings, marking modified
// trees with a "-dirty" suffix.
func revision(settings []debug.BuildSetting) string {
	rev := "unknown"
	modified := false

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
