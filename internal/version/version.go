package version

import (
	"fmt"
	"runtime/debug"
)

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/reactspring/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/reactspring/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/reactspring/internal/version.Date={{.Date}}
)

// Info is the build information of the running binary
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the ldflags values. A binary built with go install has none,
// so the module version and VCS revision recorded by the toolchain are
// used instead.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && build.Main.Version != "" && build.Main.Version != "(devel)" {
		info.Version = build.Main.Version
	}
	for _, s := range build.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String formats the version block printed by the version command
func (i Info) String() string {
	return fmt.Sprintf("reactspring version %s\n  commit: %s\n  built:  %s\n", i.Version, i.Commit, i.Date)
}
