// Package version reports build information for nullfill.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build variables default to these values when not set with -ldflags.
const (
	DevVersion  = "dev"
	NoCommit    = "none"
	UnknownDate = "unknown"
)

// Info contains version information about nullfill.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	GoVer   string `json:"go_version" yaml:"go_version"`
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
}

// NewInfo creates a new Info from the build variables. Values left at
// their defaults are filled from the module build info when available,
// which covers binaries installed with go install.
func NewInfo(version, commit, date string) *Info {
	info := &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.merge(bi)
	}
	return info
}

func (i *Info) merge(bi *debug.BuildInfo) {
	if (i.Version == "" || i.Version == DevVersion) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "" || i.Commit == NoCommit {
				i.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if i.Date == "" || i.Date == UnknownDate {
				i.Date = s.Value
			}
		}
	}
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("nullfill %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`nullfill %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}
