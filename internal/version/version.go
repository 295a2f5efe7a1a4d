// Package version provides version information for the pybake CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// cueModule is the module path of the CUE SDK used for schema validation.
const cueModule = "cuelang.org/go"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// CUESDKVersion is the CUE SDK version read from the build info.
	CUESDKVersion string `json:"cueSDKVersion"`

	// Templates lists the embedded template names.
	Templates []string `json:"templates,omitempty"`
}

// Get returns the current version information.
func Get(templates ...string) Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: depVersion(cueModule),
		Templates:     templates,
	}
}

// depVersion returns the version of a linked module, or "unknown".
func depVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pybake:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
	fmt.Fprintf(&b, "\nCUE:\n  SDK Version: %s\n", i.CUESDKVersion)
	if len(i.Templates) > 0 {
		fmt.Fprintf(&b, "\nTemplates:\n  %s\n", strings.Join(i.Templates, ", "))
	}
	return b.String()
}
