// Package buildinfo carries version details injected at build time:
//
//	go build -ldflags "\
//	  -X github.com/retroviz/gamewatch/pkg/buildinfo.Version=$(git describe --tags) \
//	  -X github.com/retroviz/gamewatch/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/retroviz/gamewatch/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// String formats the build information for one-line display.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
