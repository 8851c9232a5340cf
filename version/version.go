// Package version provides build version information shared by the findpath
// binaries, and a reusable version command.
package version

import "fmt"

// Build metadata, set via ldflags:
//
//	-X github.com/jongio/findpath/version.Version=1.2.0
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// DefaultAuthor is credited in the logo.
const DefaultAuthor = "Atif Aziz"

// Info holds version information for a binary.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	Name      string `json:"name"`
	Author    string `json:"author"`
}

// New creates an Info for the named binary from the build metadata.
func New(name string) *Info {
	return &Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		Name:      name,
		Author:    DefaultAuthor,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
