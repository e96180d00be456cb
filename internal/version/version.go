package version

import "fmt"

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "dev"
	BuildDate = "dev"
)

// Info is the build metadata reported in serverInfo, --version and manifests.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

// Get returns build metadata with blank values reported as "dev".
func Get() Info {
	return Info{
		Version:   orDev(Version),
		Commit:    orDev(Commit),
		BuildDate: orDev(BuildDate),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.BuildDate)
}

func orDev(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}
