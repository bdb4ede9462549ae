package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/aalvaropc/zoneinfo/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("zoneinfo %s (commit=%s, date=%s)", Version, Commit, Date)
}
