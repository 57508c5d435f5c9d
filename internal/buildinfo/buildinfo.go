package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/daryltucker/syn/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("syn %s (commit=%s, date=%s)", Version, Commit, Date)
}
