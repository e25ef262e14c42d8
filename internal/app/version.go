package app

import "fmt"

// Version, Commit and BuildTime are stamped with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/account-service/internal/app.Version=1.4.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported in startup logs and by /health.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
