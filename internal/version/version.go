package version

import "fmt"

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("httpcommon %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// UserAgent is the product token sent by the debug tool.
func UserAgent() string {
	if Version == "" {
		return "httpcommon"
	}
	return "httpcommon/" + Version
}
