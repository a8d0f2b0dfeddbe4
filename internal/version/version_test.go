package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFunctions(t *testing.T) {
	origVersion := Version
	origBuildDate := BuildDate
	origCommit := Commit
	defer func() {
		Version = origVersion
		BuildDate = origBuildDate
		Commit = origCommit
	}()

	tests := []struct {
		name          string
		version       string
		buildDate     string
		commit        string
		wantFull      string
		wantUserAgent string
	}{
		{
			name:          "Default dev version",
			version:       "dev",
			buildDate:     "unknown",
			commit:        "unknown",
			wantFull:      "httpcommon dev (commit: unknown, built: unknown)",
			wantUserAgent: "httpcommon/dev",
		},
		{
			name:          "Release version",
			version:       "v1.0.0",
			buildDate:     "2026-10-16",
			commit:        "abcdef123",
			wantFull:      "httpcommon v1.0.0 (commit: abcdef123, built: 2026-10-16)",
			wantUserAgent: "httpcommon/v1.0.0",
		},
		{
			name:          "Empty values",
			version:       "",
			buildDate:     "",
			commit:        "",
			wantFull:      "httpcommon  (commit: , built: )",
			wantUserAgent: "httpcommon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			BuildDate = tt.buildDate
			Commit = tt.commit

			assert.Equal(t, tt.wantFull, GetVersion())
			assert.Equal(t, tt.wantUserAgent, UserAgent())
		})
	}
}
