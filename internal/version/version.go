package version

import "fmt"

// Заполняются линкером при сборке:
//
//	go build -ldflags "-X vortex-server/internal/version.BuildDate=... ..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildDate string `json:"buildDate"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
}

// Info returns structured version information. Safe to call at any time.
func Info() VersionInfo {
	return VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}
}

// String returns a human-readable build string.
func String() string {
	info := Info()
	return fmt.Sprintf(
		"Build %s commit[%s] branch[%s]",
		coalesce(info.BuildDate, "dev"),
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
