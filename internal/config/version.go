package config

// Build information, set through -ldflags by the release build
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// SetBuildFlags records the values injected into main at link time
func SetBuildFlags(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}
