package nudge

import "strings"

var (
	// Version is set at build time with
	// -ldflags="-X github.com/frantjc/nudge.Version=...".
	Version = "0.0.0"
	// Prerelease is set at build time with
	// -ldflags="-X github.com/frantjc/nudge.Prerelease=...".
	Prerelease = ""
)

// SemVer returns the semantic version of nudge.
func SemVer() string {
	if Prerelease != "" {
		return Version + "-" + strings.TrimPrefix(Prerelease, "-")
	}

	return Version
}
