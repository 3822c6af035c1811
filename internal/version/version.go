// Package version provides build-time version information.
package version

import "strings"

// Set via ldflags. Defaults are used for builds that do not set them (e.g. go install).
var (
	Version = "dev"
	Commit  = "unknown" // e.g. "1234567" or "1234567-dirty"
)

// Get derives a normalized, user-facing version string from Version, which
// is expected to be set via ldflags from `git describe --tags --long
// --dirty=-dirty --broken=-broken` (e.g. "v1.2.3-0-abcdef0" for a commit
// exactly on a tag, or "v1.2.3-5-abcdef0-dirty" otherwise). A clean release
// reports its bare semver; anything else reports a "-dev.<hash>" suffix.
// Builds without that ldflag (e.g. `go install`) fall back to the "dev"
// default unchanged.
func Get() string {
	v := strings.TrimPrefix(Version, "v")

	parts := strings.Split(v, "-")
	if len(parts) < 3 {
		return v
	}

	semver, ahead, hash := parts[0], parts[1], parts[2]
	dirty := len(parts) > 3

	if ahead == "0" && !dirty {
		return semver
	}
	return semver + "-dev." + hash
}
