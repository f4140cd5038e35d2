package relwatch

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Comparator decides whether latest should be reported as an update over the
// current version. Implementations must be pure; they are called
// synchronously during the check, after a successful decode.
type Comparator func(currentVersion string, latest *ReleaseInfo) bool

// MajorComparator is the default policy: it compares only the leading
// numeric component of each version string and reports an update when the
// latest's leading number is strictly greater. Unparsable leading segments
// count as 0. This is a deliberate simplification; use SemverComparator for
// full semantic ordering.
func MajorComparator(currentVersion string, latest *ReleaseInfo) bool {
	return leadingMajor(latest.TagName) > leadingMajor(currentVersion)
}

// SemverComparator orders full semantic versions using golang.org/x/mod.
// Tags that are not valid semver sort before any valid version.
func SemverComparator(currentVersion string, latest *ReleaseInfo) bool {
	return semver.Compare(canonicalTag(latest.TagName), canonicalTag(currentVersion)) > 0
}

// leadingMajor parses the integer before the first "." in a version string.
func leadingMajor(version string) int {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if i := strings.Index(v, "."); i >= 0 {
		v = v[:i]
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}

	return n
}

// canonicalTag normalizes a tag for semver.Compare, which requires the "v"
// prefix.
func canonicalTag(version string) string {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	return v
}
