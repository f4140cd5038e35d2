package relwatch

import "time"

// ReleaseInfo represents a published release on the hosting provider.
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`     // e.g., "v1.2.3"; always present
	Name        string    `json:"name"`         // Human-readable release title, may be empty
	Notes       string    `json:"notes"`        // Free-text/Markdown release body, may be empty
	DownloadURL string    `json:"download_url"` // Canonical web URL for the release page; always present
	PreRelease  bool      `json:"pre_release"`  // true for pre-release versions
	PublishedAt time.Time `json:"published_at"` // When the release was published (zero if unknown)
}

// CheckResult is the outcome of a single update check.
//
// When Err is nil, HasUpdate is true if and only if Release is non-nil:
// a check that found a release which is not newer than the current version
// reports HasUpdate false and a nil Release.
type CheckResult struct {
	Release   *ReleaseInfo // The newer release, nil when HasUpdate is false
	HasUpdate bool         // true if Release should be offered to the user
	Err       error        // Non-nil when the check failed; Release is nil then
}
