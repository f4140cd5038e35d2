package relwatch

import "errors"

var (
	// ErrNoCurrentVersion is returned when the host application's version
	// could not be determined, neither from options nor from build info.
	ErrNoCurrentVersion = errors.New("relwatch: current version unavailable")

	// ErrNoSource is returned when a Checker was constructed without a
	// release source.
	ErrNoSource = errors.New("relwatch: no source configured")

	// ErrInvalidLocator is returned when a repository locator could not be
	// resolved to a non-empty owner/repo pair.
	ErrInvalidLocator = errors.New("relwatch: invalid repository locator")

	// ErrNetwork is returned for transport-level failures (DNS, TLS,
	// connection reset, timeout). The cause is attached via wrapping.
	ErrNetwork = errors.New("relwatch: network error")

	// ErrInvalidResponse is returned when the provider answered with a
	// non-2xx status or an unusable body.
	ErrInvalidResponse = errors.New("relwatch: invalid response")

	// ErrNoReleases is returned when the repository has no published
	// releases.
	ErrNoReleases = errors.New("relwatch: no releases found")
)
