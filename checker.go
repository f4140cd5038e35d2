package relwatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/valksor/go-relwatch/internal/log"
)

// Source fetches releases from a hosting provider. Implementations live in
// the source/ subpackages (GitHub, GitLab); callers can supply their own.
//
// ListReleases must return releases newest-first with draft releases
// excluded. Both methods map transport failures to ErrNetwork and non-2xx
// responses to ErrInvalidResponse.
type Source interface {
	// LatestRelease fetches the single latest published release.
	LatestRelease(ctx context.Context, owner, repo string) (*ReleaseInfo, error)

	// ListReleases fetches the published releases, newest first.
	ListReleases(ctx context.Context, owner, repo string) ([]*ReleaseInfo, error)
}

// Endpoint selects which provider endpoint a check queries.
type Endpoint int

const (
	// EndpointLatest queries the single-release "latest" endpoint. This is
	// the default: it matches the common case and avoids fetching a page of
	// releases to read one element.
	EndpointLatest Endpoint = iota

	// EndpointList queries the release collection and treats the first
	// element as latest.
	EndpointList
)

// Options configures a Checker. The zero value is usable: the current
// version comes from build info, versions are compared by MajorComparator,
// and the latest-release endpoint is queried.
type Options struct {
	// CurrentVersion overrides the host application version. When empty,
	// the main module version from build info is used; if that is also
	// unavailable the check fails with ErrNoCurrentVersion.
	CurrentVersion string

	// Comparator is the update policy. Defaults to MajorComparator.
	Comparator Comparator

	// Endpoint selects the provider endpoint variant.
	Endpoint Endpoint

	// IncludePreRelease admits pre-release entries when querying the
	// release collection. The latest endpoint follows the provider's own
	// notion of latest and is unaffected.
	IncludePreRelease bool

	// UISize is passed through to observers; the core never interprets it.
	UISize UISize
}

// Checker performs update checks against a release Source. A Checker is safe
// for concurrent use; concurrent checks are independent operations with no
// de-duplication or shared state beyond the underlying Source.
type Checker struct {
	src        Source
	compare    Comparator
	endpoint   Endpoint
	includePre bool
	current    string
	uiSize     UISize
	observers  *observerSet
}

// New creates a Checker querying releases through src. A nil src yields a
// Checker whose checks fail with ErrNoSource.
func New(src Source, opts Options) *Checker {
	compare := opts.Comparator
	if compare == nil {
		compare = MajorComparator
	}

	return &Checker{
		src:        src,
		compare:    compare,
		endpoint:   opts.Endpoint,
		includePre: opts.IncludePreRelease,
		current:    opts.CurrentVersion,
		uiSize:     opts.UISize,
		observers:  newObserverSet(),
	}
}

// Attach registers an observer for check state transitions and returns an
// identifier for Detach.
func (c *Checker) Attach(o Observer) string {
	return c.observers.attach(o)
}

// Detach removes a previously attached observer.
func (c *Checker) Detach(id string) {
	c.observers.detach(id)
}

// Check performs one update check synchronously. The returned CheckResult is
// either a failure (Err set, Release nil) or a success where HasUpdate is
// true exactly when Release is non-nil. Attached observers see CheckStarted
// before any network activity and then exactly one of ResultReceived or
// ErrorReceived.
func (c *Checker) Check(ctx context.Context, loc Locator) CheckResult {
	c.observers.each(func(o Observer) { o.CheckStarted(c.uiSize) })

	current := c.current
	if current == "" {
		current = currentVersionFromBuildInfo()
	}
	if current == "" {
		return c.fail(ErrNoCurrentVersion)
	}

	if loc == nil {
		return c.fail(fmt.Errorf("%w: nil locator", ErrInvalidLocator))
	}
	owner, repo, err := loc.Resolve()
	if err != nil {
		return c.fail(err)
	}

	log.Debug("checking for updates", log.Repo(owner, repo), "current", current)

	latest, err := c.fetchLatest(ctx, owner, repo)
	if err != nil {
		return c.fail(err)
	}

	if err := validateRelease(latest); err != nil {
		return c.fail(err)
	}

	if !c.compare(current, latest) {
		log.Debug("no update", "latest", latest.TagName, "current", current)
		c.observers.each(func(o Observer) { o.ResultReceived(nil, false) })

		return CheckResult{}
	}

	log.Debug("update available", "latest", latest.TagName, "current", current)
	c.observers.each(func(o Observer) { o.ResultReceived(latest, true) })

	return CheckResult{Release: latest, HasUpdate: true}
}

// CheckAsync dispatches the check on its own goroutine and invokes onResult
// exactly once with the outcome. onResult runs on the worker goroutine;
// callers that touch UI state from it are responsible for re-dispatching
// onto their own execution context.
func (c *Checker) CheckAsync(ctx context.Context, loc Locator, onResult func(CheckResult)) {
	var once sync.Once

	go func() {
		result := c.Check(ctx, loc)
		once.Do(func() {
			if onResult != nil {
				onResult(result)
			}
		})
	}()
}

// fetchLatest performs the single network operation of a check.
func (c *Checker) fetchLatest(ctx context.Context, owner, repo string) (*ReleaseInfo, error) {
	if c.src == nil {
		return nil, ErrNoSource
	}

	if c.endpoint == EndpointList {
		releases, err := c.src.ListReleases(ctx, owner, repo)
		if err != nil {
			return nil, err
		}

		// Newest first, so the first eligible release is the latest.
		for _, r := range releases {
			if r != nil && r.PreRelease && !c.includePre {
				continue
			}

			return r, nil
		}

		return nil, ErrNoReleases
	}

	return c.src.LatestRelease(ctx, owner, repo)
}

func (c *Checker) fail(err error) CheckResult {
	log.Debug("check failed", log.Err(err))
	c.observers.each(func(o Observer) { o.ErrorReceived(err) })

	return CheckResult{Err: err}
}

// validateRelease enforces the required fields of the provider schema.
func validateRelease(r *ReleaseInfo) error {
	if r == nil {
		return fmt.Errorf("%w: empty release", ErrInvalidResponse)
	}
	if r.TagName == "" {
		return fmt.Errorf("decode release: missing tag_name: %w", ErrInvalidResponse)
	}
	if r.DownloadURL == "" {
		return fmt.Errorf("decode release: missing html_url: %w", ErrInvalidResponse)
	}

	return nil
}
