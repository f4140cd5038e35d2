// Package gitlab implements a release source backed by the GitLab API.
package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/valksor/go-relwatch"
	"github.com/valksor/go-relwatch/source/httpclient"
)

// Options configures a GitLab release source.
type Options struct {
	// Token authenticates API requests. Empty means unauthenticated
	// requests against public projects only.
	Token string

	// Host points at a self-hosted GitLab instance, e.g.
	// "https://gitlab.example.com". Empty means gitlab.com.
	Host string

	// HTTPClient is the transport used for API requests. Defaults to a
	// client with the shared timeout.
	HTTPClient *http.Client
}

// Source fetches releases through the GitLab API. It implements
// relwatch.Source.
type Source struct {
	gl *gitlab.Client
}

// NewSource creates a GitLab release source.
func NewSource(opts Options) (*Source, error) {
	hc := opts.HTTPClient
	if hc == nil {
		hc = httpclient.New()
	}

	// One attempt per check; re-checking is the caller's decision.
	clientOpts := []gitlab.ClientOptionFunc{
		gitlab.WithHTTPClient(hc),
		gitlab.WithoutRetries(),
	}

	// For self-hosted GitLab, set the base URL
	if opts.Host != "" && opts.Host != "https://gitlab.com" && opts.Host != "gitlab.com" {
		baseURL := strings.TrimSuffix(opts.Host, "/") + "/api/v4"
		clientOpts = append(clientOpts, gitlab.WithBaseURL(baseURL))
	}

	gl, err := gitlab.NewClient(opts.Token, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create gitlab client: %w", err)
	}

	return &Source{gl: gl}, nil
}

// ResolveToken finds the GitLab token from multiple sources.
// Priority order:
//  1. RELWATCH_GITLAB_TOKEN env var
//  2. GITLAB_TOKEN env var
//  3. configToken (from config.yaml)
func ResolveToken(configToken string) string {
	if token := os.Getenv("RELWATCH_GITLAB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GITLAB_TOKEN"); token != "" {
		return token
	}

	return configToken
}

// LatestRelease fetches the project's latest release. GitLab orders the
// release collection newest-first, so this reads the head of a single-item
// page.
func (s *Source) LatestRelease(ctx context.Context, owner, repo string) (*relwatch.ReleaseInfo, error) {
	releases, err := s.list(ctx, owner, repo, 1)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, relwatch.ErrNoReleases
	}

	return releases[0], nil
}

// ListReleases fetches the project's releases, newest first.
func (s *Source) ListReleases(ctx context.Context, owner, repo string) ([]*relwatch.ReleaseInfo, error) {
	return s.list(ctx, owner, repo, 10)
}

func (s *Source) list(ctx context.Context, owner, repo string, perPage int) ([]*relwatch.ReleaseInfo, error) {
	pid := owner + "/" + repo

	releases, _, err := s.gl.Releases.ListReleases(pid, &gitlab.ListReleasesOptions{
		ListOptions: gitlab.ListOptions{PerPage: perPage},
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, wrapAPIError(err)
	}

	out := make([]*relwatch.ReleaseInfo, 0, len(releases))
	for _, r := range releases {
		out = append(out, releaseFromGitLab(r))
	}

	return out, nil
}

// releaseFromGitLab converts a GitLab release to the relwatch type.
func releaseFromGitLab(gl *gitlab.Release) *relwatch.ReleaseInfo {
	var releasedAt time.Time
	if gl.ReleasedAt != nil {
		releasedAt = *gl.ReleasedAt
	}

	return &relwatch.ReleaseInfo{
		TagName:     gl.TagName,
		Name:        gl.Name,
		Notes:       gl.Description,
		DownloadURL: gl.Links.Self,
		PreRelease:  gl.UpcomingRelease,
		PublishedAt: releasedAt,
	}
}

// wrapAPIError maps client-go errors onto the relwatch error taxonomy.
func wrapAPIError(err error) error {
	var glErr *gitlab.ErrorResponse
	if errors.As(err, &glErr) {
		status := 0
		if glErr.Response != nil {
			status = glErr.Response.StatusCode
		}

		return fmt.Errorf("%w: gitlab api: %v", relwatch.ErrInvalidResponse, httpclient.NewHTTPError(status, glErr.Message))
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", relwatch.ErrNetwork, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", relwatch.ErrNetwork, err)
	}

	return err
}
