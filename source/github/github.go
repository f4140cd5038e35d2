// Package github implements a release source backed by the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"

	"github.com/valksor/go-relwatch"
	"github.com/valksor/go-relwatch/source/httpclient"
)

// Options configures a GitHub release source.
type Options struct {
	// Token authenticates API requests. Empty means unauthenticated
	// requests, subject to rate limits.
	Token string

	// BaseURL points at a GitHub Enterprise instance. Empty means
	// github.com.
	BaseURL string

	// HTTPClient is the transport used for API requests. Defaults to a
	// client with the shared timeout. Ignored when Token is set, in which
	// case the oauth2 client wraps the default transport.
	HTTPClient *http.Client
}

// Source fetches releases through the GitHub API. It implements
// relwatch.Source.
type Source struct {
	gh *github.Client
}

// NewSource creates a GitHub release source.
func NewSource(opts Options) (*Source, error) {
	hc := opts.HTTPClient
	if hc == nil {
		hc = httpclient.New()
	}

	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		hc = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(hc)
	if opts.BaseURL != "" {
		var err error
		gh, err = gh.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("github base url: %w", err)
		}
	}

	return &Source{gh: gh}, nil
}

// ResolveToken finds the GitHub token from multiple sources.
// Priority order:
//  1. RELWATCH_GITHUB_TOKEN env var
//  2. GITHUB_TOKEN env var
//  3. configToken (from config.yaml)
func ResolveToken(configToken string) string {
	if token := os.Getenv("RELWATCH_GITHUB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}

	return configToken
}

// LatestRelease fetches the repository's latest published release.
func (s *Source) LatestRelease(ctx context.Context, owner, repo string) (*relwatch.ReleaseInfo, error) {
	release, _, err := s.gh.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	return releaseFromGitHub(release), nil
}

// ListReleases fetches the repository's published releases, newest first.
// Draft releases are skipped.
func (s *Source) ListReleases(ctx context.Context, owner, repo string) ([]*relwatch.ReleaseInfo, error) {
	releases, _, err := s.gh.Repositories.ListReleases(ctx, owner, repo, &github.ListOptions{
		PerPage: 10,
	})
	if err != nil {
		return nil, wrapAPIError(err)
	}

	out := make([]*relwatch.ReleaseInfo, 0, len(releases))
	for _, r := range releases {
		if r.GetDraft() {
			continue
		}
		out = append(out, releaseFromGitHub(r))
	}

	return out, nil
}

// releaseFromGitHub converts a GitHub release to the relwatch type.
func releaseFromGitHub(gh *github.RepositoryRelease) *relwatch.ReleaseInfo {
	var publishedAt time.Time
	if gh.PublishedAt != nil {
		publishedAt = gh.PublishedAt.Time
	}

	return &relwatch.ReleaseInfo{
		TagName:     gh.GetTagName(),
		Name:        gh.GetName(),
		Notes:       gh.GetBody(),
		DownloadURL: gh.GetHTMLURL(),
		PreRelease:  gh.GetPrerelease(),
		PublishedAt: publishedAt,
	}
}

// wrapAPIError maps go-github errors onto the relwatch error taxonomy:
// any API response outside the success range becomes ErrInvalidResponse,
// transport-level failures become ErrNetwork.
func wrapAPIError(err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		status := 0
		if ghErr.Response != nil {
			status = ghErr.Response.StatusCode
		}

		return fmt.Errorf("%w: github api: %v", relwatch.ErrInvalidResponse, httpclient.NewHTTPError(status, ghErr.Message))
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: github api rate limited", relwatch.ErrInvalidResponse)
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
