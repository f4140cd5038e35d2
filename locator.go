package relwatch

import (
	"fmt"
	"net/url"
	"strings"
)

// Locator identifies the repository to query. It is a closed set: the three
// implementations below cover a repository web page URL, a literal
// "owner/repo" pair, and a git remote URL.
type Locator interface {
	// Resolve returns the owner and repository name, or ErrInvalidLocator
	// when the input cannot produce a non-empty pair.
	Resolve() (owner, repo string, err error)

	isLocator()
}

// WebURL locates a repository by its web page URL,
// e.g. "https://github.com/valksor/go-relwatch".
type WebURL string

// OwnerRepo locates a repository by an explicit owner and name.
type OwnerRepo struct {
	Owner string
	Repo  string
}

// GitRemote locates a repository by a git remote URL,
// e.g. "https://github.com/valksor/go-relwatch.git" or
// "git@github.com:valksor/go-relwatch.git".
type GitRemote string

func (WebURL) isLocator()    {}
func (OwnerRepo) isLocator() {}
func (GitRemote) isLocator() {}

// Resolve extracts owner/repo from the first two path segments of the URL.
func (w WebURL) Resolve() (string, string, error) {
	u, err := url.Parse(strings.TrimSpace(string(w)))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidLocator, err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("%w: missing host in %q", ErrInvalidLocator, string(w))
	}

	parts := splitPath(u.Path)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: no owner/repo in %q", ErrInvalidLocator, string(w))
	}

	return parts[0], parts[1], nil
}

func (w WebURL) String() string { return string(w) }

// Resolve validates that both owner and repo are present.
func (o OwnerRepo) Resolve() (string, string, error) {
	if o.Owner == "" || o.Repo == "" {
		return "", "", fmt.Errorf("%w: empty owner or repo", ErrInvalidLocator)
	}

	return o.Owner, o.Repo, nil
}

func (o OwnerRepo) String() string { return o.Owner + "/" + o.Repo }

// ParseOwnerRepo parses a literal "owner/repo" string into an OwnerRepo
// locator.
func ParseOwnerRepo(s string) (OwnerRepo, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return OwnerRepo{}, fmt.Errorf("%w: expected owner/repo, got %q", ErrInvalidLocator, s)
	}

	return OwnerRepo{Owner: parts[0], Repo: parts[1]}, nil
}

// Resolve extracts owner/repo from a git remote URL. Both slash-delimited
// remotes (https://host/owner/repo.git) and scp-style remotes
// (git@host:owner/repo.git) are accepted.
func (g GitRemote) Resolve() (string, string, error) {
	raw := strings.TrimSpace(string(g))
	if raw == "" {
		return "", "", fmt.Errorf("%w: empty remote URL", ErrInvalidLocator)
	}

	// scp-style: git@host:owner/repo.git
	if !strings.Contains(raw, "://") {
		if at := strings.Index(raw, "@"); at >= 0 {
			if colon := strings.Index(raw[at:], ":"); colon >= 0 {
				path := strings.TrimSuffix(raw[at+colon+1:], ".git")
				parts := splitPath(path)
				if len(parts) >= 2 {
					return parts[0], parts[1], nil
				}
			}
		}

		return "", "", fmt.Errorf("%w: unrecognized remote %q", ErrInvalidLocator, raw)
	}

	// scheme://host/owner/repo.git — everything after the third
	// slash-delimited component is the repository path.
	parts := strings.Split(strings.TrimSuffix(raw, ".git"), "/")
	if len(parts) < 5 {
		return "", "", fmt.Errorf("%w: no owner/repo in %q", ErrInvalidLocator, raw)
	}

	path := splitPath(strings.Join(parts[3:], "/"))
	if len(path) < 2 {
		return "", "", fmt.Errorf("%w: no owner/repo in %q", ErrInvalidLocator, raw)
	}

	return path[0], path[1], nil
}

func (g GitRemote) String() string { return string(g) }

// ParseLocator guesses the locator variant for a free-form input string:
// anything with a scheme or scp-style host is a URL (remote when it ends in
// .git), everything else must be a literal owner/repo pair.
func ParseLocator(input string) (Locator, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidLocator)
	}

	switch {
	case strings.HasSuffix(s, ".git"):
		return GitRemote(s), nil
	case strings.Contains(s, "@") && strings.Contains(s, ":") && !strings.Contains(s, "://"):
		return GitRemote(s), nil
	case strings.Contains(s, "://"):
		return WebURL(s), nil
	default:
		return ParseOwnerRepo(s)
	}
}

// splitPath splits a URL path into non-empty segments.
func splitPath(p string) []string {
	var parts []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}

	return parts
}
