package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/valksor/go-relwatch"
)

// newTestSource points a Source at a test server. The enterprise base URL
// makes go-github prefix paths with /api/v3.
func newTestSource(t *testing.T, handler http.Handler) *Source {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	src, err := NewSource(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	return src
}

func TestLatestRelease(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/valksor/go-relwatch/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "v1.2.3",
			"name": "Release 1.2.3",
			"body": "Release notes here",
			"html_url": "https://github.com/valksor/go-relwatch/releases/tag/v1.2.3",
			"prerelease": false,
			"published_at": "2024-01-16T12:00:00Z"
		}`))
	})

	src := newTestSource(t, mux)

	release, err := src.LatestRelease(context.Background(), "valksor", "go-relwatch")
	if err != nil {
		t.Fatalf("LatestRelease() error = %v", err)
	}

	if release.TagName != "v1.2.3" {
		t.Errorf("TagName = %q, want v1.2.3", release.TagName)
	}
	if release.Name != "Release 1.2.3" {
		t.Errorf("Name = %q, want Release 1.2.3", release.Name)
	}
	if release.Notes != "Release notes here" {
		t.Errorf("Notes = %q", release.Notes)
	}
	if release.DownloadURL != "https://github.com/valksor/go-relwatch/releases/tag/v1.2.3" {
		t.Errorf("DownloadURL = %q", release.DownloadURL)
	}
	if release.PreRelease {
		t.Error("PreRelease = true, want false")
	}
	if release.PublishedAt.IsZero() {
		t.Error("PublishedAt is zero")
	}
}

func TestListReleasesSkipsDrafts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/valksor/go-relwatch/releases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"tag_name": "v2.0.0-draft", "html_url": "https://example.com/draft", "draft": true},
			{"tag_name": "v1.9.0", "html_url": "https://example.com/v1.9.0", "draft": false},
			{"tag_name": "v1.8.0", "html_url": "https://example.com/v1.8.0"}
		]`))
	})

	src := newTestSource(t, mux)

	releases, err := src.ListReleases(context.Background(), "valksor", "go-relwatch")
	if err != nil {
		t.Fatalf("ListReleases() error = %v", err)
	}

	if len(releases) != 2 {
		t.Fatalf("len(releases) = %d, want 2 (draft skipped)", len(releases))
	}
	if releases[0].TagName != "v1.9.0" {
		t.Errorf("releases[0] = %q, want v1.9.0", releases[0].TagName)
	}
}

func TestListReleasesEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/valksor/go-relwatch/releases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	src := newTestSource(t, mux)

	releases, err := src.ListReleases(context.Background(), "valksor", "go-relwatch")
	if err != nil {
		t.Fatalf("ListReleases() error = %v", err)
	}
	if len(releases) != 0 {
		t.Errorf("len(releases) = %d, want 0", len(releases))
	}
}

func TestErrorStatusMapsToInvalidResponse(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"message": "nope"}`))
			}))

			_, err := src.LatestRelease(context.Background(), "valksor", "go-relwatch")
			if !errors.Is(err, relwatch.ErrInvalidResponse) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestTransportErrorMapsToNetwork(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close() // Connection refused from here on.

	src, err := NewSource(Options{BaseURL: url})
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	_, err = src.LatestRelease(context.Background(), "valksor", "go-relwatch")
	if !errors.Is(err, relwatch.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name        string
		relwatchEnv string
		githubEnv   string
		configToken string
		want        string
	}{
		{"relwatch env wins", "aaa", "bbb", "ccc", "aaa"},
		{"github env second", "", "bbb", "ccc", "bbb"},
		{"config last", "", "", "ccc", "ccc"},
		{"nothing", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RELWATCH_GITHUB_TOKEN", tt.relwatchEnv)
			t.Setenv("GITHUB_TOKEN", tt.githubEnv)

			if got := ResolveToken(tt.configToken); got != tt.want {
				t.Errorf("ResolveToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
