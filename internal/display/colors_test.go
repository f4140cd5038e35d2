package display

import (
	"strings"
	"testing"
)

func TestColorizeDisabled(t *testing.T) {
	SetColorsEnabled(false)
	defer SetColorsEnabled(true)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"success", Success},
		{"error", Error},
		{"warning", Warning},
		{"info", Info},
		{"muted", Muted},
		{"bold", Bold},
		{"dim", Dim},
		{"cyan", Cyan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("text")
			if got != "text" {
				t.Errorf("%s(%q) = %q, want plain text with colors disabled", tt.name, "text", got)
			}
		})
	}
}

func TestColorizeEnabled(t *testing.T) {
	SetColorsEnabled(true)

	tests := []struct {
		name string
		fn   func(string) string
		code string
	}{
		{"warning uses yellow", Warning, "\033[33m"},
		{"dim uses faint", Dim, "\033[2m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("text")
			if !strings.HasPrefix(got, tt.code) || !strings.HasSuffix(got, reset) {
				t.Errorf("%s = %q, want wrapped in %q..%q", tt.name, got, tt.code, reset)
			}
		})
	}
}
