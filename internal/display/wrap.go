package display

import "github.com/muesli/reflow/wordwrap"

// DefaultWidth is the output width used when no size is configured.
const DefaultWidth = 80

// Wrap word-wraps text to the given width, preserving existing line breaks.
// Width values below 1 return the text unchanged. Words longer than the
// width are emitted on their own line rather than split.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}

	return wordwrap.String(text, width)
}
