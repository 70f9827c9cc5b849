package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
	"strings"
)

// maxPasses bounds the strip/unescape loop.
const maxPasses = 8

var strictPolicy = bluemonday.StrictPolicy()

// Text strips all markup and returns trimmed plain text. The policy output is
// unescaped since titles are stored and served as plain text, and the loop
// runs until the result is stable so Text(Text(s)) == Text(s).
func Text(input string) string {
	out := strings.TrimSpace(input)

	for i := 0; i < maxPasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(out)))
		if next == out {
			return out
		}
		out = next
	}

	return out
}
