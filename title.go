package sitegen

import (
	"fmt"
	"strings"
)

// h1Prefix starts the first line of every page.
const h1Prefix = "# "

// ExtractTitle returns the text of the heading on the first line of markdown.
// The line must start with "# "; leading '#' characters and surrounding
// whitespace are removed. Returns ErrMissingTitle otherwise.
func ExtractTitle(markdown string) (string, error) {
	first, _, _ := strings.Cut(markdown, "\n")
	if !strings.HasPrefix(first, h1Prefix) {
		return "", fmt.Errorf("%w: got %q", ErrMissingTitle, truncate(first, 40))
	}
	return strings.TrimSpace(strings.TrimLeft(first, "#")), nil
}

// truncate shortens s to at most n runes for error messages.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
