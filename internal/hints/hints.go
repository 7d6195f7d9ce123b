// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForUnmatchedDelimiter returns a hint for inline markup left open.
func ForUnmatchedDelimiter() string {
	return format("every **, *, _ and ` needs a closing partner on the same block; " +
		"use --engine goldmark to treat stray delimiters as text")
}

// ForMissingTitle returns a hint for pages without a leading H1.
func ForMissingTitle() string {
	return format("start the page with a heading line like \"# My Page\"")
}

// ForEmptyPage returns a hint for pages without any content.
func ForEmptyPage() string {
	return format("add content or remove the file")
}

// ForMissingPlaceholder returns a hint for templates that cannot hold content.
func ForMissingPlaceholder() string {
	return format("add {{ Content }} (and optionally {{ Title }}) to the template")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-sitegen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-sitegen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForContentDirectory returns a hint for a missing content directory.
func ForContentDirectory() string {
	return format("create the directory or point --content at your markdown tree")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownEngine returns a hint listing the supported engines.
func ForUnknownEngine(engines []string) string {
	return format("supported engines: " + strings.Join(engines, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
