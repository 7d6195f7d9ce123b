package main

import (
	"errors"
	"os"

	"github.com/alnah/go-sitegen"
	"github.com/alnah/go-sitegen/internal/config"
)

// Exit codes for the sitegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or markdown syntax
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sitegen.ErrContentNotFound) ||
		errors.Is(err, sitegen.ErrStaticCopy) ||
		errors.Is(err, sitegen.ErrOutputDir) ||
		errors.Is(err, sitegen.ErrPageRead) ||
		errors.Is(err, sitegen.ErrPageWrite) ||
		errors.Is(err, sitegen.ErrTemplateRead) {
		return ExitIO
	}

	// Usage/config/syntax errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, sitegen.ErrEmptyMarkdown) ||
		errors.Is(err, sitegen.ErrEmptyDocument) ||
		errors.Is(err, sitegen.ErrMissingTitle) ||
		errors.Is(err, sitegen.ErrUnmatchedDelimiter) ||
		errors.Is(err, sitegen.ErrMissingPlaceholder) ||
		errors.Is(err, sitegen.ErrUnknownEngine) ||
		errors.Is(err, sitegen.ErrStyleNotFound) ||
		errors.Is(err, sitegen.ErrTemplateNotFound) ||
		errors.Is(err, sitegen.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
