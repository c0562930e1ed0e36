package main

import (
	"errors"
	"os"

	svgmerge "github.com/alnah/go-svgmerge"
	"github.com/alnah/go-svgmerge/internal/config"
)

// Exit codes for the svgmerge CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Skipped elements do not change the exit code; only fatal errors do.
const (
	ExitSuccess = 0 // Merged (possibly with skipped elements)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or layout values
	ExitIO      = 3 // Layout/output file not found, permission denied
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
		errors.Is(err, svgmerge.ErrLayoutNotFound) ||
		errors.Is(err, svgmerge.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, svgmerge.ErrLayoutParse) ||
		errors.Is(err, svgmerge.ErrEmptyLayout) ||
		errors.Is(err, svgmerge.ErrInvalidCanvasSize) ||
		errors.Is(err, svgmerge.ErrInvalidTransparency) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrNoLayout) {
		return ExitUsage
	}

	return ExitGeneral
}
