package main

import (
	"errors"
	"os"

	sitefix "github.com/alnah/go-sitefix"
	"github.com/alnah/go-sitefix/internal/config"
)

// Exit codes for sitefix CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files processed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid command, flags, arguments or config
	ExitIO      = 3 // File not found, permission denied, read/write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, sitefix.ErrNoFiles) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrRequiredField) ||
		errors.Is(err, config.ErrInvalidURL) ||
		errors.Is(err, config.ErrMissingSlug) ||
		errors.Is(err, config.ErrInvalidMenuItem) ||
		errors.Is(err, config.ErrUnknownBootswatch) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sitefix.ErrReadFile) ||
		errors.Is(err, sitefix.ErrWriteFile) {
		return ExitIO
	}

	return ExitGeneral
}
