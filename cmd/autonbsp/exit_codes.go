package main

import (
	"errors"

	"github.com/jan-herman/autonbsp"
	"github.com/jan-herman/autonbsp/internal/rulefile"
)

// Exit codes for the autonbsp CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, rules, or flag combinations
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/configuration errors (exit 2)
	if errors.Is(err, autonbsp.ErrInvalidConfiguration) ||
		errors.Is(err, autonbsp.ErrInvalidRules) ||
		errors.Is(err, rulefile.ErrEmptyName) ||
		errors.Is(err, rulefile.ErrNotFound) ||
		errors.Is(err, rulefile.ErrParse) ||
		errors.Is(err, ErrUnknownFeature) ||
		errors.Is(err, ErrWriteStdin) ||
		errors.Is(err, ErrWriteWithOutput) ||
		errors.Is(err, ErrWriteMarkdown) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputNotDirectory) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
