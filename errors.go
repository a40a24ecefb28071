package autonbsp

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration validation errors.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrEmptyMarker          = errors.New("marker cannot be empty")
	ErrMarkerWhitespace     = errors.New("marker must not contain whitespace outside tags")

	// Rule set validation errors.
	ErrInvalidRules    = errors.New("invalid rule set")
	ErrUnknownCategory = errors.New("unknown rule category")
	ErrEmptyToken      = errors.New("rule token cannot be empty")

	// Built-in rule data errors.
	ErrBuiltinRules = errors.New("built-in rule data is invalid")
)
