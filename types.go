package autonbsp

import (
	"fmt"
	"strings"
)

// Marker constants.
const (
	// DefaultMarker is the HTML entity written in place of an eligible space.
	// The engine's primary input is rendered HTML, where the entity survives
	// any later character-set transcoding.
	DefaultMarker = "&nbsp;"

	// MarkerRune is the literal no-break space (U+00A0) for plain-text
	// pipelines that never pass through an HTML renderer.
	MarkerRune = " "

	// DebugMarker highlights every replacement for visual inspection.
	// It behaves exactly like DefaultMarker during matching: the span is a
	// markup segment, so a second Replace pass never touches it.
	DebugMarker = `<span class="autonbsp" style="background-color: #fdd;">&nbsp;</span>`
)

// LanguageAll is the wildcard rule-set key whose tokens apply to every
// language, merged additively with language-specific lists.
const LanguageAll = "all"

// Features toggles the individual substitution passes.
// The zero value disables everything; use AllFeatures for the defaults.
type Features struct {
	Prepositions   bool // short prepositions and conjunctions (afterWords)
	Articles       bool // articles (afterWords)
	Abbreviations  bool // abbreviations (afterWords)
	Titles         bool // titles before and after names
	Units          bool // number followed by a unit token
	Months         bool // day number followed by a month name
	AfterNumbers   bool // lone digit bound to the following word
	BetweenNumbers bool // digit groups bound to each other (1 000)
}

// AllFeatures returns the default feature set with every pass enabled.
func AllFeatures() Features {
	return Features{
		Prepositions:   true,
		Articles:       true,
		Abbreviations:  true,
		Titles:         true,
		Units:          true,
		Months:         true,
		AfterNumbers:   true,
		BetweenNumbers: true,
	}
}

// Option configures an Engine.
type Option func(*engineConfig)

// engineConfig holds internal configuration collected from options.
type engineConfig struct {
	marker   string
	debug    bool
	features Features
	rules    RuleSet
	nfc      bool
}

// WithMarker replaces the default &nbsp; entity with a custom marker.
// The marker must be non-empty and must not contain whitespace outside
// markup tags, otherwise New returns ErrInvalidConfiguration.
func WithMarker(marker string) Option {
	return func(cfg *engineConfig) {
		cfg.marker = marker
	}
}

// WithDebug swaps the marker for DebugMarker so every replacement is
// visible in rendered output. Matching logic is unchanged.
func WithDebug() Option {
	return func(cfg *engineConfig) {
		cfg.debug = true
	}
}

// WithFeatures selects which passes run. Passes whose toggle is off are
// skipped entirely; disabling all of them makes Replace the identity.
func WithFeatures(f Features) Option {
	return func(cfg *engineConfig) {
		cfg.features = f
	}
}

// WithRules merges additional rule tokens into the built-in defaults.
// Overrides extend the defaults; they never replace them.
func WithRules(rules RuleSet) Option {
	return func(cfg *engineConfig) {
		cfg.rules = rules
	}
}

// WithNFC normalizes input text (and rule tokens) to Unicode NFC before
// matching, so decomposed diacritics match composed tokens.
func WithNFC() Option {
	return func(cfg *engineConfig) {
		cfg.nfc = true
	}
}

// validateMarker checks the idempotence requirement: a marker containing
// plain whitespace would be re-replaced by a second Replace call.
// Whitespace inside markup tags (as in DebugMarker) is fine because tag
// segments are never scanned.
func validateMarker(marker string) error {
	if marker == "" {
		return ErrEmptyMarker
	}
	for _, seg := range segmentMarkup(marker) {
		if seg.kind != segText {
			continue
		}
		if strings.ContainsAny(seg.text, " \t\n\f\r") {
			return fmt.Errorf("%w: %q", ErrMarkerWhitespace, marker)
		}
	}
	return nil
}
