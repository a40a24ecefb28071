package autonbsp

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Engine rewrites eligible spaces in text into a non-breaking marker
// according to the typographic rules of one language. An Engine is
// immutable after New and safe for concurrent use without locking.
type Engine struct {
	lang     string
	marker   string
	features Features
	nfc      bool
	catalog  *Catalog
	tr       transformer
}

// New builds an engine for the given language code. The code is
// canonicalized to its base tag ("cs-CZ" becomes "cs"); unknown codes
// degrade to wildcard rules only. All patterns are compiled here, so
// Replace performs no initialization.
func New(lang string, opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		marker:   DefaultMarker,
		features: AllFeatures(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.debug {
		cfg.marker = DebugMarker
	}
	if err := validateMarker(cfg.marker); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	catalog, err := NewCatalog(cfg.rules)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	e := &Engine{
		lang:     canonicalLanguage(lang),
		marker:   cfg.marker,
		features: cfg.features,
		nfc:      cfg.nfc,
		catalog:  catalog,
	}
	e.compile()
	return e, nil
}

// compile resolves the enabled token lists and builds the pass
// patterns. A pass with an empty list stays off even when its toggle
// is on.
func (e *Engine) compile() {
	f := e.features
	var after []string
	if f.Prepositions {
		after = append(after, e.tokens(CategoryPrepositions)...)
	}
	if f.Articles {
		after = append(after, e.tokens(CategoryArticles)...)
	}
	if f.Titles {
		after = append(after, e.tokens(CategoryTitlesBefore)...)
	}
	if f.Abbreviations {
		after = append(after, e.tokens(CategoryAbbreviations)...)
	}
	if len(after) > 0 {
		e.tr.afterWords = compileAfterWords(after)
	}
	if f.Titles {
		if tokens := e.tokens(CategoryTitlesAfter); len(tokens) > 0 {
			e.tr.beforeWords = compileBeforeWords(tokens)
		}
	}
	if f.Months {
		if tokens := e.tokens(CategoryMonths); len(tokens) > 0 {
			e.tr.beforeMonths = compileBeforeMonths(tokens)
		}
	}
	e.tr.afterNumbers = f.AfterNumbers
	e.tr.betweenNumbers = f.BetweenNumbers
	if f.Units {
		if tokens := e.tokens(CategoryUnits); len(tokens) > 0 {
			e.tr.beforeUnits = compileBeforeUnits(tokens)
		}
	}
}

// tokens resolves one category for the engine language, normalized to
// NFC when the engine is.
func (e *Engine) tokens(cat Category) []string {
	tokens := e.catalog.Resolve(cat, e.lang)
	if !e.nfc {
		return tokens
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = norm.NFC.String(tok)
	}
	return out
}

// Replace returns text with eligible whitespace runs rewritten to the
// marker. Markup passes through untouched: tags, comments and the
// content of script, style, pre, code and textarea elements are never
// modified. Replace is pure, and because the marker contains no plain
// whitespace, running it on its own output changes nothing.
func (e *Engine) Replace(text string) string {
	if text == "" || !e.tr.enabled() {
		return text
	}
	if e.nfc {
		text = norm.NFC.String(text)
	}
	var b strings.Builder
	changed := false
	for _, seg := range segmentMarkup(text) {
		if seg.kind != segText {
			b.WriteString(seg.text)
			continue
		}
		out := e.tr.apply(seg.text, e.marker)
		if out != seg.text {
			changed = true
		}
		b.WriteString(out)
	}
	if !changed {
		return text
	}
	return b.String()
}

// Language reports the canonical base code the engine was built for.
func (e *Engine) Language() string {
	return e.lang
}

// Marker reports the replacement string in use.
func (e *Engine) Marker() string {
	return e.marker
}

// Features reports the pass toggles the engine was built with.
func (e *Engine) Features() Features {
	return e.features
}
