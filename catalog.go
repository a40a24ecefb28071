package autonbsp

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/jan-herman/autonbsp/internal/langrules"
)

// Category names one list of rule tokens within a language.
type Category string

// Rule categories. Tokens in every category are literal text (a word,
// abbreviation, unit or month name), never pattern syntax.
const (
	CategoryPrepositions  Category = "prepositions_conjunctions"
	CategoryArticles      Category = "articles"
	CategoryAbbreviations Category = "abbreviations"
	CategoryTitlesBefore  Category = "titles_before_name"
	CategoryTitlesAfter   Category = "titles_after_name"
	CategoryUnits         Category = "units"
	CategoryMonths        Category = "months"
)

var knownCategories = map[Category]bool{
	CategoryPrepositions:  true,
	CategoryArticles:      true,
	CategoryAbbreviations: true,
	CategoryTitlesBefore:  true,
	CategoryTitlesAfter:   true,
	CategoryUnits:         true,
	CategoryMonths:        true,
}

// RuleSet maps a language code to per-category token lists. The key
// LanguageAll holds wildcard tokens that apply to every language in
// addition to, never instead of, the language's own lists.
type RuleSet map[string]map[Category][]string

// Catalog resolves effective token lists from the built-in defaults
// merged additively with caller overrides. Read-only after construction.
type Catalog struct {
	rules RuleSet
}

// NewCatalog builds a catalog from the built-in rules and overrides.
// Override languages are canonicalized to their base code, so "cs-CZ"
// and "cs" land in the same list. Unknown category names or empty
// tokens return an error wrapping ErrInvalidRules.
func NewCatalog(overrides RuleSet) (*Catalog, error) {
	builtin, err := langrules.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuiltinRules, err)
	}

	rules := make(RuleSet, len(builtin)+len(overrides))
	for lang, cats := range builtin {
		key := canonicalLanguage(lang)
		merged := make(map[Category][]string, len(cats))
		for name, tokens := range cats {
			cat := Category(name)
			if !knownCategories[cat] {
				return nil, fmt.Errorf("%w: %w %q in language %q", ErrBuiltinRules, ErrUnknownCategory, name, lang)
			}
			if err := validateTokens(tokens); err != nil {
				return nil, fmt.Errorf("%w: %w in %s/%s", ErrBuiltinRules, err, lang, name)
			}
			merged[cat] = append([]string(nil), tokens...)
		}
		rules[key] = merged
	}

	for lang, cats := range overrides {
		key := canonicalLanguage(lang)
		merged := rules[key]
		if merged == nil {
			merged = make(map[Category][]string, len(cats))
			rules[key] = merged
		}
		for cat, tokens := range cats {
			if !knownCategories[cat] {
				return nil, fmt.Errorf("%w: %w %q in language %q", ErrInvalidRules, ErrUnknownCategory, string(cat), lang)
			}
			if err := validateTokens(tokens); err != nil {
				return nil, fmt.Errorf("%w: %w in %s/%s", ErrInvalidRules, err, lang, cat)
			}
			merged[cat] = append(merged[cat], tokens...)
		}
	}

	return &Catalog{rules: rules}, nil
}

func validateTokens(tokens []string) error {
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			return ErrEmptyToken
		}
	}
	return nil
}

// Resolve returns the effective tokens for one category: wildcard
// tokens first, then the language's own. Duplicates are permitted and
// order is preserved. An unknown language yields wildcard tokens only.
func (c *Catalog) Resolve(cat Category, lang string) []string {
	key := canonicalLanguage(lang)
	wild := c.rules[LanguageAll][cat]
	var own []string
	if key != LanguageAll {
		own = c.rules[key][cat]
	}
	if len(wild)+len(own) == 0 {
		return nil
	}
	out := make([]string, 0, len(wild)+len(own))
	out = append(out, wild...)
	out = append(out, own...)
	return out
}

// ResolveAll returns the effective tokens for every category that has
// any, keyed by category.
func (c *Catalog) ResolveAll(lang string) map[Category][]string {
	out := make(map[Category][]string, len(knownCategories))
	for cat := range knownCategories {
		if tokens := c.Resolve(cat, lang); len(tokens) > 0 {
			out[cat] = tokens
		}
	}
	return out
}

// Languages lists the codes that carry rules, wildcard excluded, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.rules))
	for lang := range c.rules {
		if lang == LanguageAll {
			continue
		}
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// canonicalLanguage reduces a language code to its base tag: "cs-CZ",
// "cs_CZ.UTF-8" and "CS" all become "cs". POSIX locale suffixes are
// stripped before BCP 47 parsing. Codes that cannot be parsed map to
// "und", which carries no rules, so callers degrade to wildcard-only.
func canonicalLanguage(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		code = code[:i]
	}
	code = strings.ReplaceAll(code, "_", "-")
	if code == "" || strings.EqualFold(code, LanguageAll) {
		return LanguageAll
	}
	base, _ := language.Make(code).Base()
	return base.String()
}
