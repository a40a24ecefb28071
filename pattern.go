package autonbsp

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Digit-driven patterns are fixed. Token-driven patterns are assembled
// per engine from the resolved rule lists; all matching is done on text
// segments only, never inside markup.
var (
	afterNumbersRe   = regexp.MustCompile(`(\d)\s+`)
	betweenNumbersRe = regexp.MustCompile(`(\d\.?)\s+(\d)`)
)

// boundary closes a token-driven pattern: end of text or a rune that is
// neither a Unicode letter nor a number. The group is context only; the
// scan loops resume in front of it so adjacent candidates still match.
const boundary = `($|[^\p{L}\p{N}])`

// alternation joins literal tokens into a regexp alternation. Tokens
// are escaped so periods in abbreviations stay literal, and sorted
// longest first so a longer token wins over its own prefix at the same
// position ("Ing. arch." before "Ing."). The sort is stable, keeping
// catalog order among tokens of equal length.
func alternation(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	quoted := make([]string, len(sorted))
	for i, tok := range sorted {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return strings.Join(quoted, "|")
}

// compileAfterWords matches a listed token and the whitespace run after
// it. The left word boundary is checked positionally by the scan loop,
// regexp has no lookbehind.
func compileAfterWords(tokens []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(` + alternation(tokens) + `)\s+`)
}

// compileBeforeWords matches the whitespace run in front of a listed
// token ending at a word boundary.
func compileBeforeWords(tokens []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\s+(` + alternation(tokens) + `)` + boundary)
}

// compileBeforeMonths matches a numeral with an optional ordinal
// period, whitespace, then a listed month name.
func compileBeforeMonths(tokens []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(\d+\.?)\s+(` + alternation(tokens) + `)` + boundary)
}

// compileBeforeUnits matches a digit run, whitespace, then a listed
// unit token.
func compileBeforeUnits(tokens []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(\d+)\s+(` + alternation(tokens) + `)` + boundary)
}

// wordRune reports whether r counts as a word character for boundary
// purposes: letters and numbers of any script qualify, punctuation and
// symbols do not.
func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
