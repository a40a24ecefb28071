package autonbsp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// placeholderRunes are private-use candidates for the in-flight marker
// stand-in. Passes insert the stand-in and the real marker is
// substituted once per segment at the end, so no pass ever rescans
// marker text. The first candidate absent from the segment is used, so
// text that already contains private-use runes is not corrupted.
var placeholderRunes = []rune{
	'', '', '', '',
	'', '', '', '',
}

func pickPlaceholder(text string) rune {
	for _, r := range placeholderRunes {
		if !strings.ContainsRune(text, r) {
			return r
		}
	}
	return placeholderRunes[0]
}

// transformer holds the compiled patterns of the enabled passes.
// A nil pattern means the pass is off or its token list is empty.
type transformer struct {
	afterWords     *regexp.Regexp
	beforeWords    *regexp.Regexp
	beforeMonths   *regexp.Regexp
	afterNumbers   bool
	betweenNumbers bool
	beforeUnits    *regexp.Regexp
}

func (t *transformer) enabled() bool {
	return t.afterWords != nil || t.beforeWords != nil || t.beforeMonths != nil ||
		t.afterNumbers || t.betweenNumbers || t.beforeUnits != nil
}

// apply runs the passes over one text segment in fixed order. Order
// matters: each pass rewrites the previous pass's output, and a
// whitespace run claimed by an earlier pass is gone before a later one
// could claim it.
func (t *transformer) apply(text, marker string) string {
	ph := pickPlaceholder(text)
	s := text
	if t.afterWords != nil {
		s = replaceAfterWords(s, t.afterWords, ph)
	}
	if t.beforeWords != nil {
		s = replaceBeforeWords(s, t.beforeWords, ph)
	}
	if t.beforeMonths != nil {
		s = replaceNumberWord(s, t.beforeMonths, ph, true)
	}
	if t.afterNumbers {
		s = replaceAfterNumbers(s, ph)
	}
	if t.betweenNumbers {
		s = replaceBetweenNumbers(s, ph)
	}
	if t.beforeUnits != nil {
		s = replaceNumberWord(s, t.beforeUnits, ph, false)
	}
	if s == text {
		return text
	}
	return strings.ReplaceAll(s, string(ph), marker)
}

// wordBefore reports whether the rune immediately before s[i] is a
// word rune. Nothing precedes the start of a segment.
func wordBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return wordRune(r)
}

// writeToken writes matched token text with whitespace runs inside a
// multiword token ("z. B.", "Ing. arch.") rewritten to the placeholder.
// The compound stays unbreakable throughout, and no plain space
// survives for a second Replace call to pick up.
func writeToken(b *strings.Builder, tok string, ph rune) {
	if !strings.ContainsAny(tok, " \t\n\f\r") {
		b.WriteString(tok)
		return
	}
	inSpace := false
	for _, r := range tok {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			if !inSpace {
				b.WriteRune(ph)
			}
			inSpace = true
		default:
			b.WriteRune(r)
			inSpace = false
		}
	}
}

// replaceAfterWords rewrites "token<ws>" to "token<ph>" for tokens
// starting at a word boundary. A rejected candidate resumes one rune
// past its start, so a shorter or later alternative overlapping it is
// still found.
func replaceAfterWords(s string, re *regexp.Regexp, ph rune) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(s) {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if wordBefore(s, start) {
			_, w := utf8.DecodeRuneInString(s[start:])
			pos = start + w
			continue
		}
		tokEnd := pos + loc[3]
		b.WriteString(s[last:start])
		writeToken(&b, s[start:tokEnd], ph)
		b.WriteRune(ph)
		last, pos = end, end
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// replaceBeforeWords rewrites "<ws>token" to "<ph>token". The scan
// resumes at the token's end, in front of the boundary group, so an
// immediately following candidate is not starved.
func replaceBeforeWords(s string, re *regexp.Regexp, ph rune) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(s) {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		tokStart, tokEnd := pos+loc[2], pos+loc[3]
		b.WriteString(s[last:start])
		b.WriteRune(ph)
		writeToken(&b, s[tokStart:tokEnd], ph)
		last, pos = tokEnd, tokEnd
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// replaceNumberWord rewrites "numeral<ws>token" to "numeral<ph>token",
// shared by the month and unit passes. leftCheck guards the numeral's
// left word boundary.
func replaceNumberWord(s string, re *regexp.Regexp, ph rune, leftCheck bool) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(s) {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if leftCheck && wordBefore(s, start) {
			_, w := utf8.DecodeRuneInString(s[start:])
			pos = start + w
			continue
		}
		numEnd := pos + loc[3]
		tokStart, tokEnd := pos+loc[4], pos+loc[5]
		b.WriteString(s[last:numEnd])
		b.WriteRune(ph)
		writeToken(&b, s[tokStart:tokEnd], ph)
		last, pos = tokEnd, tokEnd
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// replaceAfterNumbers binds a lone digit to whatever follows its
// whitespace run.
func replaceAfterNumbers(s string, ph rune) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(s) {
		loc := afterNumbersRe.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if wordBefore(s, start) {
			pos = start + 1
			continue
		}
		b.WriteString(s[last : start+1])
		b.WriteRune(ph)
		last, pos = end, end
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// replaceBetweenNumbers binds digit groups to each other. The right
// digit is context only: the scan resumes at it, so a run like
// "1 000 000" binds at every gap.
func replaceBetweenNumbers(s string, ph rune) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(s) {
		loc := betweenNumbersRe.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		leftEnd, rightStart := pos+loc[3], pos+loc[4]
		b.WriteString(s[last:leftEnd])
		b.WriteRune(ph)
		last, pos = rightStart, rightStart
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
