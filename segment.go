package autonbsp

import (
	"regexp"
	"strings"
)

// segKind classifies one slice of the input string.
type segKind int

const (
	segText   segKind = iota // prose eligible for replacement
	segMarkup                // tags, comments and raw element content
)

// segment is one slice of the input. Concatenating the text of all
// segments in order reproduces the input exactly.
type segment struct {
	kind segKind
	text string
}

// rawTextClose locates the closing tag of elements whose content is
// character data and must never be rewritten.
var rawTextClose = map[string]*regexp.Regexp{
	"script":   regexp.MustCompile(`(?i)</script\s*>`),
	"style":    regexp.MustCompile(`(?i)</style\s*>`),
	"pre":      regexp.MustCompile(`(?i)</pre\s*>`),
	"code":     regexp.MustCompile(`(?i)</code\s*>`),
	"textarea": regexp.MustCompile(`(?i)</textarea\s*>`),
}

// segmentMarkup splits s into text and markup segments. Tags are
// scanned quote-aware, so attribute values may contain ">"; a "<" that
// does not open a tag, comment or declaration stays text ("5 < 6").
// An unterminated construct at end of input becomes one markup segment,
// leaving its content alone.
func segmentMarkup(s string) []segment {
	var segs []segment
	textStart := 0
	i := 0
	for i < len(s) {
		if s[i] != '<' || !opensMarkup(s, i) {
			i++
			continue
		}
		if textStart < i {
			segs = append(segs, segment{segText, s[textStart:i]})
		}
		end, name, ok := scanTag(s, i)
		if !ok {
			segs = append(segs, segment{segMarkup, s[i:]})
			return segs
		}
		segs = append(segs, segment{segMarkup, s[i:end]})
		i = end
		textStart = i
		if re := rawTextClose[name]; re != nil {
			loc := re.FindStringIndex(s[i:])
			if loc == nil {
				segs = append(segs, segment{segMarkup, s[i:]})
				return segs
			}
			segs = append(segs, segment{segMarkup, s[i : i+loc[1]]})
			i += loc[1]
			textStart = i
		}
	}
	if textStart < len(s) {
		segs = append(segs, segment{segText, s[textStart:]})
	}
	return segs
}

// opensMarkup reports whether the "<" at s[i] starts a tag, closing
// tag, comment, declaration or processing instruction.
func opensMarkup(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	c := s[i+1]
	return isASCIILetter(c) || c == '/' || c == '!' || c == '?'
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// scanTag scans the markup construct opening at s[i] and returns the
// index just past it, plus the lowercase element name when the
// construct is an opening tag. ok is false when the construct never
// terminates.
func scanTag(s string, i int) (end int, name string, ok bool) {
	if strings.HasPrefix(s[i:], "<!--") {
		j := strings.Index(s[i+4:], "-->")
		if j < 0 {
			return 0, "", false
		}
		return i + 4 + j + 3, "", true
	}
	var quote byte
	for j := i + 1; j < len(s); j++ {
		c := s[j]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			if isASCIILetter(s[i+1]) && s[j-1] != '/' {
				name = tagName(s[i+1 : j])
			}
			return j + 1, name, true
		}
	}
	return 0, "", false
}

// tagName extracts the element name from the inside of an opening tag,
// lowercased for the rawTextClose lookup.
func tagName(s string) string {
	for j := 0; j < len(s); j++ {
		switch s[j] {
		case ' ', '\t', '\n', '\f', '\r', '/':
			return strings.ToLower(s[:j])
		}
	}
	return strings.ToLower(s)
}
