package markdown

import "regexp"

// Precompiled patterns, applied in order before rendering.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Normalize prepares Markdown for rendering: \r\n and \r become \n,
// and runs of blank lines collapse to a single blank line.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}
