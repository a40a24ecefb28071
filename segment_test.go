package autonbsp

import (
	"slices"
	"strings"
	"testing"
)

func TestSegmentMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []segment
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "plain text",
			input:    "k domu a zpět",
			expected: []segment{{segText, "k domu a zpět"}},
		},
		{
			name:  "inline element splits text",
			input: "a <b>bold</b> c",
			expected: []segment{
				{segText, "a "},
				{segMarkup, "<b>"},
				{segText, "bold"},
				{segMarkup, "</b>"},
				{segText, " c"},
			},
		},
		{
			name:  "double-quoted attribute may contain closing bracket",
			input: `<a href="x > y">t</a>`,
			expected: []segment{
				{segMarkup, `<a href="x > y">`},
				{segText, "t"},
				{segMarkup, "</a>"},
			},
		},
		{
			name:  "single-quoted attribute may contain closing bracket",
			input: `<a href='x > y'>t</a>`,
			expected: []segment{
				{segMarkup, `<a href='x > y'>`},
				{segText, "t"},
				{segMarkup, "</a>"},
			},
		},
		{
			name:     "comparison signs stay text",
			input:    "5 < 6 and 2 > 1",
			expected: []segment{{segText, "5 < 6 and 2 > 1"}},
		},
		{
			name:  "comment",
			input: "x <!-- a > b --> y",
			expected: []segment{
				{segText, "x "},
				{segMarkup, "<!-- a > b -->"},
				{segText, " y"},
			},
		},
		{
			name:     "doctype declaration",
			input:    "<!DOCTYPE html>",
			expected: []segment{{segMarkup, "<!DOCTYPE html>"}},
		},
		{
			name:     "processing instruction",
			input:    `<?xml version="1.0"?>`,
			expected: []segment{{segMarkup, `<?xml version="1.0"?>`}},
		},
		{
			name:  "unterminated tag becomes markup",
			input: `text <a href="x`,
			expected: []segment{
				{segText, "text "},
				{segMarkup, `<a href="x`},
			},
		},
		{
			name:  "script content is markup",
			input: "a<script>if (x < 1) { y(); }</script>b",
			expected: []segment{
				{segText, "a"},
				{segMarkup, "<script>"},
				{segMarkup, "if (x < 1) { y(); }</script>"},
				{segText, "b"},
			},
		},
		{
			name:  "pre content with attributes is markup",
			input: `x <pre class="y">k domu</pre> z`,
			expected: []segment{
				{segText, "x "},
				{segMarkup, `<pre class="y">`},
				{segMarkup, "k domu</pre>"},
				{segText, " z"},
			},
		},
		{
			name:  "raw element name is case-insensitive",
			input: "<CODE>a b</CODE>t",
			expected: []segment{
				{segMarkup, "<CODE>"},
				{segMarkup, "a b</CODE>"},
				{segText, "t"},
			},
		},
		{
			name:  "self-closing code tag has no raw content",
			input: "<code/>a b",
			expected: []segment{
				{segMarkup, "<code/>"},
				{segText, "a b"},
			},
		},
		{
			name:  "unterminated raw element swallows the rest",
			input: "<pre>a b",
			expected: []segment{
				{segMarkup, "<pre>"},
				{segMarkup, "a b"},
			},
		},
		{
			name:  "closing tag with space before bracket ends raw content",
			input: "<code>x</code >y",
			expected: []segment{
				{segMarkup, "<code>"},
				{segMarkup, "x</code >"},
				{segText, "y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := segmentMarkup(tt.input)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("segmentMarkup(%q) = %v, want %v", tt.input, got, tt.expected)
			}

			// Segmentation is lossless whatever the input.
			var b strings.Builder
			for _, seg := range got {
				b.WriteString(seg.text)
			}
			if b.String() != tt.input {
				t.Errorf("segments reassemble to %q, want %q", b.String(), tt.input)
			}
		})
	}
}

func TestSegmentMarkupLossless(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"<",
		"<<>>",
		"a < b <i>c</i",
		"<a href=\"unterminated",
		"<!-- unterminated",
		"<pre><code>nested</code></pre>",
		"text with trailing <",
		" <b> </b>",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, seg := range segmentMarkup(input) {
			b.WriteString(seg.text)
		}
		if b.String() != input {
			t.Errorf("segments reassemble to %q, want %q", b.String(), input)
		}
	}
}
