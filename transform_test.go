package autonbsp

import (
	"strings"
	"testing"
)

// Drivers are tested with a visible placeholder; the engine swaps in
// the real marker after all passes.
const tph = '~'

func TestReplaceAfterWords(t *testing.T) {
	t.Parallel()

	re := compileAfterWords([]string{"a", "i", "k", "o", "na", "např.", "z. B."})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single token with trailing space",
			input:    "a ",
			expected: "a~",
		},
		{
			name:     "chained one-letter tokens",
			input:    "a i k domu",
			expected: "a~i~k~domu",
		},
		{
			name:     "token inside a word is rejected",
			input:    "Kia i k x",
			expected: "Kia i~k~x",
		},
		{
			name:     "word ending rejected then accepted later",
			input:    "okna a dveře",
			expected: "okna a~dveře",
		},
		{
			name:     "longer token wins over its prefix",
			input:    "např. takto",
			expected: "např.~takto",
		},
		{
			name:     "shorter token still matches alone",
			input:    "na poli",
			expected: "na~poli",
		},
		{
			name:     "case preserved",
			input:    "K domu",
			expected: "K~domu",
		},
		{
			name:     "multiword token binds inner space too",
			input:    "z. B. heute",
			expected: "z.~B.~heute",
		},
		{
			name:     "whitespace run replaced whole",
			input:    "k \t domu",
			expected: "k~domu",
		},
		{
			name:     "no match returns input",
			input:    "domu zpět",
			expected: "domu zpět",
		},
		{
			name:     "token at end without whitespace",
			input:    "šel k",
			expected: "šel k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceAfterWords(tt.input, re, tph)
			if got != tt.expected {
				t.Errorf("replaceAfterWords(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceBeforeWords(t *testing.T) {
	t.Parallel()

	re := compileBeforeWords([]string{"Ph.D.", "CSc.", "s.", "t"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "title bound to preceding name",
			input:    "Jan Novák Ph.D.",
			expected: "Jan Novák~Ph.D.",
		},
		{
			name:     "two titles in a row",
			input:    "Jan Novák Ph.D., CSc.",
			expected: "Jan Novák~Ph.D.,~CSc.",
		},
		{
			name:     "token followed by letter is rejected",
			input:    "firma s.r.o. vznikla",
			expected: "firma s.r.o. vznikla",
		},
		{
			name:     "single letter token at end",
			input:    "name t",
			expected: "name~t",
		},
		{
			name:     "no whitespace before token",
			input:    "Ph.D.",
			expected: "Ph.D.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceBeforeWords(tt.input, re, tph)
			if got != tt.expected {
				t.Errorf("replaceBeforeWords(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceNumberWordMonths(t *testing.T) {
	t.Parallel()

	re := compileBeforeMonths([]string{"ledna", "prosince"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ordinal day",
			input:    "10. ledna",
			expected: "10.~ledna",
		},
		{
			name:     "plain day number",
			input:    "10 ledna",
			expected: "10~ledna",
		},
		{
			name:     "two dates in one sentence",
			input:    "od 31. prosince do 1. ledna",
			expected: "od 31.~prosince do 1.~ledna",
		},
		{
			name:     "numeral glued to a word is rejected",
			input:    "x10. ledna",
			expected: "x10. ledna",
		},
		{
			name:     "month glued to a word is rejected",
			input:    "10. lednaX",
			expected: "10. lednaX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceNumberWord(tt.input, re, tph, true)
			if got != tt.expected {
				t.Errorf("replaceNumberWord(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceNumberWordUnits(t *testing.T) {
	t.Parallel()

	re := compileBeforeUnits([]string{"m", "mm", "kg", "%"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single digit with unit",
			input:    "5 m",
			expected: "5~m",
		},
		{
			name:     "longer unit wins over its prefix",
			input:    "5 mm",
			expected: "5~mm",
		},
		{
			name:     "unit glued to a word is rejected",
			input:    "5 mmx",
			expected: "5 mmx",
		},
		{
			name:     "multi-digit number",
			input:    "250 kg nákladu",
			expected: "250~kg nákladu",
		},
		{
			name:     "percent sign",
			input:    "sleva 30 %",
			expected: "sleva 30~%",
		},
		{
			name:     "two measurements",
			input:    "5 m a 10 kg",
			expected: "5~m a 10~kg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceNumberWord(tt.input, re, tph, false)
			if got != tt.expected {
				t.Errorf("replaceNumberWord(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceAfterNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lone digit binds to following word",
			input:    "máme 5 aut",
			expected: "máme 5~aut",
		},
		{
			name:     "digit at start of text",
			input:    "5 aut",
			expected: "5~aut",
		},
		{
			name:     "multi-digit number is left alone",
			input:    "25 aut",
			expected: "25 aut",
		},
		{
			name:     "digit after letter is left alone",
			input:    "A4 papír",
			expected: "A4 papír",
		},
		{
			name:     "trailing whitespace after digit",
			input:    "díl 3 ",
			expected: "díl 3~",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceAfterNumbers(tt.input, tph)
			if got != tt.expected {
				t.Errorf("replaceAfterNumbers(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceBetweenNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "thousands group",
			input:    "1 000",
			expected: "1~000",
		},
		{
			name:     "millions bind at every gap",
			input:    "1 000 000",
			expected: "1~000~000",
		},
		{
			name:     "single digits bind at every gap",
			input:    "1 2 3",
			expected: "1~2~3",
		},
		{
			name:     "ordinal date parts",
			input:    "10. 12. 2020",
			expected: "10.~12.~2020",
		},
		{
			name:     "decimal period on the left",
			input:    "1. 5",
			expected: "1.~5",
		},
		{
			name:     "letters between numbers block the bind",
			input:    "1 a 2",
			expected: "1 a 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceBetweenNumbers(tt.input, tph)
			if got != tt.expected {
				t.Errorf("replaceBetweenNumbers(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWriteToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{
			name:     "single word unchanged",
			token:    "např.",
			expected: "např.",
		},
		{
			name:     "inner space becomes placeholder",
			token:    "Ing. arch.",
			expected: "Ing.~arch.",
		},
		{
			name:     "inner run collapses to one placeholder",
			token:    "a \t b",
			expected: "a~b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b strings.Builder
			writeToken(&b, tt.token, tph)
			if got := b.String(); got != tt.expected {
				t.Errorf("writeToken(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

func TestPickPlaceholder(t *testing.T) {
	t.Parallel()

	if got := pickPlaceholder("plain text"); got != placeholderRunes[0] {
		t.Errorf("pickPlaceholder(plain) = %q, want %q", got, placeholderRunes[0])
	}
	if got := pickPlaceholder("has  already"); got != placeholderRunes[1] {
		t.Errorf("pickPlaceholder(with E000) = %q, want %q", got, placeholderRunes[1])
	}
}
