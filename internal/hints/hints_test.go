package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForRulesNotFound(t *testing.T) {
	t.Parallel()

	t.Run("always suggests the flag", func(t *testing.T) {
		t.Parallel()

		hint := ForRulesNotFound(nil)
		if !strings.Contains(hint, "hint:") {
			t.Error("expected hint prefix")
		}
		if !strings.Contains(hint, "--rules") {
			t.Error("expected --rules suggestion")
		}
	})

	t.Run("suggests user config path when searched", func(t *testing.T) {
		t.Parallel()

		userPath := filepath.Join("/home/user/.config", "autonbsp", "corporate.yaml")
		hint := ForRulesNotFound([]string{"corporate.yaml", userPath})

		if !strings.Contains(hint, userPath) {
			t.Errorf("hint = %q, want user config path suggestion", hint)
		}
	})

	t.Run("ignores non-config paths", func(t *testing.T) {
		t.Parallel()

		hint := ForRulesNotFound([]string{"corporate.yaml", "corporate.yml"})
		if strings.Contains(hint, "or create") {
			t.Errorf("hint = %q, want no create suggestion", hint)
		}
	})
}

func TestForUnknownLanguage(t *testing.T) {
	t.Parallel()

	hint := ForUnknownLanguage([]string{"cs", "de", "en", "sk"})
	if !strings.Contains(hint, "cs, de, en, sk") {
		t.Errorf("hint = %q, want language list", hint)
	}

	if got := ForUnknownLanguage(nil); got != "" {
		t.Errorf("ForUnknownLanguage(nil) = %q, want empty", got)
	}
}

func TestForInPlaceMarkdown(t *testing.T) {
	t.Parallel()

	hint := ForInPlaceMarkdown()
	if !strings.Contains(hint, "--output") {
		t.Errorf("hint = %q, want --output suggestion", hint)
	}
}

func TestForDisableNames(t *testing.T) {
	t.Parallel()

	hint := ForDisableNames([]string{"articles", "units"})
	if !strings.Contains(hint, "articles, units") {
		t.Errorf("hint = %q, want name list", hint)
	}

	if got := ForDisableNames(nil); got != "" {
		t.Errorf("ForDisableNames(nil) = %q, want empty", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := format("do the thing"); got != "\n  hint: do the thing" {
		t.Errorf("format() = %q", got)
	}
}
