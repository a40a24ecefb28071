// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForRulesNotFound returns hints for rule file not found errors.
// Suggests the --rules flag and creating a rule file in the user config
// directory when one of the searched paths points there.
func ForRulesNotFound(searchedPaths []string) string {
	hint := "use --rules /path/to/rules.yaml"

	sep := string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"autonbsp"+sep) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownLanguage returns a hint listing the languages that carry
// built-in rules. Wildcard rules still apply to any code, so this is
// informational, not an error.
func ForUnknownLanguage(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in rules exist for: " + strings.Join(available, ", "))
}

// ForInPlaceMarkdown explains why -w cannot be combined with -m.
func ForInPlaceMarkdown() string {
	return format("markdown mode produces HTML; use --output instead of --write")
}

// ForDisableNames returns a hint listing valid --disable pass names.
func ForDisableNames(valid []string) string {
	if len(valid) == 0 {
		return ""
	}
	return format("valid names: " + strings.Join(valid, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
