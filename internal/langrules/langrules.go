// Package langrules carries the built-in typographic rule lists,
// embedded as YAML and decoded strictly so a typo in the data fails
// loudly instead of dropping a list.
package langrules

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/jan-herman/autonbsp/internal/yamlutil"
)

//go:embed rules.yaml
var rulesYAML []byte

// Categories mirrors one language block of rules.yaml. The field set is
// closed: an unknown key in the file is a decode error.
type Categories struct {
	PrepositionsConjunctions []string `yaml:"prepositions_conjunctions"`
	Articles                 []string `yaml:"articles"`
	Abbreviations            []string `yaml:"abbreviations"`
	TitlesBeforeName         []string `yaml:"titles_before_name"`
	TitlesAfterName          []string `yaml:"titles_after_name"`
	Units                    []string `yaml:"units"`
	Months                   []string `yaml:"months"`
}

// lists converts a block to category-name keyed lists, skipping empty
// categories. Slices are copied so callers may keep the result.
func (c Categories) lists() map[string][]string {
	out := make(map[string][]string, 7)
	put := func(name string, tokens []string) {
		if len(tokens) > 0 {
			out[name] = append([]string(nil), tokens...)
		}
	}
	put("prepositions_conjunctions", c.PrepositionsConjunctions)
	put("articles", c.Articles)
	put("abbreviations", c.Abbreviations)
	put("titles_before_name", c.TitlesBeforeName)
	put("titles_after_name", c.TitlesAfterName)
	put("units", c.Units)
	put("months", c.Months)
	return out
}

// Parse decodes rule data in the rules.yaml shape: a mapping from
// language code to per-category token lists. The same format is
// accepted for user-supplied rule files.
func Parse(data []byte) (map[string]map[string][]string, error) {
	var raw map[string]Categories
	if err := yamlutil.UnmarshalStrict(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]map[string][]string, len(raw))
	for lang, cats := range raw {
		if lang == "" {
			return nil, errors.New("langrules: empty language key")
		}
		out[lang] = cats.lists()
	}
	return out, nil
}

var (
	once    sync.Once
	loaded  map[string]Categories
	loadErr error
)

// Load returns the built-in rule lists. The embedded file is decoded
// once; every call gets a fresh copy safe to hold and extend.
func Load() (map[string]map[string][]string, error) {
	once.Do(func() {
		var raw map[string]Categories
		if err := yamlutil.UnmarshalStrict(rulesYAML, &raw); err != nil {
			loadErr = fmt.Errorf("embedded rules: %w", err)
			return
		}
		loaded = raw
	})
	if loadErr != nil {
		return nil, loadErr
	}
	out := make(map[string]map[string][]string, len(loaded))
	for lang, cats := range loaded {
		out[lang] = cats.lists()
	}
	return out, nil
}
