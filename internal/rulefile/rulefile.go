// Package rulefile loads user rule overrides from YAML files. A rule
// file has the same shape as the built-in rule data: language code to
// category to token list. Decoding is strict, so a typo in a category
// name fails instead of silently dropping the list.
package rulefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jan-herman/autonbsp/internal/fileutil"
	"github.com/jan-herman/autonbsp/internal/langrules"
)

// Sentinel errors for rule file operations.
var (
	ErrEmptyName = errors.New("rule file name cannot be empty")
	ErrNotFound  = errors.New("rule file not found")
	ErrParse     = errors.New("failed to parse rule file")
)

// configDirName is the per-user directory searched for named rule files.
const configDirName = "autonbsp"

// Load reads rule overrides from a file path or a bare name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a name and searched in standard locations.
// Returns an error if the file is not found (no silent fallback).
func Load(nameOrPath string) (map[string]map[string][]string, error) {
	path, err := Resolve(nameOrPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- rule path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading rule file: %w", err)
	}

	rules, err := langrules.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return rules, nil
}

// Resolve maps a name or path to the rule file path that Load would
// read, without reading it.
func Resolve(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return "", ErrEmptyName
	}
	if fileutil.IsFilePath(nameOrPath) {
		return nameOrPath, nil
	}
	return searchPath(nameOrPath)
}

// SearchedPaths lists the locations a bare name would be resolved
// against, in search order. Used for hints when nothing is found.
func SearchedPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// searchPath finds a rule file by name. Tries the current directory,
// then the user config directory, with .yaml before .yml.
func searchPath(name string) (string, error) {
	tried := SearchedPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(tried, ", "))
}
