package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("markdown mode expects .md or .markdown files")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputNotDirectory = errors.New("--output must be a directory when processing multiple files")
)

// maxWorkers bounds --workers. Transformation is CPU-bound, so larger
// pools only add scheduling overhead.
const maxWorkers = 64

// textExtensions are the files picked up when walking a directory.
var textExtensions = map[string]bool{
	".html":  true,
	".htm":   true,
	".xhtml": true,
	".txt":   true,
}

// markdownExtensions are the files picked up in markdown mode.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// FileToProcess represents a single file to process.
type FileToProcess struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands the input arguments into concrete files with
// their output destinations. Explicit files are taken as given;
// directories are walked for matching extensions.
func discoverFiles(inputs []string, flags *cliFlags) ([]FileToProcess, error) {
	var files []FileToProcess
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}

		if !info.IsDir() {
			if flags.markdown {
				if err := validateMarkdownExtension(input); err != nil {
					return nil, err
				}
			}
			files = append(files, FileToProcess{
				InputPath:  input,
				OutputPath: resolveOutputPath(input, flags, ""),
			})
			continue
		}

		walked, err := walkDir(input, flags)
		if err != nil {
			return nil, err
		}
		files = append(files, walked...)
	}

	if flags.output != "" && len(files) > 1 && looksLikeFile(flags.output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDirectory, flags.output)
	}
	return files, nil
}

// walkDir collects matching files under root.
func walkDir(root string, flags *cliFlags) ([]FileToProcess, error) {
	extensions := textExtensions
	if flags.markdown {
		extensions = markdownExtensions
	}

	var files []FileToProcess
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !extensions[filepath.Ext(path)] {
			return nil
		}
		files = append(files, FileToProcess{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, flags, root),
		})
		return nil
	})
	return files, err
}

// resolveOutputPath maps an input file to its destination. In-place mode
// writes back to the source; markdown mode swaps the extension to .html;
// a directory --output mirrors the input layout underneath it. An empty
// result means stdout.
func resolveOutputPath(inputPath string, flags *cliFlags, baseInputDir string) string {
	switch {
	case flags.write:
		return inputPath
	case flags.output == "":
		return ""
	}

	name := filepath.Base(inputPath)
	if flags.markdown {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".html"
	}

	if looksLikeFile(flags.output) {
		return flags.output
	}
	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(flags.output, filepath.Dir(relPath), name)
		}
	}
	return filepath.Join(flags.output, name)
}

// looksLikeFile reports whether an --output value names a file rather
// than a directory: an existing path answers directly, otherwise having
// an extension decides.
func looksLikeFile(path string) bool {
	if info, err := os.Stat(path); err == nil {
		return !info.IsDir()
	}
	return filepath.Ext(path) != ""
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !markdownExtensions[filepath.Ext(path)] {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > environment > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}

	// Auto-calculate from GOMAXPROCS (adjusted by automaxprocs in containers).
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
