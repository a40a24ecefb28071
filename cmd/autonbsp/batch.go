package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jan-herman/autonbsp"
	"github.com/jan-herman/autonbsp/internal/fileutil"
	"github.com/jan-herman/autonbsp/internal/markdown"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for I/O during processing.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// processor applies the optional markdown rendering and then the engine
// to one piece of content. Both stages are safe for concurrent use, so
// one processor serves the whole worker pool.
type processor struct {
	engine   *autonbsp.Engine
	renderer *markdown.Renderer
}

func (p *processor) process(ctx context.Context, content string) (string, error) {
	if p.renderer != nil {
		html, err := p.renderer.Render(ctx, content)
		if err != nil {
			return "", err
		}
		content = html
	}
	return p.engine.Replace(content), nil
}

// ProcessResult holds the outcome of a single file.
type ProcessResult struct {
	InputPath  string
	OutputPath string
	Unchanged  bool
	Err        error
	Duration   time.Duration
}

// processStdin transforms standard input onto standard output, or into
// the --output file when one is named.
func processStdin(ctx context.Context, proc *processor, output string, env *Environment) error {
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	out, err := proc.process(ctx, string(data))
	if err != nil {
		return err
	}

	if output != "" {
		if err := fileutil.WriteFileAtomic(output, []byte(out), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if _, err := io.WriteString(env.Stdout, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// processToStdout transforms files sequentially in argument order and
// concatenates the results onto standard output.
func processToStdout(ctx context.Context, proc *processor, files []FileToProcess, env *Environment) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}

		out, err := proc.process(ctx, string(content))
		if err != nil {
			return fmt.Errorf("%s: %w", f.InputPath, err)
		}

		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}

// processBatch transforms files concurrently with a bounded worker pool.
func processBatch(ctx context.Context, proc *processor, files []FileToProcess, workers int) []ProcessResult {
	if len(files) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ProcessResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ProcessResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = processFile(ctx, proc, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile transforms one file and writes the result atomically.
// In-place runs that change nothing skip the write and keep the mtime.
func processFile(ctx context.Context, proc *processor, f FileToProcess) ProcessResult {
	start := time.Now()
	result := ProcessResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	out, err := proc.process(ctx, string(content))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if f.OutputPath == f.InputPath && out == string(content) {
		result.Unchanged = true
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(out), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// printResults reports per-file outcomes and returns the failure count.
func printResults(results []ProcessResult, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		switch {
		case verbose && r.Unchanged:
			fmt.Fprintf(env.Stdout, "%s unchanged (%v)\n", r.InputPath, r.Duration.Round(time.Millisecond))
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		case r.Unchanged:
			// Nothing to say about files that needed nothing.
		default:
			fmt.Fprintf(env.Stdout, "Wrote %s\n", r.OutputPath)
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
