// Package fileproc provides concurrent file processing utilities.
package fileproc

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/panbanda/funcspace/pkg/source"
)

// ProcessingError represents an error that occurred while processing a file.
type ProcessingError struct {
	Path string
	Err  error
}

func (e ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e ProcessingError) Unwrap() error {
	return e.Err
}

// ProcessingErrors collects multiple file processing errors.
type ProcessingErrors struct {
	Errors []ProcessingError
	mu     sync.Mutex
}

// Add appends an error to the collection (thread-safe).
func (e *ProcessingErrors) Add(path string, err error) {
	e.mu.Lock()
	e.Errors = append(e.Errors, ProcessingError{Path: path, Err: err})
	e.mu.Unlock()
}

// HasErrors returns true if any errors were collected.
func (e *ProcessingErrors) HasErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.Errors) > 0
}

// Error implements the error interface.
func (e *ProcessingErrors) Error() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d files failed to process (first: %v)", len(e.Errors), e.Errors[0])
}

// DefaultWorkerMultiplier is the multiplier applied to NumCPU for worker count.
// 2x is optimal for mixed I/O and CGO workloads.
const DefaultWorkerMultiplier = 2

// ProgressFunc is called after each file is processed.
type ProgressFunc func(path string)

// Workers returns n, or the default worker count when n <= 0.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU() * DefaultWorkerMultiplier
}

// MapFiles processes files in parallel, calling fn for each file. Results
// are returned in the order of files; files whose fn failed are left out
// and reported in the returned errors, which is nil when every file
// succeeded. Files not started before ctx is cancelled fail with the
// context error.
func MapFiles[T any](
	ctx context.Context,
	files []string,
	maxWorkers int,
	fn func(ctx context.Context, path string) (T, error),
	onProgress ProgressFunc,
) ([]T, *ProcessingErrors) {
	if len(files) == 0 {
		return nil, nil
	}

	results := make([]T, len(files))
	ok := make([]bool, len(files))
	errs := &ProcessingErrors{}

	p := pool.New().WithMaxGoroutines(Workers(maxWorkers)).WithContext(ctx)
	for i, path := range files {
		p.Go(func(ctx context.Context) error {
			if onProgress != nil {
				defer onProgress(path)
			}

			select {
			case <-ctx.Done():
				errs.Add(path, ctx.Err())
				return nil
			default:
			}

			result, err := fn(ctx, path)
			if err != nil {
				errs.Add(path, err)
				return nil // Don't stop pool on individual file errors
			}
			results[i] = result
			ok[i] = true
			return nil
		})
	}
	_ = p.Wait()

	out := make([]T, 0, len(files))
	for i := range results {
		if ok[i] {
			out = append(out, results[i])
		}
	}
	if !errs.HasErrors() {
		return out, nil
	}
	return out, errs
}

// MapSourceFiles reads every file from src and processes the contents in
// parallel. Files larger than maxSize bytes are skipped when maxSize > 0.
// Reads happen sequentially so sources backed by a git tree are never
// accessed concurrently.
func MapSourceFiles[T any](
	ctx context.Context,
	files []string,
	src source.ContentSource,
	maxSize int64,
	maxWorkers int,
	fn func(path string, content []byte) (T, error),
	onProgress ProgressFunc,
) ([]T, *ProcessingErrors) {
	contents := make(map[string][]byte, len(files))
	readable := make([]string, 0, len(files))
	errs := &ProcessingErrors{}
	for _, path := range files {
		content, err := src.Read(path)
		if err != nil {
			errs.Add(path, err)
			continue
		}
		if maxSize > 0 && int64(len(content)) > maxSize {
			continue
		}
		contents[path] = content
		readable = append(readable, path)
	}

	results, procErrs := MapFiles(ctx, readable, maxWorkers, func(_ context.Context, path string) (T, error) {
		return fn(path, contents[path])
	}, onProgress)
	if procErrs != nil {
		errs.Errors = append(errs.Errors, procErrs.Errors...)
	}
	if !errs.HasErrors() {
		return results, nil
	}
	return results, errs
}
