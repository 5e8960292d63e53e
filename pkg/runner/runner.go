package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/occur/pkg/textdetect"
)

// Runner orchestrates multi-file processing with a Processor.
type Runner struct {
	// Processor handles each file's content.
	Processor Processor
}

// New creates a Runner with the given processor.
func New(processor Processor) *Runner {
	return &Runner{Processor: processor}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in deterministic (path) order regardless of worker
// completion order. Context cancellation is respected.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; rebuild path order afterwards.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads one file and hands it to the processor, short-circuiting
// binary content when opts.SkipBinary is set.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileOutcome{Path: path, Error: fmt.Errorf("read file: %w", err)}
	}

	if opts.SkipBinary && textdetect.IsBinary(content) {
		return FileOutcome{
			Path:   path,
			Result: &FileResult{Path: path, SkippedBinary: true},
		}
	}

	result, err := r.Processor.Process(ctx, path, content)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}
	result.Language = textdetect.Language(path, content)

	return FileOutcome{Path: path, Result: result}
}
