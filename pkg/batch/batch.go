// Package batch runs the disassembler over many input files concurrently,
// distributing files to a fixed pool of worker goroutines.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"de8086/pkg/decode"
	"de8086/pkg/report"
)

// Job names one input file to disassemble.
type Job struct {
	Path string
}

// Options controls a batch run.
type Options struct {
	NumWorkers int
	Verbose    bool
	OutputDir  string // when non-empty, each file's text output is written here
}

// WorkerPool disassembles a fixed list of files across NumWorkers
// goroutines, collecting one report.Summary per file.
type WorkerPool struct {
	NumWorkers int
	Results    *report.Aggregate

	processed atomic.Int64
}

// NewWorkerPool creates a pool with the given worker count, defaulting
// to the host's CPU count when n <= 0.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return &WorkerPool{
		NumWorkers: n,
		Results:    report.NewAggregate(),
	}
}

// Run disassembles every job, writing text output under opts.OutputDir
// when set, and returns the aggregated summaries sorted by file name.
func (wp *WorkerPool) Run(jobs []Job, opts Options) []report.Summary {
	ch := make(chan Job, len(jobs))
	for _, j := range jobs {
		ch <- j
	}
	close(ch)

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range ch {
				wp.Results.Add(wp.processJob(job, opts))
				wp.processed.Add(1)
			}
		}()
	}
	wg.Wait()

	return wp.Results.Summaries()
}

// Processed returns how many jobs have completed so far.
func (wp *WorkerPool) Processed() int64 { return wp.processed.Load() }

func (wp *WorkerPool) processJob(job Job, opts Options) report.Summary {
	summary := report.Summary{File: job.Path}

	input, err := os.ReadFile(job.Path)
	if err != nil {
		summary.Error = err.Error()
		return summary
	}
	summary.BytesTotal = len(input)

	result, err := decode.Run(input, opts.Verbose)
	if err != nil {
		summary.Error = err.Error()
		return summary
	}

	summary.BytesConsumed = result.ConsumedBytes
	summary.Instructions = result.Instructions
	summary.Labels = result.Labels
	summary.UnparsedBytes = result.UnparsedBytes

	if opts.OutputDir != "" {
		outPath := filepath.Join(opts.OutputDir, filepath.Base(job.Path)+".asm")
		body := append([]byte(decode.Banner(job.Path)), result.Text...)
		if opts.Verbose && result.UnparsedBytes > 0 {
			body = append(body, []byte(decode.UnparsedWarning(input, result.ConsumedBytes))...)
		}
		if err := os.WriteFile(outPath, body, 0o644); err != nil {
			summary.Error = fmt.Errorf("writing output: %w", err).Error()
		}
	}

	return summary
}
