// Package report builds machine-readable run summaries for a
// disassembly pass and serializes them as JSON.
package report

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
)

// Summary describes the outcome of disassembling a single file.
type Summary struct {
	File          string `json:"file"`
	BytesTotal    int    `json:"bytes_total"`
	BytesConsumed int    `json:"bytes_consumed"`
	Instructions  int    `json:"instructions"`
	Labels        int    `json:"labels"`
	UnparsedBytes int    `json:"unparsed_bytes"`
	Error         string `json:"error,omitempty"`
}

// Clean reports whether the run consumed its entire input.
func (s Summary) Clean() bool { return s.Error == "" && s.UnparsedBytes == 0 }

// Aggregate collects Summaries from one or more concurrent disassembly
// runs.
type Aggregate struct {
	mu        sync.Mutex
	summaries []Summary
}

// NewAggregate creates an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{}
}

// Add records one file's Summary.
func (a *Aggregate) Add(s Summary) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.summaries = append(a.summaries, s)
}

// Summaries returns a copy of all recorded summaries, sorted by file
// name.
func (a *Aggregate) Summaries() []Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Summary, len(a.summaries))
	copy(out, a.summaries)
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out
}

// WriteJSON serializes summaries as an indented JSON array to path.
func WriteJSON(path string, summaries []Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
