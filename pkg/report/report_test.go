package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestAggregateSortsByFile(t *testing.T) {
	a := NewAggregate()
	a.Add(Summary{File: "b.bin", Instructions: 2})
	a.Add(Summary{File: "a.bin", Instructions: 1})

	got := a.Summaries()
	if len(got) != 2 || got[0].File != "a.bin" || got[1].File != "b.bin" {
		t.Errorf("Summaries() = %+v, want sorted by file", got)
	}
}

func TestSummaryClean(t *testing.T) {
	clean := Summary{UnparsedBytes: 0}
	if !clean.Clean() {
		t.Error("Clean() = false, want true for fully consumed run")
	}
	dirty := Summary{UnparsedBytes: 3}
	if dirty.Clean() {
		t.Error("Clean() = true, want false when bytes remain unparsed")
	}
	errored := Summary{Error: "boom"}
	if errored.Clean() {
		t.Error("Clean() = true, want false when Error is set")
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	want := []Summary{{File: "x.bin", Instructions: 4, BytesTotal: 8, BytesConsumed: 8}}

	if err := WriteJSON(path, want); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got []Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
