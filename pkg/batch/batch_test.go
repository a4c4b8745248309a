package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func TestRunAggregatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	movAxBx := []byte{0x89, 0xD8} // mov ax, bx
	jmpSelf := []byte{0xEB, 0xFE} // jmp $

	files := []Job{
		{Path: writeTempFile(t, dir, "a.bin", movAxBx)},
		{Path: writeTempFile(t, dir, "b.bin", jmpSelf)},
	}

	wp := NewWorkerPool(2)
	summaries := wp.Run(files, Options{})

	if len(summaries) != 2 {
		t.Fatalf("Run() returned %d summaries, want 2", len(summaries))
	}
	if summaries[0].Instructions != 1 || summaries[1].Instructions != 1 {
		t.Errorf("summaries = %+v, want 1 instruction each", summaries)
	}
	if !summaries[0].Clean() || !summaries[1].Clean() {
		t.Errorf("summaries = %+v, want fully consumed", summaries)
	}
	if int(wp.Processed()) != 2 {
		t.Errorf("Processed() = %d, want 2", wp.Processed())
	}
}

func TestRunWritesOutputFiles(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeTempFile(t, dir, "prog.bin", []byte{0x90})

	wp := NewWorkerPool(1)
	wp.Run([]Job{{Path: path}}, Options{OutputDir: outDir})

	out := filepath.Join(outDir, "prog.bin.asm")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if len(data) == 0 {
		t.Error("output file is empty")
	}
}

func TestRunReportsMissingFile(t *testing.T) {
	wp := NewWorkerPool(1)
	summaries := wp.Run([]Job{{Path: "/nonexistent/path.bin"}}, Options{})
	if len(summaries) != 1 || summaries[0].Error == "" {
		t.Errorf("summaries = %+v, want an error for missing file", summaries)
	}
}
