package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.html")

	if err := writeFileAtomic(name, []byte("<!DOCTYPE html>")); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<!DOCTYPE html>" {
		t.Fatalf("content mismatch: %q", data)
	}

	// no temporary files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the output file, got %d entries", len(entries))
	}
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.html")

	if err := os.WriteFile(name, []byte("old"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := writeFileAtomic(name, []byte("new")); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}
	data, _ := os.ReadFile(name)
	if string(data) != "new" {
		t.Fatalf("content mismatch: %q", data)
	}
}
