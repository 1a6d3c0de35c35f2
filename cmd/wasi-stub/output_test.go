package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeriveOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "app.wasm")

	got := deriveOutputPath(input)
	want := filepath.Join(dir, "app - stubbed.wasm")
	if got != want {
		t.Errorf("deriveOutputPath = %q, want %q", got, want)
	}
}

func TestDeriveOutputPathCollisions(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "app.wasm")

	for _, name := range []string{"app - stubbed.wasm", "app - stubbed (1).wasm"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := deriveOutputPath(input)
	want := filepath.Join(dir, "app - stubbed (2).wasm")
	if got != want {
		t.Errorf("deriveOutputPath = %q, want %q", got, want)
	}
}

func TestWriteOutputCopiesPermissions(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "app.wasm")
	output := filepath.Join(dir, "out.wasm")

	if err := os.WriteFile(input, []byte{1, 2, 3}, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := writeOutput(input, output, []byte{4, 5, 6}); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o750 {
		t.Errorf("output permissions = %o, want 750", info.Mode().Perm())
	}
}
