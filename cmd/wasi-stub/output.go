package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// deriveOutputPath returns "<stem> - stubbed.wasm" next to the input, adding
// " (N)" with the first unused N when that name is taken.
func deriveOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	for i := 0; ; i++ {
		name := stem + " - stubbed.wasm"
		if i > 0 {
			name = fmt.Sprintf("%s - stubbed (%d).wasm", stem, i)
		}
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// writeOutput writes the rewritten module and gives it the input file's
// permission bits.
func writeOutput(inputPath, outputPath string, data []byte) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Chmod(outputPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("copy permissions: %w", err)
	}
	return nil
}
