package stub

import (
	stderrors "errors"
	"reflect"
	"testing"

	wasierrors "github.com/wippyai/wasi-stub/errors"
	"github.com/wippyai/wasi-stub/wasm"
)

func testPipeline(types ...wasm.FuncType) *pipeline {
	p := newPipeline(Config{TargetModule: DefaultTargetModule}.withDefaults())
	p.types = types
	return p
}

func TestPartitionSuffix(t *testing.T) {
	p := testPipeline(
		wasm.FuncType{Params: []wasm.ValType{wasm.ValI32}},
		wasm.FuncType{Results: []wasm.ValType{wasm.ValI32}},
	)
	imports := []wasm.Import{
		wasm.FuncImport("env", "log", 0),
		wasm.FuncImport(DefaultTargetModule, "proc_exit", 0),
		wasm.FuncImport(DefaultTargetModule, "fd_close", 1),
	}

	candidates, passthrough, err := p.partition(imports)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	if len(passthrough) != 1 || passthrough[0].Name != "log" {
		t.Errorf("unexpected passthrough: %+v", passthrough)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Name != "proc_exit" || candidates[1].Name != "fd_close" {
		t.Errorf("candidates out of order: %+v", candidates)
	}
	if !candidates[1].Type.Equal(p.types[1]) {
		t.Errorf("candidate type not resolved: %+v", candidates[1])
	}
}

func TestPartitionIdempotent(t *testing.T) {
	p := testPipeline(wasm.FuncType{})
	imports := []wasm.Import{
		wasm.FuncImport("env", "log", 0),
		wasm.FuncImport(DefaultTargetModule, "proc_exit", 0),
	}

	c1, pt1, err := p.partition(imports)
	if err != nil {
		t.Fatalf("first partition: %v", err)
	}
	c2, pt2, err := p.partition(imports)
	if err != nil {
		t.Fatalf("second partition: %v", err)
	}
	if !reflect.DeepEqual(c1, c2) || !reflect.DeepEqual(pt1, pt2) {
		t.Error("partition is not idempotent")
	}
}

func TestPartitionRejectsImportAfterCandidate(t *testing.T) {
	p := testPipeline(wasm.FuncType{})
	imports := []wasm.Import{
		wasm.FuncImport(DefaultTargetModule, "fd_write", 0),
		wasm.FuncImport("env", "log", 0),
	}

	_, _, err := p.partition(imports)
	if !stderrors.Is(err, wasierrors.ErrUnsupportedImportLayout) {
		t.Fatalf("expected ErrUnsupportedImportLayout, got %v", err)
	}
}

func TestPartitionNonFuncTargetImport(t *testing.T) {
	p := testPipeline(wasm.FuncType{})

	// A non-function import from the target namespace is not a candidate.
	imports := []wasm.Import{
		{Module: DefaultTargetModule, Name: "mem", Kind: wasm.KindMemory, Raw: []byte{0x00}},
		wasm.FuncImport(DefaultTargetModule, "proc_exit", 0),
	}
	candidates, passthrough, err := p.partition(imports)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	if len(candidates) != 1 || len(passthrough) != 1 {
		t.Fatalf("unexpected partition: %d candidates, %d passthrough", len(candidates), len(passthrough))
	}

	// After a candidate it still violates the suffix precondition.
	_, _, err = p.partition([]wasm.Import{imports[1], imports[0]})
	if !stderrors.Is(err, wasierrors.ErrUnsupportedImportLayout) {
		t.Fatalf("expected ErrUnsupportedImportLayout, got %v", err)
	}
}

func TestPartitionTypeIndexOutOfRange(t *testing.T) {
	p := testPipeline() // empty type table
	_, _, err := p.partition([]wasm.Import{
		wasm.FuncImport(DefaultTargetModule, "fd_write", 7),
	})
	if err == nil {
		t.Fatal("expected error for out-of-range type index")
	}
}
