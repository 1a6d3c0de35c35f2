package stub

import (
	"testing"

	"github.com/wippyai/wasi-stub/wasm"
)

func TestInsertCanonicalPosition(t *testing.T) {
	p := newPipeline(Config{}.withDefaults())
	p.out = []wasm.Section{
		{ID: wasm.SectionType},
		{ID: wasm.SectionImport},
		{ID: wasm.SectionCustom},
		{ID: wasm.SectionExport},
	}

	p.insert(wasm.Section{ID: wasm.SectionFunction})

	ids := make([]byte, len(p.out))
	for i, s := range p.out {
		ids[i] = s.ID
	}
	// Function lands before Export; the custom section does not anchor
	// anything.
	want := []byte{wasm.SectionType, wasm.SectionImport, wasm.SectionCustom, wasm.SectionFunction, wasm.SectionExport}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("section ids = %v, want %v", ids, want)
		}
	}
}

func TestInsertAppendsWhenLast(t *testing.T) {
	p := newPipeline(Config{}.withDefaults())
	p.out = []wasm.Section{
		{ID: wasm.SectionType},
		{ID: wasm.SectionExport},
	}

	p.insert(wasm.Section{ID: wasm.SectionCode})

	if p.out[len(p.out)-1].ID != wasm.SectionCode {
		t.Errorf("code section should be appended last, got %v", p.out)
	}
}
