package stub

import (
	"go.uber.org/zap"

	wasierrors "github.com/wippyai/wasi-stub/errors"
	"github.com/wippyai/wasi-stub/wasm"
)

// pipeline carries the state threaded through one rewrite: the type table
// collected from the type section, the partitioned imports, and the output
// section sequence. All fields are scoped to a single Transform call.
type pipeline struct {
	cfg    Config
	logger *zap.Logger

	types   []wasm.FuncType
	stubbed []Candidate

	sawFunctions bool
	sawCode      bool

	out []wasm.Section
}

func newPipeline(cfg Config) *pipeline {
	return &pipeline{cfg: cfg, logger: cfg.Logger}
}

// run drives a single pass over the section sequence. Type, import, function
// and code sections are transformed; every other section is appended to the
// output unchanged. Split has already enforced the canonical section order,
// so each stage can rely on the tables collected by earlier ones.
func (p *pipeline) run(sections []wasm.Section) ([]wasm.Section, error) {
	for _, s := range sections {
		var err error
		switch s.ID {
		case wasm.SectionType:
			err = p.onTypes(s)
		case wasm.SectionImport:
			err = p.onImports(s)
		case wasm.SectionFunction:
			err = p.onFunctions(s)
		case wasm.SectionCode:
			err = p.onCode(s)
		default:
			p.out = append(p.out, s)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := p.injectMissing(); err != nil {
		return nil, err
	}
	return p.out, nil
}

// onTypes records the type table and re-emits the section unchanged.
func (p *pipeline) onTypes(s wasm.Section) error {
	types, err := wasm.ParseTypeSection(s.Data)
	if err != nil {
		return wasierrors.DecodeFailed("type", err)
	}
	p.types = types
	p.out = append(p.out, s)
	return nil
}

// onImports partitions the import list and emits a new import section holding
// only the pass-through entries. When nothing is stubbed the original bytes
// are kept, so modules without target imports round-trip unchanged.
func (p *pipeline) onImports(s wasm.Section) error {
	imports, err := wasm.ParseImportSection(s.Data)
	if err != nil {
		return wasierrors.DecodeFailed("import", err)
	}

	candidates, passthrough, err := p.partition(imports)
	if err != nil {
		return err
	}
	p.stubbed = candidates

	if len(candidates) == 0 {
		p.out = append(p.out, s)
		return nil
	}
	p.out = append(p.out, wasm.EncodeImportSection(passthrough))
	return nil
}

// onFunctions emits the rebuilt function section: stub declarations first,
// then the module's original declarations.
func (p *pipeline) onFunctions(s wasm.Section) error {
	p.sawFunctions = true
	if len(p.stubbed) == 0 {
		p.out = append(p.out, s)
		return nil
	}

	original, err := wasm.ParseFunctionSection(s.Data)
	if err != nil {
		return wasierrors.DecodeFailed("function", err)
	}
	p.out = append(p.out, wasm.EncodeFunctionSection(rebuildFunctions(p.stubbed, original)))
	return nil
}

// onCode emits the rebuilt code section: synthesized stub bodies first, then
// the original bodies as raw bytes.
func (p *pipeline) onCode(s wasm.Section) error {
	p.sawCode = true
	if len(p.stubbed) == 0 {
		p.out = append(p.out, s)
		return nil
	}

	original, err := wasm.ParseCodeSection(s.Data)
	if err != nil {
		return wasierrors.DecodeFailed("code", err)
	}
	bodies, err := rebuildCode(p.stubbed, original)
	if err != nil {
		return err
	}
	p.out = append(p.out, wasm.EncodeCodeSection(bodies))
	return nil
}

// injectMissing handles modules whose functions are all imported: such inputs
// have no function or code section, but the stubs still need somewhere to
// live. The synthesized sections are inserted at their canonical positions.
func (p *pipeline) injectMissing() error {
	if len(p.stubbed) == 0 || (p.sawFunctions && p.sawCode) {
		return nil
	}

	if !p.sawFunctions {
		p.insert(wasm.EncodeFunctionSection(rebuildFunctions(p.stubbed, nil)))
	}
	if !p.sawCode {
		bodies, err := rebuildCode(p.stubbed, nil)
		if err != nil {
			return err
		}
		p.insert(wasm.EncodeCodeSection(bodies))
	}
	return nil
}

// insert places a section before the first non-custom section that follows it
// in canonical order.
func (p *pipeline) insert(sec wasm.Section) {
	order := wasm.CanonicalOrder(sec.ID)
	at := len(p.out)
	for i, s := range p.out {
		if s.ID == wasm.SectionCustom {
			continue
		}
		if wasm.CanonicalOrder(s.ID) > order {
			at = i
			break
		}
	}
	p.out = append(p.out[:at], append([]wasm.Section{sec}, p.out[at:]...)...)
}
