package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/wippyai/wasi-stub/wasm/internal/binary"
)

// Parsing errors returned by Split.
var (
	ErrInvalidMagic   = errors.New("invalid wasm magic number")
	ErrInvalidVersion = errors.New("invalid wasm version")
)

// Split splits a WebAssembly binary into its ordered raw sections. The
// payload bytes of each section are returned untouched, so a module
// reassembled from the same slice is byte-identical to the input.
//
// Split checks the header and the canonical section ordering, but does not
// interpret section contents. Use the Parse* functions for the typed views.
func Split(data []byte) ([]Section, error) {
	r := binary.NewReader(bytes.NewReader(data))

	magic, err := r.ReadU32LE()
	if err != nil {
		return nil, r.WrapError("header", err)
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}

	version, err := r.ReadU32LE()
	if err != nil {
		return nil, r.WrapError("header", err)
	}
	if version != Version {
		return nil, ErrInvalidVersion
	}

	var sections []Section

	// Track section ordering using canonical order, not section IDs.
	var lastSectionOrder int

	for {
		sectionID, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, r.WrapError("section header", err)
		}

		// Custom sections can appear anywhere.
		if sectionID != SectionCustom {
			order := sectionOrder(sectionID)
			if order <= lastSectionOrder {
				return nil, fmt.Errorf("section %d appears out of order", sectionID)
			}
			lastSectionOrder = order
		}

		sectionSize, err := r.ReadU32()
		if err != nil {
			return nil, r.WrapError("section size", err)
		}

		sectionData, err := r.ReadBytes(int(sectionSize))
		if err != nil {
			return nil, r.WrapError("section data", err)
		}

		sections = append(sections, Section{ID: sectionID, Data: sectionData})
	}

	return sections, nil
}

// ParseTypeSection parses a type section payload into function signatures.
//
// Only plain function types (0x60) are supported. GC type forms (rec groups,
// sub types, struct/array types) fail with an error: the rewrite needs
// concrete param/result value types to synthesize stub bodies.
func ParseTypeSection(data []byte) ([]FuncType, error) {
	r := binary.NewReader(bytes.NewReader(data))
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	types := make([]FuncType, count)
	for i := uint32(0); i < count; i++ {
		form, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if form != FuncTypeByte {
			return nil, fmt.Errorf("unsupported type form 0x%02x (only plain function types are handled)", form)
		}
		params, err := readValTypes(r)
		if err != nil {
			return nil, err
		}
		results, err := readValTypes(r)
		if err != nil {
			return nil, err
		}
		types[i] = FuncType{Params: params, Results: results}
	}
	return types, nil
}

func readValTypes(r *binary.Reader) ([]ValType, error) {
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	types := make([]ValType, count)
	for i := uint32(0); i < count; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == byte(ValRefNull) || b == byte(ValRef) {
			return nil, fmt.Errorf("unsupported reference type 0x%02x in signature", b)
		}
		types[i] = ValType(b)
	}
	return types, nil
}

// ParseImportSection parses an import section payload. Each entry keeps its
// raw bytes so it can be re-emitted verbatim.
func ParseImportSection(data []byte) ([]Import, error) {
	r := binary.NewReader(bytes.NewReader(data))
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	imports := make([]Import, count)
	for i := uint32(0); i < count; i++ {
		start := r.Position()

		module, err := r.ReadName()
		if err != nil {
			return nil, err
		}
		name, err := r.ReadName()
		if err != nil {
			return nil, err
		}
		kind, err := r.ReadByte()
		if err != nil {
			return nil, err
		}

		imp := Import{Module: module, Name: name, Kind: kind}

		switch kind {
		case KindFunc:
			imp.TypeIdx, err = r.ReadU32()
			if err != nil {
				return nil, err
			}
		case KindTable:
			if err := skipTableType(r); err != nil {
				return nil, err
			}
		case KindMemory:
			if err := skipLimits(r); err != nil {
				return nil, err
			}
		case KindGlobal:
			if err := skipGlobalType(r); err != nil {
				return nil, err
			}
		case KindTag:
			if _, err := r.ReadByte(); err != nil { // attribute
				return nil, err
			}
			if _, err := r.ReadU32(); err != nil { // type index
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown import kind: %d", kind)
		}

		imp.Raw = data[start:r.Position()]
		imports[i] = imp
	}
	return imports, nil
}

func skipLimits(r *binary.Reader) error {
	flags, err := r.ReadByte()
	if err != nil {
		return err
	}
	if flags&LimitsMemory64 != 0 {
		if _, err := r.ReadU64(); err != nil {
			return err
		}
		if flags&LimitsHasMax != 0 {
			if _, err := r.ReadU64(); err != nil {
				return err
			}
		}
		return nil
	}
	if _, err := r.ReadU32(); err != nil {
		return err
	}
	if flags&LimitsHasMax != 0 {
		if _, err := r.ReadU32(); err != nil {
			return err
		}
	}
	return nil
}

func skipTableType(r *binary.Reader) error {
	elemType, err := r.ReadByte()
	if err != nil {
		return err
	}
	// GC reference element types carry a heap type immediate.
	if elemType == byte(ValRefNull) || elemType == byte(ValRef) {
		if _, err := r.ReadS64(); err != nil {
			return err
		}
	}
	return skipLimits(r)
}

func skipGlobalType(r *binary.Reader) error {
	valType, err := r.ReadByte()
	if err != nil {
		return err
	}
	if valType == byte(ValRefNull) || valType == byte(ValRef) {
		if _, err := r.ReadS64(); err != nil {
			return err
		}
	}
	_, err = r.ReadByte() // mutability
	return err
}

// ParseFunctionSection parses a function section payload into type indices.
func ParseFunctionSection(data []byte) ([]uint32, error) {
	r := binary.NewReader(bytes.NewReader(data))
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	typeIdxs := make([]uint32, count)
	for i := uint32(0); i < count; i++ {
		typeIdxs[i], err = r.ReadU32()
		if err != nil {
			return nil, err
		}
	}
	return typeIdxs, nil
}

// ParseCodeSection splits a code section payload into per-entry body bytes.
// Each returned slice is the entry without its size prefix (local
// declarations through the terminating end opcode), untouched.
func ParseCodeSection(data []byte) ([][]byte, error) {
	r := binary.NewReader(bytes.NewReader(data))
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	bodies := make([][]byte, count)
	for i := uint32(0); i < count; i++ {
		size, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		start := r.Position()
		if start+int(size) > len(data) {
			return nil, fmt.Errorf("code entry %d: size %d exceeds section", i, size)
		}
		if _, err := r.ReadBytes(int(size)); err != nil {
			return nil, err
		}
		bodies[i] = data[start : start+int(size)]
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("code section: %d trailing bytes after %d entries", r.Len(), count)
	}
	return bodies, nil
}
