package wasm

import (
	"github.com/wippyai/wasi-stub/wasm/internal/binary"
)

// EncodeModule serializes an ordered section sequence back into a binary
// module. Section payloads are written as-is, so Split followed by
// EncodeModule reproduces the input byte-for-byte.
func EncodeModule(sections []Section) []byte {
	w := binary.NewWriter()

	w.WriteU32LE(Magic)
	w.WriteU32LE(Version)

	for _, s := range sections {
		writeSection(w, s.ID, s.Data)
	}

	return w.Bytes()
}

func writeSection(w *binary.Writer, id byte, payload []byte) {
	w.Byte(id)
	w.WriteU32(uint32(len(payload)))
	w.WriteBytes(payload)
}

// EncodeImportSection builds an import section from entries carrying their
// original raw bytes.
func EncodeImportSection(imports []Import) Section {
	sec := binary.NewWriter()
	sec.WriteU32(uint32(len(imports)))
	for _, imp := range imports {
		sec.WriteBytes(imp.Raw)
	}
	return Section{ID: SectionImport, Data: sec.Bytes()}
}

// EncodeFunctionSection builds a function section from type indices.
func EncodeFunctionSection(typeIdxs []uint32) Section {
	sec := binary.NewWriter()
	sec.WriteU32(uint32(len(typeIdxs)))
	for _, typeIdx := range typeIdxs {
		sec.WriteU32(typeIdx)
	}
	return Section{ID: SectionFunction, Data: sec.Bytes()}
}

// EncodeCodeSection builds a code section from per-entry body bytes (each
// without its size prefix, as returned by ParseCodeSection).
func EncodeCodeSection(bodies [][]byte) Section {
	sec := binary.NewWriter()
	sec.WriteU32(uint32(len(bodies)))
	for _, body := range bodies {
		sec.WriteU32(uint32(len(body)))
		sec.WriteBytes(body)
	}
	return Section{ID: SectionCode, Data: sec.Bytes()}
}

// EncodeTypeSection builds a type section from function signatures. The
// rewrite itself passes the original type section through untouched; this is
// used by tests to construct modules.
func EncodeTypeSection(types []FuncType) Section {
	sec := binary.NewWriter()
	sec.WriteU32(uint32(len(types)))
	for _, ft := range types {
		sec.Byte(FuncTypeByte)
		writeValTypes(sec, ft.Params)
		writeValTypes(sec, ft.Results)
	}
	return Section{ID: SectionType, Data: sec.Bytes()}
}

func writeValTypes(w *binary.Writer, types []ValType) {
	w.WriteU32(uint32(len(types)))
	for _, t := range types {
		w.Byte(byte(t))
	}
}

// FuncImport encodes a function import entry with its raw bytes populated,
// for building import sections from scratch.
func FuncImport(module, name string, typeIdx uint32) Import {
	w := binary.NewWriter()
	w.WriteName(module)
	w.WriteName(name)
	w.Byte(KindFunc)
	w.WriteU32(typeIdx)
	return Import{Module: module, Name: name, Kind: KindFunc, TypeIdx: typeIdx, Raw: w.Bytes()}
}
