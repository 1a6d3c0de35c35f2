package wasm

// Section is one raw section of a module: its ID byte and payload bytes,
// without the size prefix. Sections whose contents the rewrite does not
// interpret are carried through as-is.
type Section struct {
	Data []byte
	ID   byte
}

// FuncType represents a WebAssembly function signature with parameter and
// result types.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// Equal reports whether two signatures have the same parameter and result
// types.
func (ft FuncType) Equal(other FuncType) bool {
	if len(ft.Params) != len(other.Params) || len(ft.Results) != len(other.Results) {
		return false
	}
	for i := range ft.Params {
		if ft.Params[i] != other.Params[i] {
			return false
		}
	}
	for i := range ft.Results {
		if ft.Results[i] != other.Results[i] {
			return false
		}
	}
	return true
}

// ValType represents a WebAssembly value type.
// See constants.go for ValI32, ValI64, ValF32, ValF64, etc.
type ValType byte

func (v ValType) String() string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	case ValV128:
		return "v128"
	case ValFuncRef:
		return "funcref"
	case ValExtern:
		return "externref"
	default:
		return "unknown"
	}
}

// Import represents one entry of the import section.
//
// Raw holds the entry's original bytes (module name through descriptor), so
// pass-through imports can be re-emitted without re-encoding. TypeIdx is only
// meaningful when Kind is KindFunc.
type Import struct {
	Module  string
	Name    string
	Raw     []byte
	TypeIdx uint32
	Kind    byte
}

// IsFunc reports whether the import is a function import.
func (i Import) IsFunc() bool {
	return i.Kind == KindFunc
}
