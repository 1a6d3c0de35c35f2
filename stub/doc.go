// Package stub rewrites WebAssembly modules so that function imports from a
// target namespace are replaced with synthesized local implementations.
//
// The rewrite drops the selected imports from the import section and declares
// one local function per dropped import, with the same type, placed before
// the module's original functions. Because imported functions are numbered
// before local ones, this keeps every function index stable, and no call
// instruction anywhere in the module needs rewriting. That only works when
// the stubbed imports sit at the end of the import list; any other layout
// fails with ErrUnsupportedImportLayout.
//
// Stub bodies discard their arguments. A stub with no results is empty; a
// stub with a single i32 result returns the constant 76. Other result types
// cannot be satisfied and fail with ErrUnsupportedSignature.
package stub
