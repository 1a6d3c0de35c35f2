// Package wasistub rewrites WebAssembly modules to remove their dependency
// on a host interface by replacing its function imports with local stubs.
//
// # Architecture Overview
//
//	wasistub/            Root package with the high-level Stub entry point
//	├── stub/            The transformation engine: partition, synthesize, reassemble
//	├── wasm/            Section-level binary codec (split, typed views, re-encode)
//	├── errors/          Structured error types (phase + kind)
//	└── cmd/wasi-stub/   Command line tool
//
// # Quick Start
//
// Stub the WASI preview1 imports of a module:
//
//	result, err := wasistub.Stub(ctx, wasmBytes, stub.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.wasm", result.Output, 0o644)
//
// Each stubbed function keeps its original signature and index, so every
// call site in the module keeps working; only the behavior is gone. Stubs
// with an i32 result return 76.
package wasistub
