// Package wasm provides section-level WebAssembly binary manipulation.
//
// Unlike a full module decoder, this package splits a binary into an ordered
// sequence of raw sections and only interprets the sections a rewrite needs:
// types, imports, function declarations, and code bodies. Everything else is
// carried as opaque bytes, so reassembling an unmodified section sequence
// reproduces the input exactly.
//
//	sections, err := wasm.Split(data)
//	// inspect or replace individual sections
//	out := wasm.EncodeModule(sections)
package wasm
