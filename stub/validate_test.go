package stub_test

import (
	"context"
	"testing"

	"github.com/wippyai/wasi-stub/stub"
	"github.com/wippyai/wasi-stub/wasm"
)

func TestValidatorAcceptsEmptyModule(t *testing.T) {
	v := stub.NewValidator()
	if err := v.Validate(context.Background(), wasm.EncodeModule(nil)); err != nil {
		t.Errorf("empty module should validate: %v", err)
	}
}

func TestValidatorRejectsGarbage(t *testing.T) {
	v := stub.NewValidator()
	if err := v.Validate(context.Background(), []byte{0x00, 0x61, 0x73}); err == nil {
		t.Error("expected validation error")
	}
}

func TestValidatorRejectsIllTypedBody(t *testing.T) {
	// A function declared () -> i32 whose body is just "end" leaves the
	// stack empty.
	module := wasm.EncodeModule([]wasm.Section{
		wasm.EncodeTypeSection([]wasm.FuncType{{Results: []wasm.ValType{wasm.ValI32}}}),
		wasm.EncodeFunctionSection([]uint32{0}),
		wasm.EncodeCodeSection([][]byte{{0x00, wasm.OpEnd}}),
	})

	v := stub.NewValidator()
	if err := v.Validate(context.Background(), module); err == nil {
		t.Error("expected validation error for ill-typed body")
	}
}
