package stub

import (
	"bytes"
	stderrors "errors"
	"testing"

	wasierrors "github.com/wippyai/wasi-stub/errors"
	"github.com/wippyai/wasi-stub/wasm"
)

func TestSynthBodyNoResults(t *testing.T) {
	body, err := synthBody(Candidate{Type: wasm.FuncType{}})
	if err != nil {
		t.Fatalf("synthBody: %v", err)
	}
	if !bytes.Equal(body, []byte{0x00, wasm.OpEnd}) {
		t.Errorf("body = %x, want 00 0b", body)
	}
}

func TestSynthBodyI32Result(t *testing.T) {
	c := Candidate{Type: wasm.FuncType{
		Params:  []wasm.ValType{wasm.ValI32, wasm.ValI32, wasm.ValI32, wasm.ValI32},
		Results: []wasm.ValType{wasm.ValI32},
	}}
	body, err := synthBody(c)
	if err != nil {
		t.Fatalf("synthBody: %v", err)
	}

	want := []byte{
		0x04, // four local groups, one per parameter
		0x01, byte(wasm.ValI32),
		0x01, byte(wasm.ValI32),
		0x01, byte(wasm.ValI32),
		0x01, byte(wasm.ValI32),
		wasm.OpI32Const, 0xCC, 0x00, // i32.const 76
		wasm.OpEnd,
	}
	if !bytes.Equal(body, want) {
		t.Errorf("body = %x, want %x", body, want)
	}
}

func TestSynthBodyMixedParams(t *testing.T) {
	c := Candidate{Type: wasm.FuncType{
		Params: []wasm.ValType{wasm.ValI64, wasm.ValF32},
	}}
	body, err := synthBody(c)
	if err != nil {
		t.Fatalf("synthBody: %v", err)
	}
	want := []byte{
		0x02,
		0x01, byte(wasm.ValI64),
		0x01, byte(wasm.ValF32),
		wasm.OpEnd,
	}
	if !bytes.Equal(body, want) {
		t.Errorf("body = %x, want %x", body, want)
	}
}

func TestSynthBodyUnsupportedResults(t *testing.T) {
	unsupported := []wasm.FuncType{
		{Results: []wasm.ValType{wasm.ValI64}},
		{Results: []wasm.ValType{wasm.ValF32}},
		{Results: []wasm.ValType{wasm.ValF64}},
		{Results: []wasm.ValType{wasm.ValI32, wasm.ValI32}},
	}
	for _, ft := range unsupported {
		_, err := synthBody(Candidate{Module: "m", Name: "f", Type: ft})
		if !stderrors.Is(err, wasierrors.ErrUnsupportedSignature) {
			t.Errorf("results %v: expected ErrUnsupportedSignature, got %v", ft.Results, err)
		}
	}
}
