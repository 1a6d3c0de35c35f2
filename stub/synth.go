package stub

import (
	"bytes"
	"strings"

	wasierrors "github.com/wippyai/wasi-stub/errors"
	"github.com/wippyai/wasi-stub/wasm"
)

// stubReturnValue is the constant every value-returning stub produces.
const stubReturnValue int32 = 76

// synthBody produces the code entry for a stub with the given signature: one
// unused local per parameter, then either nothing (no results) or the i32
// sentinel constant. The returned bytes are a complete code entry without its
// size prefix.
//
// A single value push can only satisfy a result list that is empty or exactly
// [i32]; anything else fails with ErrUnsupportedSignature.
func synthBody(c Candidate) ([]byte, error) {
	if err := checkSignature(c); err != nil {
		return nil, err
	}

	var body bytes.Buffer

	// Local declarations: one group of count 1 per parameter.
	body.Write(wasm.EncodeLEB128u(uint32(len(c.Type.Params))))
	for _, param := range c.Type.Params {
		body.Write(wasm.EncodeLEB128u(1))
		body.WriteByte(byte(param))
	}

	if len(c.Type.Results) > 0 {
		body.WriteByte(wasm.OpI32Const)
		body.Write(wasm.EncodeLEB128s(stubReturnValue))
	}
	body.WriteByte(wasm.OpEnd)

	return body.Bytes(), nil
}

func checkSignature(c Candidate) error {
	results := c.Type.Results
	if len(results) == 0 {
		return nil
	}
	if len(results) == 1 && results[0] == wasm.ValI32 {
		return nil
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.String()
	}
	return wasierrors.UnsupportedSignature(c.Module, c.Name, strings.Join(names, ", "))
}
