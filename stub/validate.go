package stub

import (
	"context"

	"github.com/tetratelabs/wazero"
)

// Validator checks a byte buffer for structural validity as a WebAssembly
// module. It is applied to the input before any rewriting and to the
// assembled output before it is returned.
type Validator interface {
	Validate(ctx context.Context, module []byte) error
}

// NewValidator returns the default Validator, backed by a wazero interpreter
// runtime. Compilation performs full structural validation (type references,
// instruction typing, section consistency) without executing anything.
func NewValidator() Validator {
	return wazeroValidator{}
}

type wazeroValidator struct{}

func (wazeroValidator) Validate(ctx context.Context, module []byte) error {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, module)
	if err != nil {
		return err
	}
	return compiled.Close(ctx)
}
