package wasistub

import (
	"context"

	"github.com/wippyai/wasi-stub/stub"
)

// Stub rewrites a module so that function imports from the target namespace
// (stub.DefaultTargetModule unless overridden in cfg) become local stub
// functions. See stub.Transform for the full contract.
func Stub(ctx context.Context, wasmBytes []byte, cfg stub.Config) (*stub.Result, error) {
	return stub.Transform(ctx, wasmBytes, cfg)
}
