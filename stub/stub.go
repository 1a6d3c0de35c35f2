package stub

import (
	"context"

	"go.uber.org/zap"

	wasierrors "github.com/wippyai/wasi-stub/errors"
	"github.com/wippyai/wasi-stub/wasm"
)

// DefaultTargetModule is the import namespace stubbed when Config.TargetModule
// is empty.
const DefaultTargetModule = "wasi_snapshot_preview1"

// Candidate is a function import selected for stubbing.
type Candidate struct {
	Module  string
	Name    string
	Type    wasm.FuncType
	TypeIdx uint32
}

// Config configures the rewrite.
type Config struct {
	// TargetModule is the import namespace whose function imports are
	// replaced. Defaults to DefaultTargetModule.
	TargetModule string

	// Logger receives one entry per stubbed import. Defaults to a no-op
	// logger.
	Logger *zap.Logger

	// Validator checks the input and output buffers. Defaults to the
	// wazero-backed validator from NewValidator.
	Validator Validator
}

func (cfg Config) withDefaults() Config {
	if cfg.TargetModule == "" {
		cfg.TargetModule = DefaultTargetModule
	}
	if cfg.Logger == nil {
		cfg.Logger = Logger()
	}
	if cfg.Validator == nil {
		cfg.Validator = NewValidator()
	}
	return cfg
}

// Result holds the rewritten module and the imports that were stubbed.
type Result struct {
	// Output is the assembled, validated module.
	Output []byte

	// Stubbed lists the replaced imports in their original order.
	Stubbed []Candidate
}

// Transform rewrites a module so that function imports from the target
// namespace become local stub functions. The input is validated before any
// work and the output before it is returned; on any error no output is
// produced.
//
// Transform holds no state between calls and is safe to invoke concurrently
// on independent inputs.
func Transform(ctx context.Context, data []byte, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()

	if err := cfg.Validator.Validate(ctx, data); err != nil {
		return nil, wasierrors.InputNotValid(err)
	}

	sections, err := wasm.Split(data)
	if err != nil {
		return nil, wasierrors.DecodeFailed("module", err)
	}

	p := newPipeline(cfg)
	out, err := p.run(sections)
	if err != nil {
		return nil, err
	}

	encoded := wasm.EncodeModule(out)
	if err := cfg.Validator.Validate(ctx, encoded); err != nil {
		return nil, wasierrors.OutputInvalid(err)
	}

	return &Result{Output: encoded, Stubbed: p.stubbed}, nil
}
