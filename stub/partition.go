package stub

import (
	"fmt"

	"go.uber.org/zap"

	wasierrors "github.com/wippyai/wasi-stub/errors"
	"github.com/wippyai/wasi-stub/wasm"
)

// partition splits the import list into stub candidates and pass-through
// imports, both in original order.
//
// A candidate is a function import whose module name equals the target
// namespace. Non-function imports from the target namespace are passed
// through: only function imports participate in the function index space,
// so only they can be replaced.
//
// Removing candidates from the import list shifts the index of every
// function import that follows them. The rewrite never renumbers call sites,
// so a pass-through import appearing after a candidate makes a correct
// rewrite impossible and fails with ErrUnsupportedImportLayout.
func (p *pipeline) partition(imports []wasm.Import) ([]Candidate, []wasm.Import, error) {
	var candidates []Candidate
	var passthrough []wasm.Import

	for _, imp := range imports {
		if imp.Module == p.cfg.TargetModule && imp.IsFunc() {
			if int(imp.TypeIdx) >= len(p.types) {
				return nil, nil, wasierrors.DecodeFailed("import",
					fmt.Errorf("import %s::%s references type %d, module has %d types",
						imp.Module, imp.Name, imp.TypeIdx, len(p.types)))
			}
			p.logger.Info("stubbing import",
				zap.String("module", imp.Module),
				zap.String("name", imp.Name))
			candidates = append(candidates, Candidate{
				Module:  imp.Module,
				Name:    imp.Name,
				TypeIdx: imp.TypeIdx,
				Type:    p.types[imp.TypeIdx],
			})
			continue
		}
		if len(candidates) > 0 {
			return nil, nil, wasierrors.UnsupportedLayout(imp.Module, imp.Name)
		}
		passthrough = append(passthrough, imp)
	}

	return candidates, passthrough, nil
}
