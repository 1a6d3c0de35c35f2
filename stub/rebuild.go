package stub

// The function index space is the concatenation of imported functions (in
// import order) and local functions (in declaration order). Stubs must occupy
// exactly the indices their imports held, so they are declared before every
// original local function, in their original relative order. Original bodies
// are carried as raw bytes; nothing inside them is rewritten.

// rebuildFunctions builds the new function section's type indices: one
// declaration per candidate, then the module's original declarations.
func rebuildFunctions(candidates []Candidate, original []uint32) []uint32 {
	typeIdxs := make([]uint32, 0, len(candidates)+len(original))
	for _, c := range candidates {
		typeIdxs = append(typeIdxs, c.TypeIdx)
	}
	return append(typeIdxs, original...)
}

// rebuildCode builds the new code section's entries: one synthesized body per
// candidate, then the original bodies untouched.
func rebuildCode(candidates []Candidate, original [][]byte) ([][]byte, error) {
	bodies := make([][]byte, 0, len(candidates)+len(original))
	for _, c := range candidates {
		body, err := synthBody(c)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return append(bodies, original...), nil
}
