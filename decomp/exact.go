package decomp

// shannonOrExact implements spec.md §4.6's `-e` fallback: for residues
// of ≤4 variables it invokes the exact 2-LUT oracle; larger residues
// are Shannon-expanded on the first (MSB) variable, each cofactor
// recursed on independently and recombined with a 2-input-gate
// multiplexer (NOT/AND/OR primitives only, per the "2-input LUTs when
// possible" discipline).
func shannonOrExact(s *Session, f string, vars []int, depth int, o Options) (int, error) {
	if len(vars) <= 4 {
		return exactSynthesize(s, f, vars, depth, o)
	}

	half := len(f) / 2
	f1 := f[:half] // variable[0] == 1 cofactor
	f0 := f[half:] // variable[0] == 0 cofactor

	id1, err := decomposeValue(s, f1, vars[1:], depth+1, o)
	if err != nil {
		return 0, err
	}
	id0, err := decomposeValue(s, f0, vars[1:], depth+1, o)
	if err != nil {
		return 0, err
	}

	return muxNode(s, s.leaf(vars[0]), id0, id1), nil
}

// exactSynthesize is the ≤4-variable exact oracle spec.md §4.6
// describes as returning "a minimum 2-LUT network for the residue".
// This implementation is a practical approximation, not a verified-
// minimum synthesizer (see DESIGN.md): it tries bi-decomposition first
// (which already enumerates every AND/OR/XOR variable split, cheap at
// this size), and falls back to unconditional Shannon expansion — which
// always terminates, bottoming out at the n≤1 base cases in
// decomposeValue — when no bi-decomposition exists.
func exactSynthesize(s *Session, f string, vars []int, depth int, o Options) (int, error) {
	if id, err := biDecomposeValue(s, f, vars, depth, o); err == nil {
		return id, nil
	}

	half := len(f) / 2
	f1 := f[:half]
	f0 := f[half:]

	id1, err := decomposeValue(s, f1, vars[1:], depth+1, o)
	if err != nil {
		return 0, err
	}
	id0, err := decomposeValue(s, f0, vars[1:], depth+1, o)
	if err != nil {
		return 0, err
	}

	return muxNode(s, s.leaf(vars[0]), id0, id1), nil
}
