package decomp

// hybrid66Value implements the 66-LUT mode (spec.md §4.6 "66-LUT"):
// residues of ≤6 variables are emitted as a single LUT node directly;
// larger residues attempt Strong DSD (whose recursive sub-calls stay in
// LutHybrid66 mode, so they themselves bottom out at ≤6-input LUTs),
// falling back to bi-decomposition of the remaining blocks.
func hybrid66Value(s *Session, f string, vars []int, depth int, o Options) (int, error) {
	if len(vars) <= 6 {
		children := make([]int, len(vars))
		for i, v := range vars {
			children[i] = s.leaf(v)
		}
		return s.gate(f, children), nil
	}

	if id, err := strongDSD(s, f, vars, depth, o); err == nil {
		return id, nil
	}

	return biDecomposeValue(s, f, vars, depth, o)
}
