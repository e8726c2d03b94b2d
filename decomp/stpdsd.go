package decomp

// decomposeValue is the shared recursive engine behind Decompose,
// BiDecompose, and Decompose66: it handles the base cases (constant
// function, single variable) common to every Mode, then dispatches to
// the mode-specific recognizer, falling back to Shannon expansion /
// the exact 2-LUT oracle when enabled.
func decomposeValue(s *Session, f string, vars []int, depth int, o Options) (int, error) {
	s.noteDepth(depth)

	if ch, ok := isConstant(f); ok {
		return s.gate(string([]byte{ch}), nil), nil
	}
	if len(vars) == 1 {
		if f == "10" {
			return s.leaf(vars[0]), nil
		}
		// f == "01": the complement of the variable.
		return s.gate(bitsNot, []int{s.leaf(vars[0])}), nil
	}

	var (
		id  int
		err error
	)
	switch o.Mode {
	case StrongDsd:
		id, err = strongDSD(s, f, vars, depth, o)
	case Mixed:
		id, err = stpDSD(s, f, vars, depth, o)
		if err != nil {
			id, err = strongDSD(s, f, vars, depth, o)
		}
	case BiDec:
		id, err = biDecomposeValue(s, f, vars, depth, o)
	case LutHybrid66:
		id, err = hybrid66Value(s, f, vars, depth, o)
	default: // StpDsd
		id, err = stpDSD(s, f, vars, depth, o)
	}
	if err == nil {
		return id, nil
	}
	if o.Fallback == ShannonPlusExact2LUT {
		return shannonOrExact(s, f, vars, depth, o)
	}

	return 0, err
}

// stpDSD implements structural-matrix block cases 1-4 of spec.md §4.6,
// trying split sizes s = 1..n/2 and taking the smallest s that matches
// any case. Case 5 (constant function) never reaches here: decomposeValue
// handles it before dispatching.
func stpDSD(s *Session, f string, vars []int, depth int, o Options) (int, error) {
	n := len(vars)
	for split := 1; split <= n/2; split++ {
		a := analyzeSplit(f, n, split)

		switch {
		case len(a.nonConstSet) == 0 && len(a.constKinds) == 2:
			// Case 1: independent of the low `split` variables.
			return stpDsdCase1(s, a, vars, split, depth, o)

		case len(a.nonConstSet) == 1 && len(a.constKinds) == 1:
			// Case 2: AND-like / OR-like cut.
			return stpDsdCase2(s, a, vars, split, depth, o)

		case len(a.nonConstSet) == 1 && len(a.constKinds) == 0:
			// Case 3: independent of the high n-split variables.
			return decomposeValue(s, a.nonConstSet[0], vars[len(vars)-split:], depth+1, o)

		case len(a.nonConstSet) == 2 && len(a.constKinds) == 0 && complementary(a.nonConstSet[0], a.nonConstSet[1]):
			// Case 4: XOR-like cut.
			return stpDsdCase4(s, a, vars, split, depth, o)
		}
	}

	return 0, ErrDecompositionFailed
}

// complementary reports whether b is the bitwise complement of a.
func complementary(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			return false
		}
	}

	return true
}

// highIndicator builds a 0/1 string over the high (n-split) variables,
// one bit per block in ascending block-index order reinterpreted in the
// blockPattern MSB-first convention: position p corresponds to block
// b = numBlocks-1-p, mirroring blockPattern's own index convention.
func highIndicator(a blockAnalysis, positive func(b int) bool) string {
	buf := make([]byte, a.numBlocks)
	for p := 0; p < a.numBlocks; p++ {
		b := a.numBlocks - 1 - p
		if positive(b) {
			buf[p] = '1'
		} else {
			buf[p] = '0'
		}
	}

	return string(buf)
}

// stpDsdCase1 recurses on the high n-split variables with a new truth
// table that is 0 on constant-0 blocks and 1 on constant-1 blocks.
func stpDsdCase1(s *Session, a blockAnalysis, vars []int, split, depth int, o Options) (int, error) {
	hi := highIndicator(a, func(b int) bool { return a.blockKindOf[b] == blockOne })

	return decomposeValue(s, hi, vars[:len(vars)-split], depth+1, o)
}

// stpDsdCase2 builds AND(h, g) when the constant blocks are 0, or
// OR(h, g) (with h inverted relative to the non-constant block) when
// the constant blocks are 1.
func stpDsdCase2(s *Session, a blockAnalysis, vars []int, split, depth int, o Options) (int, error) {
	g := a.nonConstSet[0]
	lowID, err := decomposeValue(s, g, vars[len(vars)-split:], depth+1, o)
	if err != nil {
		return 0, err
	}

	var hi string
	var gateBits string
	if a.constKinds[blockZero] {
		hi = highIndicator(a, func(b int) bool { return a.blockKindOf[b] == blockMixed })
		gateBits = bitsAnd
	} else {
		hi = highIndicator(a, func(b int) bool { return a.blockKindOf[b] != blockMixed })
		gateBits = bitsOr
	}

	hiID, err := decomposeValue(s, hi, vars[:len(vars)-split], depth+1, o)
	if err != nil {
		return 0, err
	}

	return s.gate(gateBits, []int{hiID, lowID}), nil
}

// stpDsdCase4 builds XOR(h, g0), where g0 is the first non-constant
// pattern and h indicates which blocks hold the complementary pattern.
func stpDsdCase4(s *Session, a blockAnalysis, vars []int, split, depth int, o Options) (int, error) {
	g0 := a.nonConstSet[0]
	lowID, err := decomposeValue(s, g0, vars[len(vars)-split:], depth+1, o)
	if err != nil {
		return 0, err
	}

	hi := highIndicator(a, func(b int) bool { return a.blockPattern[b] != g0 })
	hiID, err := decomposeValue(s, hi, vars[:len(vars)-split], depth+1, o)
	if err != nil {
		return 0, err
	}

	return s.gate(bitsXor, []int{hiID, lowID}), nil
}
