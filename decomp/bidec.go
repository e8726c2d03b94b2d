package decomp

// biDecomposeValue enumerates variable partitions (Γ,Λ,Θ) with
// |Γ|≥1, |Θ|≥1, Λ shared, in ascending |Λ| order (spec.md §4.6: "Minimum
// k2 wins"), and for each partition tries AND/OR/XOR until one yields a
// valid structural split F = φ(Γ,Λ) ⊛ ψ(Θ,Λ). The first success at the
// smallest |Λ| is returned (this implementation returns one solution
// rather than the full solution set spec.md allows on ties — see
// DESIGN.md).
func biDecomposeValue(s *Session, f string, vars []int, depth int, o Options) (int, error) {
	n := len(vars)
	if n < 2 {
		return 0, ErrDecompositionFailed
	}

	for lambdaSize := 0; lambdaSize <= n-2; lambdaSize++ {
		for _, lambdaIdx := range combinations(n, lambdaSize) {
			remaining := complementIdx(n, lambdaIdx)
			for gammaSize := 1; gammaSize < len(remaining); gammaSize++ {
				for _, gammaRel := range combinations(len(remaining), gammaSize) {
					gammaIdx := mapIdx(remaining, gammaRel)
					thetaIdx := complementIdxFrom(remaining, gammaIdx)

					for _, op := range []string{bitsAnd, bitsOr, bitsXor} {
						ok, phiBits, psiBits := tryBiDecompose(f, n, gammaIdx, lambdaIdx, thetaIdx, op)
						if !ok {
							continue
						}

						phiVars := append(selectVars(vars, gammaIdx), selectVars(vars, lambdaIdx)...)
						psiVars := append(selectVars(vars, thetaIdx), selectVars(vars, lambdaIdx)...)

						phiID, err := decomposeValue(s, phiBits, phiVars, depth+1, o)
						if err != nil {
							continue
						}
						psiID, err := decomposeValue(s, psiBits, psiVars, depth+1, o)
						if err != nil {
							continue
						}

						return s.gate(op, []int{phiID, psiID}), nil
					}
				}
			}
		}
	}

	return 0, ErrDecompositionFailed
}

// tryBiDecompose checks whether F restricted to the partition
// (gammaIdx, lambdaIdx, thetaIdx) admits a structural split under op,
// returning the combined truth tables for φ(Γ,Λ) and ψ(Θ,Λ) if so.
func tryBiDecompose(f string, n int, gammaIdx, lambdaIdx, thetaIdx []int, op string) (bool, string, string) {
	kG, kL, kT := len(gammaIdx), len(lambdaIdx), len(thetaIdx)
	aStore := make([][]byte, 1<<uint(kL))
	bStore := make([][]byte, 1<<uint(kL))

	for lambda := 0; lambda < (1 << uint(kL)); lambda++ {
		rows := make([][]byte, 1<<uint(kG))
		for g := 0; g < len(rows); g++ {
			row := make([]byte, 1<<uint(kT))
			for t := 0; t < len(row); t++ {
				row[t] = sampleBit(f, n, gammaIdx, lambdaIdx, thetaIdx, g, lambda, t)
			}
			rows[g] = row
		}

		a, b, ok := splitRows(rows, op)
		if !ok {
			return false, "", ""
		}
		aStore[lambda] = a
		bStore[lambda] = b
	}

	phiSize := 1 << uint(kG+kL)
	phi := make([]byte, phiSize)
	for p := 0; p < phiSize; p++ {
		cv := phiSize - 1 - p
		g := cv >> uint(kL)
		lambda := cv & ((1 << uint(kL)) - 1)
		phi[p] = aStore[lambda][g] + '0'
	}

	psiSize := 1 << uint(kT+kL)
	psi := make([]byte, psiSize)
	for p := 0; p < psiSize; p++ {
		cv := psiSize - 1 - p
		t := cv >> uint(kL)
		lambda := cv & ((1 << uint(kL)) - 1)
		psi[p] = bStore[lambda][t] + '0'
	}

	return true, string(phi), string(psi)
}

// sampleBit evaluates F at the assignment built from group-local
// indices g (Γ), lambda (Λ), t (Θ), each MSB-first within its own
// group, mapped back onto the original n-bit position order.
func sampleBit(f string, n int, gammaIdx, lambdaIdx, thetaIdx []int, g, lambda, t int) byte {
	v := 0
	for gi, pos := range gammaIdx {
		bit := (g >> uint(len(gammaIdx)-1-gi)) & 1
		v |= bit << uint(n-1-pos)
	}
	for li, pos := range lambdaIdx {
		bit := (lambda >> uint(len(lambdaIdx)-1-li)) & 1
		v |= bit << uint(n-1-pos)
	}
	for ti, pos := range thetaIdx {
		bit := (t >> uint(len(thetaIdx)-1-ti)) & 1
		v |= bit << uint(n-1-pos)
	}
	idx := (1 << uint(n)) - 1 - v

	return f[idx] - '0'
}

// splitRows finds a[row], b[col] such that rows[row][col] == op(a[row],
// b[col]) for every cell, or reports failure.
func splitRows(rows [][]byte, op string) (a, b []byte, ok bool) {
	a = make([]byte, len(rows))

	switch op {
	case bitsAnd:
		var common []byte
		for i, row := range rows {
			if allZero(row) {
				a[i] = 0
				continue
			}
			if common == nil {
				common = row
			} else if !bytesEqual(common, row) {
				return nil, nil, false
			}
			a[i] = 1
		}
		if common == nil {
			common = make([]byte, len(rows[0]))
		}
		return a, common, true

	case bitsOr:
		var common []byte
		for i, row := range rows {
			if allOne(row) {
				a[i] = 1
				continue
			}
			if common == nil {
				common = row
			} else if !bytesEqual(common, row) {
				return nil, nil, false
			}
			a[i] = 0
		}
		if common == nil {
			common = onesOf(len(rows[0]))
		}
		return a, common, true

	case bitsXor:
		var base []byte
		for i, row := range rows {
			if base == nil {
				base = row
				a[i] = 0
				continue
			}
			if bytesEqual(base, row) {
				a[i] = 0
			} else if bytesComplement(base, row) {
				a[i] = 1
			} else {
				return nil, nil, false
			}
		}
		if base == nil {
			base = make([]byte, len(rows[0]))
		}
		return a, base, true
	}

	return nil, nil, false
}

func allZero(row []byte) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

func allOne(row []byte) bool {
	for _, v := range row {
		if v != 1 {
			return false
		}
	}
	return true
}

func onesOf(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bytesComplement(a, b []byte) bool {
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

// selectVars returns vars at the given 0-indexed positions, in the
// order positions is given.
func selectVars(vars []int, positions []int) []int {
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = vars[p]
	}
	return out
}

// combinations returns every k-subset of {0,...,n-1}, as ascending
// index slices, in lexicographic order.
func combinations(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if k > n {
		return nil
	}

	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return out
}

// complementIdx returns {0,...,n-1} minus idx, ascending.
func complementIdx(n int, idx []int) []int {
	in := make(map[int]bool, len(idx))
	for _, i := range idx {
		in[i] = true
	}
	var out []int
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}

// mapIdx maps relative indices (into base) to their absolute values.
func mapIdx(base []int, rel []int) []int {
	out := make([]int, len(rel))
	for i, r := range rel {
		out[i] = base[r]
	}
	return out
}

// complementIdxFrom returns base minus sub (sub must be a subset of
// base), preserving base's ascending order.
func complementIdxFrom(base, sub []int) []int {
	in := map[int]bool{}
	for _, s := range sub {
		in[s] = true
	}
	var out []int
	for _, b := range base {
		if !in[b] {
			out = append(out, b)
		}
	}
	return out
}
