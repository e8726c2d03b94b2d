package stpalg

import "fmt"

// Matrix is a dense, row-major matrix of int64 values. r is rows, c is
// columns, and data holds r*c elements in row-major order.
type Matrix struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// matrixErrorf wraps an underlying error with call-site context.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("stpalg.%s: %w", op, err)
}

// NewMatrix allocates an r×c Matrix initialized to zero.
// Complexity: O(r*c).
func NewMatrix(rows, cols int) (*Matrix, error) {
	// Validate dimensions: both must be strictly positive.
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewMatrix", ErrBadShape)
	}

	return &Matrix{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewMatrixFromRows builds a Matrix from a dense row-major literal. All
// rows must share the same length.
func NewMatrixFromRows(rows [][]int64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewMatrixFromRows", ErrBadShape)
	}
	cols := len(rows[0])
	m, err := NewMatrix(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf("NewMatrixFromRows", ErrBadShape)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix. n==1 returns the 1×1
// matrix [1], the Kronecker-product neutral element.
func NewIdentity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewStructuralMatrix builds the 2×2ⁿ structural matrix of an n-input LUT
// from its binary truth-table string bits (length 2ⁿ, MSB-first per
// spec.md §3). Column i is [1,0]ᵀ if bit (2ⁿ-1-i) of the table is 1, else
// [0,1]ᵀ — equivalently, bits read left-to-right ARE row 0 of the result.
func NewStructuralMatrix(bits string) (*Matrix, error) {
	n := len(bits)
	if n == 0 || n&(n-1) != 0 {
		return nil, matrixErrorf("NewStructuralMatrix", ErrBadTruthTable)
	}
	m, err := NewMatrix(2, n)
	if err != nil {
		return nil, matrixErrorf("NewStructuralMatrix", err)
	}
	for i, ch := range bits {
		switch ch {
		case '1':
			m.data[0*n+i] = 1
			m.data[1*n+i] = 0
		case '0':
			m.data[0*n+i] = 0
			m.data[1*n+i] = 1
		default:
			return nil, matrixErrorf("NewStructuralMatrix", ErrBadTruthTable)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col) or ErrOutOfRange.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Matrix) At(row, col int) (int64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf("At", err)
	}

	return m.data[idx], nil
}

// Set writes v at (row, col).
func (m *Matrix) Set(row, col int, v int64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf("Set", err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; no aliasing with the receiver.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, data: make([]int64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Equal reports whether m and other have identical shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// Row0String returns row 0 read left-to-right as a '0'/'1' string; valid
// only when m has exactly 2 rows and every entry is 0 or 1 (the shape a
// fully-reduced STP chain evaluates to). Used to read off the canonical
// truth table in chain.Normalize.
func (m *Matrix) Row0String() (string, error) {
	if m.r != 2 {
		return "", matrixErrorf("Row0String", ErrShapeMismatch)
	}
	out := make([]byte, m.c)
	for j := 0; j < m.c; j++ {
		switch m.data[j] {
		case 1:
			out[j] = '1'
		case 0:
			out[j] = '0'
		default:
			return "", matrixErrorf("Row0String", ErrBadTruthTable)
		}
	}

	return string(out), nil
}

// String renders m for debugging (row-major, space-separated).
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				s += " "
			}
			s += fmt.Sprintf("%d", m.data[i*m.c+j])
		}
		s += "\n"
	}

	return s
}
