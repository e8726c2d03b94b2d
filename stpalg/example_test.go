package stpalg_test

import (
	"fmt"

	"github.com/go-stp/stp/stpalg"
)

// Example demonstrates building the structural matrix of a 3-input XOR
// LUT and reading its truth table back off row 0.
func Example() {
	m, err := stpalg.NewStructuralMatrix("10010110")
	if err != nil {
		panic(err)
	}
	row0, err := m.Row0String()
	if err != nil {
		panic(err)
	}
	fmt.Println(row0)
	// Output: 10010110
}
