// Package matutil collects small gonum matrix constructions shared by the
// model packages.
package matutil

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eye returns a (m by n) matrix with ones on the main diagonal
func Eye(m, n int) mat.Matrix {
	data := make([]float64, int(math.Min(float64(m), float64(n))))
	for entry := range data {
		data[entry] = 1
	}
	return mat.NewDiagonalRect(m, n, data)
}

// Companion returns the companion matrix of the polynomial with the given
// coefficients in descending powers. The eigenvalues of a companion matrix
// are the roots of its polynomial. The polynomial must have degree at
// least one and a nonzero leading coefficient.
func Companion(coeffs []float64) *mat.Dense {
	n := len(coeffs) - 1
	if n < 1 {
		panic(errors.New("companion matrix needs a polynomial of degree at least one"))
	}
	if coeffs[0] == 0 {
		panic(errors.New("leading polynomial coefficient must be nonzero"))
	}
	c := mat.NewDense(n, n, nil)
	for column := 0; column < n; column++ {
		c.Set(0, column, -coeffs[column+1]/coeffs[0])
	}
	for row := 1; row < n; row++ {
		c.Set(row, row-1, 1)
	}
	return c
}

// NaNOrInf checks if there are any NaN or Inf entries in matrix
func NaNOrInf(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}
