// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// TriangleLen returns the number of strict upper-triangle cells of an n×n
// matrix: n(n-1)/2.
func TriangleLen(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// UpperTriangle flattens the strict upper triangle (i<j) of a square matrix
// row by row: [m01, m02, …, m0(n-1), m12, …]. This is the vector layout
// per-entry statistics (local FDR, p-values) are computed over, so index k of
// the result and index k of such a statistic refer to the same cell.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func UpperTriangle(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("UpperTriangle", err)
	}
	n := m.Rows()
	out := make([]float64, 0, TriangleLen(n))

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ = m.At(i, j)
			out = append(out, v)
		}
	}

	return out, nil
}

// FromUpperTriangle is the inverse of UpperTriangle: it rebuilds the
// symmetric n×n matrix with a zero diagonal from a row-by-row strict upper
// triangle vector.
//
// Errors: ErrInvalidDimensions (n < 1), ErrDimensionMismatch (len(vec) !=
// n(n-1)/2), ErrNaNInf for non-finite entries.
// Complexity: O(n²).
func FromUpperTriangle(vec []float64, n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("FromUpperTriangle", err)
	}
	if err = ValidateVecLen(vec, TriangleLen(n)); err != nil {
		return nil, matrixErrorf("FromUpperTriangle", err)
	}

	var i, j, k int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.IsNaN(vec[k]) || math.IsInf(vec[k], 0) {
				return nil, matrixErrorf("FromUpperTriangle", fmt.Errorf("index %d: %w", k, ErrNaNInf))
			}
			m.data[i*n+j] = vec[k]
			m.data[j*n+i] = vec[k]
			k++
		}
	}

	return m, nil
}

// MaskWhere returns a copy of m in which every cell whose counterpart in mask
// satisfies drop(maskValue) is set to zero. All other cells keep their value.
//
// m and mask must share a shape (ErrDimensionMismatch). Neither input is
// mutated. The kernel is elementwise and idempotent: masking the result again
// with the same mask and predicate yields the same matrix.
// Complexity: O(r*c).
func MaskWhere(m, mask Matrix, drop func(maskValue float64) bool) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MaskWhere", err)
	}
	if err := ValidateNotNil(mask); err != nil {
		return nil, matrixErrorf("MaskWhere", err)
	}
	if err := ValidateSameShape(m, mask); err != nil {
		return nil, matrixErrorf("MaskWhere", err)
	}

	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("MaskWhere", err)
	}

	// Dense fast-path: both operands flat.
	md, okM := m.(*Dense)
	kd, okK := mask.(*Dense)
	if okM && okK {
		for idx, v := range md.data {
			if !drop(kd.data[idx]) {
				out.data[idx] = v
			}
		}

		return out, nil
	}

	var i, j int
	var v, k float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if k, err = mask.At(i, j); err != nil {
				return nil, matrixErrorf("MaskWhere", err)
			}
			if drop(k) {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("MaskWhere", err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
