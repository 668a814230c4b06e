// Package signif applies a local-FDR significance mask to correlation
// values: every entry whose local FDR is ≥ cutoff becomes zero, every other
// entry is left unchanged.
//
// The mask is a pure elementwise transform and is idempotent: filtering the
// output again with the same local-FDR values and cutoff changes nothing.
// How the local-FDR values are produced is left to an Estimator.
//
// Alignment: for matrix inputs the local-FDR vector follows the strict upper
// triangle layout of matrix.UpperTriangle (row by row, i<j); FilterUpper
// mirrors the mask so the result stays symmetric.
//
// Errors:
//
//	ErrBadCutoff                  - cutoff is NaN or ±Inf.
//	matrix.ErrDimensionMismatch   - values and local FDR differ in shape
//	                                (member of the matrix.ErrShape family).
//	matrix.ErrNaNInf              - a local-FDR value is not finite.
package signif

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netomics/matrix"
)

// DefaultCutoff is the local-FDR threshold used by the network workflow.
const DefaultCutoff = 0.2

// ErrBadCutoff indicates a non-finite cutoff.
var ErrBadCutoff = errors.New("signif: cutoff must be finite")

func checkCutoff(cutoff float64) error {
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return fmt.Errorf("signif: %v: %w", cutoff, ErrBadCutoff)
	}

	return nil
}

// drop reports whether an entry with local FDR l fails the cutoff.
func drop(cutoff float64) func(l float64) bool {
	return func(l float64) bool { return l >= cutoff }
}

// Filter returns a copy of values with every entry whose lfdr is ≥ cutoff
// set to zero.
//
// Complexity: O(n).
func Filter(values, lfdr []float64, cutoff float64) ([]float64, error) {
	if err := checkCutoff(cutoff); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(lfdr, len(values)); err != nil {
		return nil, fmt.Errorf("signif: Filter: %w", err)
	}

	fails := drop(cutoff)
	out := make([]float64, len(values))
	for k, v := range values {
		l := lfdr[k]
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("signif: Filter: lfdr[%d]: %w", k, matrix.ErrNaNInf)
		}
		if !fails(l) {
			out[k] = v
		}
	}

	return out, nil
}

// FilterMatrix masks m with a same-shaped local-FDR matrix. A non-finite
// local-FDR entry is matrix.ErrNaNInf.
//
// Complexity: O(r*c).
func FilterMatrix(m, lfdr matrix.Matrix, cutoff float64) (*matrix.Dense, error) {
	if err := checkCutoff(cutoff); err != nil {
		return nil, err
	}
	out, err := matrix.MaskWhere(m, lfdr, drop(cutoff))
	if err != nil {
		return nil, fmt.Errorf("signif: FilterMatrix: %w", err)
	}
	// MaskWhere has validated shape, so every lfdr index below is in range.
	for i := 0; i < lfdr.Rows(); i++ {
		for j := 0; j < lfdr.Cols(); j++ {
			l, _ := lfdr.At(i, j)
			if math.IsNaN(l) || math.IsInf(l, 0) {
				return nil, fmt.Errorf("signif: FilterMatrix: lfdr[%d,%d]: %w", i, j, matrix.ErrNaNInf)
			}
		}
	}

	return out, nil
}

// FilterUpper masks a labeled symmetric matrix with a local-FDR vector
// aligned to its strict upper triangle. The diagonal is never masked.
//
// Complexity: O(n²).
func FilterUpper(lm *matrix.Labeled, lfdr []float64, cutoff float64) (*matrix.Labeled, error) {
	if err := checkCutoff(cutoff); err != nil {
		return nil, err
	}
	if lm == nil {
		return nil, fmt.Errorf("signif: FilterUpper: %w", matrix.ErrNilMatrix)
	}

	// The rebuilt mask has a zero diagonal, which always passes a positive
	// cutoff. A cutoff ≤ 0 would zero the diagonal too, so it is restored.
	mask, err := matrix.FromUpperTriangle(lfdr, lm.Size())
	if err != nil {
		return nil, fmt.Errorf("signif: FilterUpper: %w", err)
	}
	src := lm.Dense()
	out, err := matrix.MaskWhere(src, mask, drop(cutoff))
	if err != nil {
		return nil, fmt.Errorf("signif: FilterUpper: %w", err)
	}
	for i := 0; i < lm.Size(); i++ {
		v, _ := src.At(i, i)
		_ = out.Set(i, i, v)
	}

	return lm.WithValues(out)
}
