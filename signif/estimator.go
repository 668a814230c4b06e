package signif

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/netomics/matrix"
	"github.com/katalvlaran/netomics/tabular"
)

// Estimator produces one local-FDR value per input value, in input order.
// Implementations wrap an external statistical tool; this package only
// consumes the result.
type Estimator interface {
	LocalFDR(ctx context.Context, values []float64) ([]float64, error)
}

// Fixed is an Estimator returning a precomputed vector.
type Fixed []float64

// LocalFDR returns a copy of f after checking its length against values.
func (f Fixed) LocalFDR(ctx context.Context, values []float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(f, len(values)); err != nil {
		return nil, fmt.Errorf("signif: fixed estimator: %w", err)
	}

	return append([]float64(nil), f...), nil
}

// VectorFile is an Estimator that loads local-FDR values written by an
// external tool, one value per line (gzip-aware).
//
// Accepted layouts: a bare column of numbers, the same with a header line,
// or R's write.table form with a row-name column ("1" 0.12).
type VectorFile struct {
	Path string
}

// LocalFDR reads the file and checks that it has one entry per value.
func (v VectorFile) LocalFDR(ctx context.Context, values []float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec, err := tabular.ReadFile(v.Path, ReadVector)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateVecLen(vec, len(values)); err != nil {
		return nil, fmt.Errorf("signif: %s: %w", v.Path, err)
	}

	return vec, nil
}

// ReadVector parses a one-column numeric vector. A first line that is not
// numeric is taken as a header.
func ReadVector(r io.Reader, source string) ([]float64, error) {
	rd := tabular.NewReader(r, source)
	var out []float64
	first := true
	for {
		fields, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var cell string
		switch len(fields) {
		case 1:
			cell = fields[0]
		case 2:
			cell = fields[1]
		default:
			return nil, rd.Fail("got %d fields, want 1 or 2: %w", len(fields), tabular.ErrColumnCount)
		}

		x, err := tabular.Float(cell)
		if err != nil {
			if first {
				first = false
				continue
			}
			return nil, rd.Fail("%w", err)
		}
		first = false
		out = append(out, x)
	}

	return out, nil
}
