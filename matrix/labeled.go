// SPDX-License-Identifier: MIT

// Package matrix - Labeled: a square Dense with node names on both axes.
//
// Purpose:
//   - Carry the row/column names of a correlation matrix next to its values so
//     that every downstream consumer (edge extraction, significance masks)
//     addresses cells by node name without re-deriving the ordering.
//
// Contract:
//   - The matrix is square; rows and columns share one name list
//     (row names == column names, same order).
//   - Names are non-empty and unique.
package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/netomics/tabular"
)

const (
	opNewLabeled  = "NewLabeled"
	opReadLabeled = "ReadLabeled"
)

// Labeled is a square matrix indexed by node name.
// It is immutable through its public API; Dense() returns a copy.
type Labeled struct {
	mat   *Dense
	names []string
	index map[string]int
}

// NewLabeled validates and binds names to a square matrix.
//
// Validation order (first failure wins):
//  1. m non-nil and square (ErrNilMatrix, ErrNonSquare).
//  2. len(rowNames) == len(colNames) == m.Rows() (ErrLabelMismatch).
//  3. every name non-empty (ErrEmptyLabel) and unique (ErrDuplicateLabel).
//  4. rowNames[i] == colNames[i] for all i (ErrLabelMismatch).
//
// The matrix is copied; later mutation of m does not affect the result.
// Complexity: O(n²) for the copy, O(n) for the name checks.
func NewLabeled(m *Dense, rowNames, colNames []string) (*Labeled, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opNewLabeled, err)
	}
	n := m.Rows()
	if len(rowNames) != n || len(colNames) != n {
		return nil, matrixErrorf(opNewLabeled, fmt.Errorf("%d row names, %d column names for %d×%d matrix: %w",
			len(rowNames), len(colNames), n, n, ErrLabelMismatch))
	}

	index := make(map[string]int, n)
	for i, name := range rowNames {
		if name == "" {
			return nil, matrixErrorf(opNewLabeled, fmt.Errorf("row %d: %w", i, ErrEmptyLabel))
		}
		if _, dup := index[name]; dup {
			return nil, matrixErrorf(opNewLabeled, fmt.Errorf("%q: %w", name, ErrDuplicateLabel))
		}
		if colNames[i] != name {
			return nil, matrixErrorf(opNewLabeled, fmt.Errorf("position %d: row %q, column %q: %w",
				i, name, colNames[i], ErrLabelMismatch))
		}
		index[name] = i
	}

	return &Labeled{mat: m.clone(), names: append([]string(nil), rowNames...), index: index}, nil
}

// Size returns the number of nodes (matrix dimension).
func (l *Labeled) Size() int { return len(l.names) }

// Names returns a copy of the node names in matrix order.
func (l *Labeled) Names() []string { return append([]string(nil), l.names...) }

// Name returns the node name at position i.
func (l *Labeled) Name(i int) string { return l.names[i] }

// Index returns the matrix position of name.
func (l *Labeled) Index(name string) (int, bool) {
	i, ok := l.index[name]

	return i, ok
}

// At returns the value at (i, j).
func (l *Labeled) At(i, j int) (float64, error) { return l.mat.At(i, j) }

// Value returns the cell addressed by two node names.
func (l *Labeled) Value(row, col string) (float64, error) {
	i, ok := l.index[row]
	if !ok {
		return 0, fmt.Errorf("matrix: %q: %w", row, ErrLabelMismatch)
	}
	j, ok := l.index[col]
	if !ok {
		return 0, fmt.Errorf("matrix: %q: %w", col, ErrLabelMismatch)
	}

	return l.mat.At(i, j)
}

// Dense returns a copy of the underlying values.
func (l *Labeled) Dense() *Dense { return l.mat.clone() }

// WithValues returns a new Labeled sharing the names of l over the values of m.
// m must have the same shape as l (ErrDimensionMismatch otherwise).
func (l *Labeled) WithValues(m *Dense) (*Labeled, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("WithValues", err)
	}
	if err := ValidateSameShape(l.mat, m); err != nil {
		return nil, matrixErrorf("WithValues", err)
	}

	return &Labeled{mat: m.clone(), names: l.names, index: l.index}, nil
}

// ReadLabeled parses a labeled square matrix from delimited text.
//
// Layout: a header row of column names, then one row per node whose first
// field is the row name followed by n values. A leading corner cell in the
// header (e.g. "node" or an empty cell written by R) is accepted and ignored.
//
// Errors: *tabular.ParseError for malformed rows or non-numeric cells;
// ErrNonSquare / ErrLabel family (wrapped) for structurally invalid matrices.
func ReadLabeled(r io.Reader, source string) (*Labeled, error) {
	rd := tabular.NewReader(r, source)
	hdr, err := tabular.ReadHeader(rd)
	if err != nil {
		return nil, err
	}

	var (
		rowNames []string
		rows     [][]float64
		colNames = hdr.Names
	)
	for {
		fields, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 && len(fields) == len(colNames) {
			// header carried a corner cell: drop it once we know the row width
			colNames = colNames[1:]
		}
		if len(fields) != len(colNames)+1 {
			return nil, rd.Fail("got %d fields, want row name + %d values: %w",
				len(fields), len(colNames), tabular.ErrColumnCount)
		}
		vals := make([]float64, len(colNames))
		for j, f := range fields[1:] {
			if vals[j], err = tabular.Float(f); err != nil {
				return nil, rd.Fail("column %q: %w", colNames[j], err)
			}
		}
		rowNames = append(rowNames, fields[0])
		rows = append(rows, vals)
	}
	if len(rows) == 0 {
		return nil, tabular.Errorf(source, 0, "no data rows: %w", tabular.ErrMissingHeader)
	}
	if len(rows) != len(colNames) {
		return nil, matrixErrorf(opReadLabeled, fmt.Errorf("%d rows, %d columns: %w", len(rows), len(colNames), ErrNonSquare))
	}

	m, err := NewDenseFrom(rows)
	if err != nil {
		return nil, matrixErrorf(opReadLabeled, err)
	}

	return NewLabeled(m, rowNames, colNames)
}

// LoadLabeled reads a labeled matrix file from disk (gzip-aware).
func LoadLabeled(path string) (*Labeled, error) {
	return tabular.ReadFile(path, ReadLabeled)
}
