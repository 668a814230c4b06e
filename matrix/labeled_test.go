// SPDX-License-Identifier: MIT
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/netomics/matrix"
	"github.com/katalvlaran/netomics/tabular"
	"github.com/stretchr/testify/require"
)

func TestNewLabeled_Valid(t *testing.T) {
	m := mustDense(t, [][]float64{{0, 0.5, 0}, {0.5, 0, -0.3}, {0, -0.3, 0}})
	names := []string{"A", "B", "C"}
	lm, err := matrix.NewLabeled(m, names, names)
	require.NoError(t, err)
	require.Equal(t, 3, lm.Size())
	require.Equal(t, names, lm.Names())

	i, ok := lm.Index("C")
	require.True(t, ok)
	require.Equal(t, 2, i)

	v, err := lm.Value("B", "C")
	require.NoError(t, err)
	require.Equal(t, -0.3, v)

	_, err = lm.Value("B", "Z")
	require.ErrorIs(t, err, matrix.ErrLabel)

	// input mutation does not leak into the labeled copy
	require.NoError(t, m.Set(0, 1, 0.9))
	v, _ = lm.Value("A", "B")
	require.Equal(t, 0.5, v)
}

func TestNewLabeled_Errors(t *testing.T) {
	sq := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	rect := mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 2}})

	cases := []struct {
		name     string
		m        *matrix.Dense
		rows     []string
		cols     []string
		sentinel error
	}{
		{"non-square", rect, []string{"A", "B"}, []string{"A", "B"}, matrix.ErrNonSquare},
		{"nil", nil, nil, nil, matrix.ErrNilMatrix},
		{"missing names", sq, []string{"A"}, []string{"A", "B"}, matrix.ErrLabelMismatch},
		{"empty name", sq, []string{"A", ""}, []string{"A", ""}, matrix.ErrEmptyLabel},
		{"duplicate", sq, []string{"A", "A"}, []string{"A", "A"}, matrix.ErrDuplicateLabel},
		{"order differs", sq, []string{"A", "B"}, []string{"B", "A"}, matrix.ErrLabelMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewLabeled(tc.m, tc.rows, tc.cols)
			require.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestReadLabeled_WithAndWithoutCorner(t *testing.T) {
	withCorner := "node\tA\tB\nA\t0\t0.25\nB\t0.25\t0\n"
	withoutCorner := "A B\nA 0 0.25\nB 0.25 0\n"

	for _, in := range []string{withCorner, withoutCorner} {
		lm, err := matrix.ReadLabeled(strings.NewReader(in), "pcor.tsv")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, lm.Names())
		v, err := lm.Value("A", "B")
		require.NoError(t, err)
		require.Equal(t, 0.25, v)
	}
}

func TestReadLabeled_Errors(t *testing.T) {
	_, err := matrix.ReadLabeled(strings.NewReader(""), "empty.tsv")
	require.ErrorIs(t, err, tabular.ErrMissingHeader)

	_, err = matrix.ReadLabeled(strings.NewReader("A\tB\nA\t0\tx\nB\t1\t0\n"), "bad.tsv")
	require.ErrorIs(t, err, tabular.ErrNotNumeric)
	var pe *tabular.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line)

	_, err = matrix.ReadLabeled(strings.NewReader("A\tB\tC\nA\t0\t1\t2\nB\t1\t0\t2\n"), "rect.tsv")
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.ReadLabeled(strings.NewReader("A\tB\nB\t0\t1\nA\t1\t0\n"), "order.tsv")
	require.ErrorIs(t, err, matrix.ErrLabelMismatch)
}
