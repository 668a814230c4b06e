// SPDX-License-Identifier: MIT

// Package matrix holds the numeric containers the network pipeline runs on:
// a row-major Dense matrix, a name-labeled square view of it (Labeled) for
// correlation matrices, the shared validators, and the upper-triangle
// flattening used to align per-entry statistics (local FDR) with matrix cells.
//
// Conventions:
//   - No panics on user input; every failure is a sentinel from errors.go,
//     wrapped with the name of the public operation that detected it.
//   - Deterministic loops (row-major i→j); no map iteration in kernels.
//   - Shape problems match errors.Is(err, ErrShape); naming problems match
//     errors.Is(err, ErrLabel).
//
// Quick example:
//
//	lm, _ := matrix.ReadLabeled(strings.NewReader("node\tA\tB\nA\t0\t0.5\nB\t0.5\t0\n"), "pcor.tsv")
//	vec, _ := matrix.UpperTriangle(lm.Dense()) // [0.5]
package matrix
