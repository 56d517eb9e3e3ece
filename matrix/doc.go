// Package matrix offers the sparse numeric storage used by spatial weights.
//
// The matrix package provides:
//
//   - COO, an append-only (row, col, value) staging buffer with last-write-wins
//     semantics for duplicate cells.
//   - CSR, an immutable compressed-sparse-row matrix with sorted columns,
//     row normalisation (row-standardised weights) and y = A·x.
//   - Centralised validators returning sentinel errors (see errors.go).
//
// CSR implements gonum's mat.Matrix, so it can be handed to any gonum routine
// that reads a matrix, and ToDense materialises it for inspection.
//
// Spatial weight matrices have O(N) links for contiguity and O(N²) at most
// for distance bands; CSR keeps memory at O(N + nnz) instead of O(N²).
package matrix
