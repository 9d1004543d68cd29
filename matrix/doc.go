// Package matrix provides the dense row-major container lattice code works on.
//
// The matrix package provides:
//
//   - Dense: a rows×cols float64 matrix whose shape is fixed at construction,
//     with bounds-checked accessors and a finite-value numeric policy.
//   - Construction policy via New(rows, cols, src): Zeros, FromRows, FromReader.
//   - Elementary row operations: ScalarProduct, SubtractRow, SwapRows, AssignRow.
//   - Small whole-matrix kernels: Mul, Transpose, Gram.
//   - Row statistics and comparison: RowNormsL2, RowNormsL1, NormalizeRows, AllClose.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrOutOfRange, ...)
// wrapped with call-site context; match them with errors.Is.
package matrix
