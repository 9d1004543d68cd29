// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewZeros/ZerosLike to preallocate scratch buffers of an explicit shape.
//   - Use NewIdentity as the neutral transform when comparing bases.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape and numeric policy as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	z, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	z.validateNaNInf = m.validateNaNInf

	return z, nil
}
