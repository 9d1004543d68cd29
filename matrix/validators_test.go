// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/matrix"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases, and the order check.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSquare(sq, 0))
	require.NoError(t, matrix.ValidateSquare(sq, 3))
	require.ErrorIs(t, matrix.ValidateSquare(sq, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(rect, 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

func TestValidateRowIndex(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateRowIndex(m, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowIndex(m, -1), matrix.ErrOutOfRange)
}
