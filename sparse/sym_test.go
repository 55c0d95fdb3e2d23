// SPDX-License-Identifier: MIT
// Package sparse_test: symmetric-view expansion and shifted combine.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toonijn/spectra"
	"github.com/toonijn/spectra/sparse"
)

// triCSR builds a CSR holding the given dense content restricted to the
// uplo triangle, with a poison value planted in the opposite triangle
// to prove the symmetric view never reads it.
func triCSR(t *testing.T, dense [][]float64, uplo spectra.Triangle, poison bool) *sparse.CSR {
	t.Helper()
	n := len(dense)
	m := mustCOO(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if uplo.Contains(i, j) && dense[i][j] != 0 {
				mustAppend(t, m, i, j, dense[i][j])
			}
		}
	}
	if poison && n > 1 {
		// one junk entry strictly outside the authoritative triangle
		if uplo == spectra.Lower {
			mustAppend(t, m, 0, n-1, 1e30)
		} else {
			mustAppend(t, m, n-1, 0, 1e30)
		}
	}

	return m.ToCSR()
}

func TestSymView_ExpandsTriangle(t *testing.T) {
	full := [][]float64{
		{2, 1, 0},
		{1, 2, -3},
		{0, -3, 4},
	}
	for _, uplo := range []spectra.Triangle{spectra.Lower, spectra.Upper} {
		t.Run(uplo.String(), func(t *testing.T) {
			sv, err := sparse.SymView(triCSR(t, full, uplo, true), uplo)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					v, err := sv.At(i, j)
					require.NoError(t, err)
					require.Equal(t, full[i][j], v, "at (%d,%d)", i, j)
				}
			}
		})
	}
}

func TestSymView_Errors(t *testing.T) {
	_, err := sparse.SymView(nil, spectra.Lower)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	rect := mustCOO(t, 2, 3).ToCSR()
	_, err = sparse.SymView(rect, spectra.Lower)
	require.ErrorIs(t, err, sparse.ErrNonSquare)
}

func TestSymShifted_MatchesDenseReference(t *testing.T) {
	fullA := [][]float64{
		{4, 1, 0},
		{1, 3, 2},
		{0, 2, 5},
	}
	fullB := [][]float64{
		{1, 0, -1},
		{0, 2, 0},
		{-1, 0, 1},
	}
	const sigma = 0.75

	for _, tc := range []struct {
		name         string
		uploA, uploB spectra.Triangle
	}{
		{"lower/lower", spectra.Lower, spectra.Lower},
		{"lower/upper", spectra.Lower, spectra.Upper},
		{"upper/lower", spectra.Upper, spectra.Lower},
		{"upper/upper", spectra.Upper, spectra.Upper},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := triCSR(t, fullA, tc.uploA, true)
			b := triCSR(t, fullB, tc.uploB, true)
			got, err := sparse.SymShifted(a, b, tc.uploA, tc.uploB, sigma)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := fullA[i][j] - sigma*fullB[i][j]
					v, err := got.At(i, j)
					require.NoError(t, err)
					require.InDelta(t, want, v, 1e-15, "at (%d,%d)", i, j)
				}
			}
		})
	}
}

func TestSymShifted_Errors(t *testing.T) {
	sq2 := mustCOO(t, 2, 2).ToCSR()
	sq3 := mustCOO(t, 3, 3).ToCSR()
	rect := mustCOO(t, 2, 3).ToCSR()

	_, err := sparse.SymShifted(nil, sq2, spectra.Lower, spectra.Lower, 1)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	_, err = sparse.SymShifted(rect, sq2, spectra.Lower, spectra.Lower, 1)
	require.ErrorIs(t, err, sparse.ErrNonSquare)

	_, err = sparse.SymShifted(sq3, sq2, spectra.Lower, spectra.Lower, 1)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}
