// SPDX-License-Identifier: MIT
// Package matop_test: shared fixtures. Dense operands carry NaN and
// sparse operands a 1e30 marker outside the authoritative triangle, so
// any test passing proves the other half is never consulted.

package matop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/toonijn/spectra"
	"github.com/toonijn/spectra/sparse"
)

// poison marks sparse entries planted outside the authoritative
// triangle. Distinctive rather than NaN so a leak shows up as a huge
// residual instead of a silent NaN comparison.
const poison = 1e30

// randSymGrid returns a full random symmetric n×n matrix with roughly
// density·n² off-diagonal entries and a bumped diagonal.
func randSymGrid(n int, density float64, seed uint64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	full := make([][]float64, n)
	for i := range full {
		full[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if i != j && rng.Float64() >= density {
				continue
			}
			v := rng.NormFloat64()
			full[i][j], full[j][i] = v, v
		}
		full[i][i] += 4
	}

	return full
}

// randVec returns a seeded random vector.
func randVec(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	return x
}

// denseTri returns full as a *mat.Dense with NaN planted in the strict
// half opposite to uplo.
func denseTri(full [][]float64, uplo spectra.Triangle) *mat.Dense {
	n := len(full)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && !uplo.Contains(i, j) {
				m.Set(i, j, math.NaN())
				continue
			}
			m.Set(i, j, full[i][j])
		}
	}

	return m
}

// sparseTri returns full restricted to its uplo triangle as a CSR, with
// one poison entry outside that triangle.
func sparseTri(t *testing.T, full [][]float64, uplo spectra.Triangle) *sparse.CSR {
	t.Helper()
	n := len(full)
	coo, err := sparse.NewCOO(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if full[i][j] == 0 || !uplo.Contains(i, j) {
				continue
			}
			require.NoError(t, coo.Append(i, j, full[i][j]))
		}
	}
	if n > 1 {
		if uplo == spectra.Lower {
			require.NoError(t, coo.Append(0, n-1, poison))
		} else {
			require.NoError(t, coo.Append(n-1, 0, poison))
		}
	}

	return coo.ToCSR()
}

// shiftedResidual returns ‖(A − σ·B)·y − x‖₂ / ‖x‖₂ for full A, B.
func shiftedResidual(fullA, fullB [][]float64, sigma float64, y, x []float64) float64 {
	n := len(x)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := 0.0
		for j := 0; j < n; j++ {
			acc += (fullA[i][j] - sigma*fullB[i][j]) * y[j]
		}
		r[i] = acc - x[i]
	}

	return floats.Norm(r, 2) / floats.Norm(x, 2)
}

// identityGrid returns the n×n identity as a full grid.
func identityGrid(n int) [][]float64 {
	full := make([][]float64, n)
	for i := range full {
		full[i] = make([]float64, n)
		full[i][i] = 1
	}

	return full
}
