// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/toonijn/spectra"
	"github.com/toonijn/spectra/linalg"
	"github.com/toonijn/spectra/sparse"
)

// mustCSR assembles a CSR from a dense [][]float64, skipping zeros.
func mustCSR(t *testing.T, dense [][]float64) *sparse.CSR {
	t.Helper()
	coo, err := sparse.NewCOO(len(dense), len(dense[0]))
	require.NoError(t, err)
	for i, row := range dense {
		for j, v := range row {
			if v == 0 {
				continue
			}
			require.NoError(t, coo.Append(i, j, v))
		}
	}

	return coo.ToCSR()
}

// randSparse returns a seeded random diagonally bumped n×n CSR with
// roughly density·n² off-diagonal entries.
func randSparse(t *testing.T, n int, density float64, seed uint64) *sparse.CSR {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if rng.Float64() < density {
				dense[i][j] = rng.NormFloat64()
			}
		}
		// keep realistic systems nonsingular without dominating the test
		dense[i][i] += 4
	}

	return mustCSR(t, dense)
}

// luResidual returns ‖M·y − x‖₂ / ‖x‖₂.
func luResidual(m *sparse.CSR, y, x []float64) float64 {
	r := make([]float64, len(x))
	_ = m.MulVec(r, y)
	floats.Sub(r, x)

	return floats.Norm(r, 2) / floats.Norm(x, 2)
}

func TestSparseLU_Known3x3(t *testing.T) {
	// M·y = x with M = [[2,1,0],[1,3,1],[0,1,2]], x = [3,5,3] → y = [1,1,1]
	m := mustCSR(t, [][]float64{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	f := linalg.NewSparseLU()
	require.NoError(t, f.Compute(m))
	require.Equal(t, spectra.Successful, f.Info())

	y, err := f.Solve([]float64{3, 5, 3})
	require.NoError(t, err)
	require.InDelta(t, 1.0, y[0], 1e-14)
	require.InDelta(t, 1.0, y[1], 1e-14)
	require.InDelta(t, 1.0, y[2], 1e-14)
}

func TestSparseLU_PivotingRequired(t *testing.T) {
	// zero leading diagonal: plain elimination would divide by zero
	m := mustCSR(t, [][]float64{
		{0, 2},
		{3, 1},
	})
	f := linalg.NewSparseLU()
	require.NoError(t, f.Compute(m))

	y, err := f.Solve([]float64{4, 5})
	require.NoError(t, err)
	require.InDelta(t, 1.0, y[0], 1e-14)
	require.InDelta(t, 2.0, y[1], 1e-14)
}

func TestSparseLU_RandomResidual(t *testing.T) {
	for _, tc := range []struct {
		name      string
		n         int
		density   float64
		symmetric bool
		seed      uint64
	}{
		{"n=10 sparse", 10, 0.15, false, 11},
		{"n=30 denser", 30, 0.3, false, 12},
		{"n=30 symmetric mode", 30, 0.3, true, 13},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := randSparse(t, tc.n, tc.density, tc.seed)
			x := randVec(tc.n, tc.seed+100)

			var f *linalg.SparseLU
			if tc.symmetric {
				f = linalg.NewSparseLU(linalg.WithSymmetric())
			} else {
				f = linalg.NewSparseLU()
			}
			require.NoError(t, f.Compute(m))
			y, err := f.Solve(x)
			require.NoError(t, err)
			require.Less(t, luResidual(m, y, x), 1e-10)
		})
	}
}

func TestSparseLU_SymmetricKeepsDiagonalPivot(t *testing.T) {
	// diagonal passes the threshold test against the larger off-diagonal,
	// so symmetric mode must still produce the right answer
	m := mustCSR(t, [][]float64{
		{1, 4},
		{4, 1},
	})
	f := linalg.NewSparseLU(linalg.WithSymmetric(), linalg.WithPivotTolerance(0.1))
	require.NoError(t, f.Compute(m))

	// M⁻¹·[5,5] = [1,1]
	y, err := f.Solve([]float64{5, 5})
	require.NoError(t, err)
	require.InDelta(t, 1.0, y[0], 1e-14)
	require.InDelta(t, 1.0, y[1], 1e-14)
}

func TestSparseLU_SingularReports(t *testing.T) {
	m := mustCSR(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	f := linalg.NewSparseLU()
	err := f.Compute(m)
	require.ErrorIs(t, err, linalg.ErrSingular)
	require.Equal(t, spectra.NumericalIssue, f.Info())

	_, err = f.Solve([]float64{1, 1})
	require.ErrorIs(t, err, linalg.ErrNotComputed)
}

func TestSparseLU_ArgumentErrors(t *testing.T) {
	f := linalg.NewSparseLU()
	require.ErrorIs(t, f.Compute(nil), linalg.ErrNilMatrix)
	require.ErrorIs(t, f.Compute(mustCSR(t, [][]float64{{1, 2, 3}, {4, 5, 6}})), linalg.ErrNonSquare)

	require.NoError(t, f.Compute(mustCSR(t, [][]float64{{1, 0}, {0, 1}})))
	_, err := f.Solve([]float64{1})
	require.ErrorIs(t, err, linalg.ErrVectorLength)
	require.ErrorIs(t, f.SolveTo(make([]float64, 3), []float64{1, 2}), linalg.ErrVectorLength)
}

func TestOptions_PivotTolerancePanics(t *testing.T) {
	for _, tc := range []struct {
		name string
		tol  float64
	}{
		{"zero", 0},
		{"negative", -0.5},
		{"above one", 1.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() { linalg.WithPivotTolerance(tc.tol) })
		})
	}
}
