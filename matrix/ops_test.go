// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelmat/matrix"
)

// opaque hides the concrete *Dense behind the Matrix interface so kernels
// take their generic At/Set fallback instead of the flat fast path.
type opaque struct{ m matrix.Matrix }

func (o opaque) Rows() int                     { return o.m.Rows() }
func (o opaque) Cols() int                     { return o.m.Cols() }
func (o opaque) At(i, j int) (float64, error)  { return o.m.At(i, j) }
func (o opaque) Set(i, j int, v float64) error { return o.m.Set(i, j, v) }
func (o opaque) Clone() matrix.Matrix          { return opaque{m: o.m.Clone()} }

// mustDense builds a Dense from row literals; test helper.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}
	return d
}

// assertEqualMatrix compares element-wise via At.
func assertEqualMatrix(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "col count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, 1e-12, "element (%d,%d)", i, j)
		}
	}
}

// TestMul_KnownProduct checks a hand-computed 2x3 × 3x2 product on both the
// fast path and the interface fallback.
func TestMul_KnownProduct(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertEqualMatrix(t, want, fast)

	slow, err := matrix.Mul(opaque{m: a}, opaque{m: b})
	require.NoError(t, err)
	assertEqualMatrix(t, want, slow)
}

// TestMul_Validation covers nil operands and inner-dimension mismatch.
func TestMul_Validation(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})

	_, err := matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	b := mustDense(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "1x2 times 1x3 must not conform")
}

// TestTranspose_RoundTrip checks mᵀᵀ == m and the flipped shape, on both paths.
func TestTranspose_RoundTrip(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt)

	back, err := matrix.Transpose(opaque{m: mt})
	require.NoError(t, err)
	assertEqualMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, back)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec_KnownProduct checks y = m*x plus the length guard.
func TestMatVec_KnownProduct(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0, 2}, {0, 3, 0}})

	y, err := matrix.MatVec(m, []float64{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3}, y)

	y, err = matrix.MatVec(opaque{m: m}, []float64{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGram_MatchesTransposeMul cross-checks the fused kernel against the
// two-step Transpose+Mul composition on both paths.
func TestGram_MatchesTransposeMul(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 2, 0},
		{0, 1, 1},
		{3, 0, 2},
		{1, 1, 1},
	})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	want, err := matrix.Mul(mt, m)
	require.NoError(t, err)

	got, err := matrix.Gram(m)
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, 3, got.Cols())

	var i, j int
	var wv, gv float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			wv, err = want.At(i, j)
			require.NoError(t, err)
			gv, err = got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, wv, gv, 1e-12, "gram (%d,%d)", i, j)
			// Symmetry comes for free from the mirroring step.
			sym, symErr := got.At(j, i)
			require.NoError(t, symErr)
			assert.Equal(t, gv, sym, "gram must be symmetric at (%d,%d)", i, j)
		}
	}

	slow, err := matrix.Gram(opaque{m: m})
	require.NoError(t, err)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			wv, err = want.At(i, j)
			require.NoError(t, err)
			gv, err = slow.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, wv, gv, 1e-12, "fallback gram (%d,%d)", i, j)
		}
	}

	_, err = matrix.Gram(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
