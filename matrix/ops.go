// SPDX-License-Identifier: MIT

// Deterministic product/transpose kernels over Matrix operands.
//
// Every kernel follows the same contract: strict fail-fast validation through
// the central validators, a flat fast-path when operands are *Dense, a
// bounds-safe At/Set fallback otherwise, and fixed loop orders so identical
// inputs produce bit-identical outputs.

package matrix

import "fmt"

// Operation tags for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opGram      = "Gram"
)

// zeroSum is the accumulator identity for the dot-product loops.
const zeroSum = 0.0

// matrixErrorf wraps err with an operation tag, preserving the original
// error for errors.Is/As. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate operands (not nil, A.Cols == B.Rows).
//   - Stage 2: *Dense×*Dense runs i→k→j with row-major strides and skips
//     zero A[i,k]; the generic path runs i→j→k via At/Set.
//
// Returns:
//   - Matrix: freshly allocated Dense (A.Rows × B.Cols).
//   - error : ErrNilMatrix or ErrDimensionMismatch, wrapped with opMul.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1 - Validate conformability.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators, fixed orders
		av, bv, current float64
	)

	// Fast path: both operands *Dense → flat row-major triple loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseA, baseB, baseR int
			for i = 0; i < aRows; i++ {
				baseA = i * aCols
				baseR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[baseA+k]
					if av == 0 {
						continue // skip zero row entries
					}
					baseB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[baseR+j] += av * db.data[baseB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = zeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped. The input is
// never mutated; the result is always a fresh Dense.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int

	// Fast path: data[i*cols+j] → res.data[j*rows+i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic At/Set walk.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x with len(x) == m.Cols().
//
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path: one flat pass per row.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = zeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	// Fallback: interface dot products.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = zeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Gram computes the cross-product G = mᵀ * m (Cols × Cols) without forming
// the transpose. For a filled design matrix this is the normal-equations
// building block, so it gets its own kernel instead of Transpose+Mul.
//
// Implementation:
//   - Stage 1: Validate m non-nil.
//   - Stage 2: Accumulate row outer-products: for each row i, for each pair
//     (j, k≥j), add row[j]*row[k]; mirror the strict upper triangle at the
//     end. Row-major reads stay contiguous the whole way.
//
// Returns:
//   - Matrix: symmetric Dense (c×c).
//   - error : ErrNilMatrix wrapped with opGram.
//
// Complexity:
//   - Time O(r*c²) with the symmetric half skipped, Space O(c²).
func Gram(m Matrix) (Matrix, error) {
	// Stage 1 - Validate.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, cols)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var (
		i, j, k int
		vj      float64
	)

	// Stage 2 - Accumulate the upper triangle.
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				vj = d.data[base+j]
				if vj == 0 {
					continue // zero rows contribute nothing
				}
				for k = j; k < cols; k++ {
					res.data[j*cols+k] += vj * d.data[base+k]
				}
			}
		}
	} else {
		var vk float64
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				vj, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opGram, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				if vj == 0 {
					continue
				}
				for k = j; k < cols; k++ {
					vk, err = m.At(i, k)
					if err != nil {
						return nil, matrixErrorf(opGram, fmt.Errorf("At(%d,%d): %w", i, k, err))
					}
					res.data[j*cols+k] += vj * vk
				}
			}
		}
	}

	// Mirror the strict upper triangle; G is symmetric by construction.
	for j = 0; j < cols; j++ {
		for k = j + 1; k < cols; k++ {
			res.data[k*cols+j] = res.data[j*cols+k]
		}
	}

	return res, nil
}
