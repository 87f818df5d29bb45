// SPDX-License-Identifier: MIT

// Central validators shared by the kernels. Each returns a plain wrapped
// sentinel; facades add their operation tag on top so callers see
// "Op: detail: sentinel" with errors.Is still matching.

package matrix

import "fmt"

// validatorErrorf standardizes validator messages around a sentinel cause.
func validatorErrorf(detail string, cause error) error {
	return fmt.Errorf("%s: %w", detail, cause)
}

// ValidateNotNil rejects nil Matrix values, including typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("operand", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("operand", ErrNilMatrix)
	}
	return nil
}

// ValidateMulCompatible checks a and b are non-nil and conform for a×b
// (a.Cols == b.Rows).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("inner %d vs %d", a.Cols(), b.Rows()), ErrDimensionMismatch)
	}
	return nil
}

// ValidateVecLen checks x is non-nil and has exactly want elements.
func ValidateVecLen(x []float64, want int) error {
	if x == nil {
		return validatorErrorf("vector", ErrNilMatrix)
	}
	if len(x) != want {
		return validatorErrorf(
			fmt.Sprintf("vector len %d vs %d", len(x), want), ErrDimensionMismatch)
	}
	return nil
}
