// SPDX-License-Identifier: MIT

package term

import "errors"

var (
	// ErrContrastDims is returned by NewContrast when the declared level or
	// column count is not positive.
	ErrContrastDims = errors.New("term: contrast dimensions must be positive")

	// ErrContrastShape is returned by NewContrast when the coefficient slice
	// length disagrees with levels*width.
	ErrContrastShape = errors.New("term: contrast coefficients disagree with declared shape")
)
