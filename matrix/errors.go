// SPDX-License-Identifier: MIT

// Package matrix sentinel errors.
//
// All failures surface as wrapped sentinels: callers match with errors.Is,
// facades add an operation tag via matrixErrorf, and no public entry point
// panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a constructor receives a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange is returned by At/Set/Row when an index falls outside
	// the matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned when two operands do not conform
	// (inner product sizes, vector lengths, equal shapes).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix is returned when a nil Matrix reaches a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
