// SPDX-License-Identifier: MIT

// Package design sentinel errors. Every failure mode of planning and filling
// maps to exactly one sentinel; call sites add context via fmt.Errorf with
// %w so errors.Is keeps matching through the wrapping.

package design

import "errors"

var (
	// ErrNilTerm is returned when a nil node appears anywhere in the tree.
	ErrNilTerm = errors.New("design: nil term")

	// ErrNilDest is returned when the destination matrix or buffer is nil.
	ErrNilDest = errors.New("design: nil destination")

	// ErrNilData is returned when the dataset is nil.
	ErrNilData = errors.New("design: nil dataset")

	// ErrUnsupportedTerm is returned for term kinds the filler cannot
	// materialize, grouping terms included.
	ErrUnsupportedTerm = errors.New("design: unsupported term kind")

	// ErrContrastShape is returned when a categorical term's contrast is
	// missing or its row count disagrees with the declared level count.
	ErrContrastShape = errors.New("design: contrast shape mismatch")

	// ErrNoArguments is returned for a function term with an empty
	// argument list.
	ErrNoArguments = errors.New("design: function term has no arguments")

	// ErrNoFunction is returned for a function term lacking a callable
	// compatible with its arity.
	ErrNoFunction = errors.New("design: function term has no callable for its arity")

	// ErrNonScalarArg is returned when a function argument term is not
	// exactly one column wide.
	ErrNonScalarArg = errors.New("design: function argument is not scalar")

	// ErrNoComponents is returned for an interaction with no components.
	ErrNoComponents = errors.New("design: interaction has no components")

	// ErrBadRowCount is returned when planning is asked for a non-positive
	// row count.
	ErrBadRowCount = errors.New("design: row count must be positive")

	// ErrDimensionMismatch is returned when destination or dataset
	// dimensions disagree with the plan.
	ErrDimensionMismatch = errors.New("design: dimension mismatch")

	// ErrMissingVariable is returned when a referenced variable is absent
	// from the dataset.
	ErrMissingVariable = errors.New("design: dataset variable not found")

	// ErrVariableType is returned when a referenced variable exists but has
	// the wrong column kind for its term.
	ErrVariableType = errors.New("design: dataset variable has the wrong column kind")

	// ErrLevelMismatch is returned when a categorical column's level count
	// disagrees with the term's contrast.
	ErrLevelMismatch = errors.New("design: dataset level count disagrees with contrast")
)
