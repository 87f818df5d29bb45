// SPDX-License-Identifier: MIT

// Contrast - a precomputed contrast-coding matrix treated as an opaque input.
// The coding policy (treatment, sum, Helmert, ...) is decided by the caller;
// this type only pins the geometry and serves coefficient rows fast.

package term

import "fmt"

// Contrast stores contrast coefficients row-major: row = factor level,
// column = output design column. Immutable after construction.
type Contrast struct {
	levels int       // coefficient rows; one per factor level
	width  int       // coefficient columns; design columns produced
	coef   []float64 // flat row-major, len == levels*width
}

// NewContrast validates and wraps a flat row-major coefficient slice.
//
// Implementation:
//   - Stage 1: Validate levels ≥ 1 and width ≥ 1 (ErrContrastDims).
//   - Stage 2: Validate len(coef) == levels*width (ErrContrastShape).
//   - Stage 3: Copy coef so later caller mutations cannot skew fills.
//
// Inputs:
//   - levels: number of factor levels (coefficient rows).
//   - width : number of design columns the coding produces.
//   - coef  : flat row-major coefficients, level-major.
//
// Returns:
//   - *Contrast: immutable coding ready to attach to a Categorical.
//   - error    : wrapped ErrContrastDims or ErrContrastShape.
//
// Complexity: Time O(levels*width) for the defensive copy.
func NewContrast(levels, width int, coef []float64) (*Contrast, error) {
	// Stage 1 - Geometry must be positive.
	if levels < 1 || width < 1 {
		return nil, fmt.Errorf("NewContrast: %dx%d: %w", levels, width, ErrContrastDims)
	}

	// Stage 2 - Flat length must match the declared shape.
	if len(coef) != levels*width {
		return nil, fmt.Errorf("NewContrast: %d coefficients for %dx%d: %w",
			len(coef), levels, width, ErrContrastShape)
	}

	// Stage 3 - Private copy.
	own := make([]float64, len(coef))
	copy(own, coef)

	return &Contrast{levels: levels, width: width, coef: own}, nil
}

// Levels reports the number of coefficient rows (factor levels).
func (c *Contrast) Levels() int { return c.levels }

// Width reports the number of coefficient columns (design columns).
func (c *Contrast) Width() int { return c.width }

// At returns the coefficient for a level/column pair. Indices are the
// caller's responsibility; this accessor exists for display and tests, hot
// paths index Data directly after validation.
func (c *Contrast) At(level, col int) float64 { return c.coef[level*c.width+col] }

// Row returns the coefficient row for one level as a read-only view.
func (c *Contrast) Row(level int) []float64 {
	base := level * c.width
	return c.coef[base : base+c.width : base+c.width]
}

// Data returns the flat row-major coefficient slice as a live view. Treat it
// as read-only; it is shared with every fill using this coding.
func (c *Contrast) Data() []float64 { return c.coef }
