// SPDX-License-Identifier: MIT

package design

import (
	"fmt"

	"github.com/katalvlaran/modelmat/frame"
	"github.com/katalvlaran/modelmat/matrix"
	"github.com/katalvlaran/modelmat/term"
)

const ctxMatrix = "Matrix"

// Matrix plans root against data and fills a freshly allocated matrix in one
// call. It is the convenience path for single-shot use; callers filling the
// same model repeatedly should build the Plan once and reuse it.
//
// A model whose every column vanished (an absent intercept, say) has width
// zero, which no Dense can represent; such plans are only usable through
// FillBuffer.
//
// Returns:
//   - *matrix.Dense: rows×Width() result, one column block per term.
//   - error: any planning or filling failure, wrapped with context.
//
// Complexity: Time O(plan + fill), Space O(rows * width) for the result.
func Matrix(root term.Term, data *frame.Frame) (*matrix.Dense, error) {
	if data == nil {
		return nil, fmt.Errorf("%s: %w", ctxMatrix, ErrNilData)
	}

	p, err := NewPlan(root, data.Rows())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMatrix, err)
	}

	dst, err := matrix.NewDense(p.Rows(), p.Width())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMatrix, err)
	}

	if err := p.Fill(dst, data); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMatrix, err)
	}
	return dst, nil
}
