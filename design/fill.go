// SPDX-License-Identifier: MIT

// Column filler. One recursive kernel serves three destinations through a
// single addressing convention - row-major with an explicit stride: the
// caller's matrix (stride = its column count), function scratch (stride =
// arity) and interaction scratch (stride = Σ component widths). Everything
// here runs after validation: no allocation, no error returns, each cell
// written exactly once per fill.

package design

import (
	"fmt"

	"github.com/katalvlaran/modelmat/frame"
	"github.com/katalvlaran/modelmat/matrix"
	"github.com/katalvlaran/modelmat/term"
)

const (
	ctxFill       = "Fill"
	ctxFillBuffer = "FillBuffer"
)

// Fill writes the planned columns into dst, columns [0, Width()), reading
// variables from data. dst must have exactly the plan's rows and at least
// the plan's width; extra destination columns are left untouched.
//
// Implementation:
//   - Stage 1: Validate destination shape and dataset binding (variables
//     resolvable, kinds matching, level counts agreeing). All errors
//     surface here, before any write.
//   - Stage 2: Reset the claim cursors and run the recursive kernel from
//     column 0; verify the final cursor landed on Width().
//
// Errors:
//   - ErrNilDest, ErrNilData, ErrDimensionMismatch, ErrMissingVariable,
//     ErrVariableType, ErrLevelMismatch; all wrapped with context.
//
// Complexity:
//   - Time O(rows * total work per row), Space O(1) beyond planned buffers.
func (p *Plan) Fill(dst *matrix.Dense, data *frame.Frame) error {
	// Stage 1 - Validate before the first write.
	if dst == nil {
		return fmt.Errorf("%s: %w", ctxFill, ErrNilDest)
	}
	if dst.Rows() != p.rows {
		return fmt.Errorf("%s: destination has %d rows, plan has %d: %w",
			ctxFill, dst.Rows(), p.rows, ErrDimensionMismatch)
	}
	if dst.Cols() < p.width {
		return fmt.Errorf("%s: destination has %d columns, plan needs %d: %w",
			ctxFill, dst.Cols(), p.width, ErrDimensionMismatch)
	}
	if err := p.bindData(data); err != nil {
		return fmt.Errorf("%s: %w", ctxFill, err)
	}

	// Stage 2 - Run.
	return p.run(ctxFill, dst.Data(), dst.Cols(), data)
}

// FillBuffer is Fill for a raw row-major buffer: observation r, column c
// lands at dst[r*stride + c]. stride must be at least the plan's width and
// dst must hold rows*stride values; slack columns are left untouched.
func (p *Plan) FillBuffer(dst []float64, stride int, data *frame.Frame) error {
	if dst == nil {
		return fmt.Errorf("%s: %w", ctxFillBuffer, ErrNilDest)
	}
	if stride < p.width {
		return fmt.Errorf("%s: stride %d below plan width %d: %w",
			ctxFillBuffer, stride, p.width, ErrDimensionMismatch)
	}
	if len(dst) < p.rows*stride {
		return fmt.Errorf("%s: buffer holds %d values, need %d: %w",
			ctxFillBuffer, len(dst), p.rows*stride, ErrDimensionMismatch)
	}
	if err := p.bindData(data); err != nil {
		return fmt.Errorf("%s: %w", ctxFillBuffer, err)
	}

	return p.run(ctxFillBuffer, dst, stride, data)
}

// run resets the claim cursors, fills from column 0 and checks the walk
// consumed exactly the planned width.
func (p *Plan) run(ctx string, buf []float64, stride int, data *frame.Frame) error {
	p.nextFunc, p.nextInter = 0, 0

	next := p.fillInto(p.root, data, buf, stride, 0)
	if next != p.width {
		return fmt.Errorf("%s: cursor at %d after %d planned columns: %w",
			ctx, next, p.width, ErrDimensionMismatch)
	}
	return nil
}

// fillInto writes the columns of t into buf starting at column start and
// returns the next free column. The traversal mirrors planNode exactly;
// scratch is claimed parent-first, left to right. Inputs are proven valid,
// so the kernel neither allocates nor fails; an unplanned node here means
// the tree was mutated after planning, which is a caller bug worth a panic.
func (p *Plan) fillInto(t term.Term, data *frame.Frame, buf []float64, stride, start int) int {
	switch n := t.(type) {
	case *term.Constant:
		return p.fillScalar(buf, stride, start, n.Value)

	case *term.Intercept:
		if !n.Present {
			return start
		}
		return p.fillScalar(buf, stride, start, 1)

	case *term.Continuous:
		vals, _ := data.Numeric(n.Variable) // proven resolvable by bindData
		var r, idx int
		for r, idx = 0, start; r < p.rows; r, idx = r+1, idx+stride {
			buf[idx] = vals[r]
		}
		return start + 1

	case *term.Categorical:
		codes, _, _ := data.Categorical(n.Variable) // proven resolvable by bindData
		coef := n.Contrast.Data()
		cw := n.Contrast.Width()
		var r, k, dstBase, srcBase int
		for r = 0; r < p.rows; r++ {
			srcBase = codes[r] * cw // contrast row for this observation
			dstBase = r*stride + start
			for k = 0; k < cw; k++ {
				buf[dstBase+k] = coef[srcBase+k]
			}
		}
		return start + cw

	case *term.Func:
		return p.fillFunc(n, data, buf, stride, start)

	case *term.Interaction:
		return p.fillInteraction(n, data, buf, stride, start)

	case *term.Sequence:
		col := start
		for _, child := range n.Terms {
			col = p.fillInto(child, data, buf, stride, col)
		}
		return col

	default:
		panic(fmt.Sprintf("design: fill reached unplanned term %T", t))
	}
}

// fillScalar broadcasts v down one column.
func (p *Plan) fillScalar(buf []float64, stride, start int, v float64) int {
	var r, idx int
	for r, idx = 0, start; r < p.rows; r, idx = r+1, idx+stride {
		buf[idx] = v
	}
	return start + 1
}

// fillFunc claims the next function scratch, evaluates each argument into
// its scratch column, then applies the callable once per observation. The
// scratch row r holds the full argument list contiguously, so the n-ary
// path hands the callable a zero-copy view.
func (p *Plan) fillFunc(n *term.Func, data *frame.Frame, buf []float64, stride, start int) int {
	fs := &p.funcs[p.nextFunc] // claim parent-first
	p.nextFunc++
	arity := fs.arity

	// Arguments land in scratch columns 0..arity-1 (scratch stride = arity).
	for j, arg := range n.Args {
		p.fillInto(arg, data, fs.buf, arity, j)
	}

	var r, base, idx int

	// Fixed-arity fast paths call directly; NAry is the generic fallback.
	switch {
	case arity == 1 && n.Unary != nil:
		f := n.Unary
		for r, idx = 0, start; r < p.rows; r, idx = r+1, idx+stride {
			buf[idx] = f(fs.buf[r])
		}
	case arity == 2 && n.Binary != nil:
		f := n.Binary
		for r, idx = 0, start; r < p.rows; r, idx = r+1, idx+stride {
			base = r * 2
			buf[idx] = f(fs.buf[base], fs.buf[base+1])
		}
	case arity == 3 && n.Ternary != nil:
		f := n.Ternary
		for r, idx = 0, start; r < p.rows; r, idx = r+1, idx+stride {
			base = r * 3
			buf[idx] = f(fs.buf[base], fs.buf[base+1], fs.buf[base+2])
		}
	default:
		f := n.NAry // non-nil by planning
		for r, idx = 0, start; r < p.rows; r, idx = r+1, idx+stride {
			base = r * arity
			buf[idx] = f(fs.buf[base : base+arity : base+arity])
		}
	}

	return start + 1
}

// fillInteraction claims the next descriptor, evaluates each component into
// its scratch columns, then expands the per-row Kronecker product: output
// column c multiplies, for each component q, the scratch value at column
// offsets[q] + (c/strides[q]) mod widths[q].
func (p *Plan) fillInteraction(n *term.Interaction, data *frame.Frame, buf []float64, stride, start int) int {
	is := &p.inters[p.nextInter] // claim parent-first
	p.nextInter++

	// Components land side by side in the shared scratch (stride = sum).
	for i, comp := range n.Components {
		p.fillInto(comp, data, is.buf, is.sum, is.offsets[i])
	}

	k := len(is.widths)
	var (
		r, c, q          int
		rowBase, dstBase int
		v                float64
	)
	for r = 0; r < p.rows; r++ {
		rowBase = r * is.sum
		dstBase = r*stride + start
		for c = 0; c < is.total; c++ {
			v = 1
			for q = 0; q < k; q++ {
				v *= is.buf[rowBase+is.offsets[q]+(c/is.strides[q])%is.widths[q]]
			}
			buf[dstBase+c] = v
		}
	}

	return start + is.total
}
