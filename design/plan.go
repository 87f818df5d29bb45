// SPDX-License-Identifier: MIT

// Scratch planner. One pre-order walk of the term tree fixes the total
// column width and allocates every auxiliary buffer a fill will need, so
// the fill path itself never touches the allocator.

package design

import (
	"fmt"

	"github.com/katalvlaran/modelmat/term"
)

const ctxNewPlan = "NewPlan"

// funcScratch is the evaluation block of one function term: argument j of
// observation r lives at buf[r*arity + j], so one scratch row is exactly the
// argument list of one call.
type funcScratch struct {
	arity int
	buf   []float64 // rows×arity, row-major
}

// interScratch is the evaluation block of one interaction term.
//
// Geometry, fixed at planning:
//   - widths[q]  - column width of component q,
//   - offsets[q] - first scratch column of component q (prefix sums),
//   - strides[q] - ∏ widths[<q]; output column c reads component q at its
//     column (c/strides[q]) mod widths[q], which makes the first component
//     vary fastest,
//   - sum   = Σ widths (scratch row length),
//   - total = ∏ widths (output column count).
type interScratch struct {
	widths  []int
	strides []int
	offsets []int
	sum     int
	total   int
	buf     []float64 // rows×sum, row-major
}

// Plan is the reusable pairing of one term tree with one row count: the
// total width plus every scratch buffer, claimed during fills by two cursors
// that replay the planner's parent-first, left-to-right traversal.
//
// A Plan is not safe for concurrent fills; Clone one per goroutine.
type Plan struct {
	root  term.Term
	rows  int
	width int

	funcs  []funcScratch
	inters []interScratch

	// Claim cursors, reset at the start of every fill.
	nextFunc  int
	nextInter int
}

// NewPlan validates the tree and sizes all buffers for the given row count.
//
// Implementation:
//   - Stage 1: Validate rows ≥ 1 and root non-nil.
//   - Stage 2: Pre-order walk. Each node is validated, then its scratch (if
//     any) is appended before its children are walked, fixing the claim
//     order fills will replay. Widths flow back up: functions demand
//     width-1 arguments, interactions multiply component widths, sequences
//     add child widths.
//
// Inputs:
//   - root: term tree; read-only from here on (the plan retains it).
//   - rows: dataset length every fill must match.
//
// Returns:
//   - *Plan: ready for any number of fills.
//   - error: ErrBadRowCount, ErrNilTerm, ErrUnsupportedTerm,
//     ErrContrastShape, ErrNoArguments, ErrNoFunction, ErrNonScalarArg or
//     ErrNoComponents, wrapped with the offending node's rendering.
//
// Complexity: Time O(nodes), Space O(rows * Σ scratch widths).
func NewPlan(root term.Term, rows int) (*Plan, error) {
	// Stage 1 - Boundary validation.
	if rows < 1 {
		return nil, fmt.Errorf("%s: %d rows: %w", ctxNewPlan, rows, ErrBadRowCount)
	}
	if root == nil {
		return nil, fmt.Errorf("%s: %w", ctxNewPlan, ErrNilTerm)
	}

	// Stage 2 - Walk, validate, size.
	p := &Plan{root: root, rows: rows}
	width, err := p.planNode(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewPlan, err)
	}
	p.width = width

	return p, nil
}

// planNode validates one subtree and returns its column width, appending
// scratch descriptors in claim order (parent before children).
func (p *Plan) planNode(t term.Term) (int, error) {
	switch n := t.(type) {
	case nil:
		return 0, ErrNilTerm

	case *term.Constant:
		return 1, nil

	case *term.Intercept:
		if n.Present {
			return 1, nil
		}
		return 0, nil

	case *term.Continuous:
		return 1, nil

	case *term.Categorical:
		if n.Contrast == nil {
			return 0, fmt.Errorf("categorical %q has no contrast: %w", n.Variable, ErrContrastShape)
		}
		if n.Contrast.Levels() != n.Levels {
			return 0, fmt.Errorf("categorical %q declares %d levels, contrast has %d rows: %w",
				n.Variable, n.Levels, n.Contrast.Levels(), ErrContrastShape)
		}
		return n.Contrast.Width(), nil

	case *term.Func:
		return p.planFunc(n)

	case *term.Interaction:
		return p.planInteraction(n)

	case *term.Sequence:
		width := 0
		for _, child := range n.Terms {
			w, err := p.planNode(child)
			if err != nil {
				return 0, err
			}
			width += w
		}
		return width, nil

	case *term.Grouping:
		return 0, fmt.Errorf("grouping term %s requires fixed-effects extraction first: %w",
			n, ErrUnsupportedTerm)

	default:
		return 0, fmt.Errorf("%T: %w", t, ErrUnsupportedTerm)
	}
}

// planFunc validates arity and callable, claims the rows×arity scratch, then
// walks the arguments - each must be exactly one column wide.
func (p *Plan) planFunc(n *term.Func) (int, error) {
	arity := len(n.Args)
	if arity == 0 {
		return 0, fmt.Errorf("%s: %w", n.Name, ErrNoArguments)
	}
	if !hasCallable(n, arity) {
		return 0, fmt.Errorf("%s with %d arguments: %w", n.Name, arity, ErrNoFunction)
	}

	// Claim before the children so fills replay the same order.
	p.funcs = append(p.funcs, funcScratch{
		arity: arity,
		buf:   make([]float64, p.rows*arity),
	})

	for i, arg := range n.Args {
		w, err := p.planNode(arg)
		if err != nil {
			return 0, err
		}
		if w != 1 {
			return 0, fmt.Errorf("%s argument %d (%s) spans %d columns: %w",
				n.Name, i, arg, w, ErrNonScalarArg)
		}
	}

	return 1, nil
}

// hasCallable reports whether n can be evaluated at the given arity: the
// matching fixed-arity callable, or NAry as the generic fallback.
func hasCallable(n *term.Func, arity int) bool {
	switch arity {
	case 1:
		return n.Unary != nil || n.NAry != nil
	case 2:
		return n.Binary != nil || n.NAry != nil
	case 3:
		return n.Ternary != nil || n.NAry != nil
	default:
		return n.NAry != nil
	}
}

// planInteraction reserves the descriptor slot first (claim order), walks
// the components to learn their widths, then completes the geometry.
func (p *Plan) planInteraction(n *term.Interaction) (int, error) {
	k := len(n.Components)
	if k == 0 {
		return 0, ErrNoComponents
	}

	// Reserve the slot before descending; nested interactions claim later
	// slots, exactly as fills will.
	slot := len(p.inters)
	p.inters = append(p.inters, interScratch{})

	widths := make([]int, k)
	for i, comp := range n.Components {
		w, err := p.planNode(comp)
		if err != nil {
			return 0, err
		}
		widths[i] = w
	}

	// Prefix geometry: offsets are width prefix-sums, strides are width
	// prefix-products (first component varies fastest).
	strides := make([]int, k)
	offsets := make([]int, k)
	sum, total := 0, 1
	for i := 0; i < k; i++ {
		offsets[i] = sum
		strides[i] = total
		sum += widths[i]
		total *= widths[i]
	}

	p.inters[slot] = interScratch{
		widths:  widths,
		strides: strides,
		offsets: offsets,
		sum:     sum,
		total:   total,
		buf:     make([]float64, p.rows*sum),
	}

	return total, nil
}

// Width reports the total number of columns a fill produces.
func (p *Plan) Width() int { return p.width }

// Rows reports the row count the plan was sized for.
func (p *Plan) Rows() int { return p.rows }

// Root returns the term tree the plan was built from. Treat it as read-only:
// mutating a planned tree invalidates the plan.
func (p *Plan) Root() term.Term { return p.root }

// Clone returns an independent plan over the same tree and row count: fresh
// scratch buffers, shared immutable geometry. Intended for handing one plan
// to each worker goroutine.
//
// Complexity: Time O(rows * Σ scratch widths) for the buffer allocations.
func (p *Plan) Clone() *Plan {
	out := &Plan{
		root:   p.root,
		rows:   p.rows,
		width:  p.width,
		funcs:  make([]funcScratch, len(p.funcs)),
		inters: make([]interScratch, len(p.inters)),
	}
	for i := range p.funcs {
		out.funcs[i] = funcScratch{
			arity: p.funcs[i].arity,
			buf:   make([]float64, len(p.funcs[i].buf)),
		}
	}
	for i := range p.inters {
		src := &p.inters[i]
		out.inters[i] = interScratch{
			// Geometry slices are immutable after planning; share them.
			widths:  src.widths,
			strides: src.strides,
			offsets: src.offsets,
			sum:     src.sum,
			total:   src.total,
			buf:     make([]float64, len(src.buf)),
		}
	}
	return out
}
