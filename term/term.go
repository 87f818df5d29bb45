// SPDX-License-Identifier: MIT

// Term node kinds. The set is closed: every variant lives in this package and
// carries the unexported marker method, so a type switch over Term is
// exhaustive and anything foreign is rejected by construction.

package term

import (
	"strconv"
	"strings"
)

// Term is one node of a model-term tree.
//
// Width reports the number of design-matrix columns the node expands to.
// It is a static property of the tree shape: data never changes it. Width
// assumes a well-formed subtree (no nil children, no nil contrast); planners
// validate structure before relying on it.
//
// String renders the node in compact formula notation ("x", "sin(x)", "x:g",
// "1 + x + g"). The rendering is for logs and error context, not parsing.
type Term interface {
	Width() int
	String() string

	// termNode seals the interface to this package.
	termNode()
}

// Compile-time conformance of every node kind.
var (
	_ Term = (*Constant)(nil)
	_ Term = (*Intercept)(nil)
	_ Term = (*Continuous)(nil)
	_ Term = (*Categorical)(nil)
	_ Term = (*Func)(nil)
	_ Term = (*Interaction)(nil)
	_ Term = (*Sequence)(nil)
	_ Term = (*Grouping)(nil)
)

// render guards child rendering so String stays total on broken trees.
func render(t Term) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Constant is a fixed scalar broadcast down a single column.
type Constant struct {
	Value float64
}

func (*Constant) termNode()  {}
func (*Constant) Width() int { return 1 }

func (c *Constant) String() string { return strconv.FormatFloat(c.Value, 'g', -1, 64) }

// Intercept is the all-ones column. Present=false keeps the node in the tree
// as an explicit "no intercept" marker contributing zero columns.
type Intercept struct {
	Present bool
}

func (*Intercept) termNode() {}

func (ic *Intercept) Width() int {
	if ic.Present {
		return 1
	}
	return 0
}

func (ic *Intercept) String() string {
	if ic.Present {
		return "1"
	}
	return "0"
}

// Continuous references a numeric dataset variable whose values are copied
// verbatim into one column.
type Continuous struct {
	Variable string
}

func (*Continuous) termNode()        {}
func (*Continuous) Width() int       { return 1 }
func (v *Continuous) String() string { return v.Variable }

// Categorical references an integer-coded dataset variable expanded through
// a precomputed contrast coding. Levels declares the factor's domain size;
// planners cross-check it against the contrast's row count, and fills index
// contrast rows by the per-observation level code.
type Categorical struct {
	Variable string
	Levels   int
	Contrast *Contrast
}

func (*Categorical) termNode() {}

// Width is the number of contrast columns.
func (f *Categorical) Width() int { return f.Contrast.Width() }

func (f *Categorical) String() string { return f.Variable }

// Func applies a scalar function to scalar argument terms, producing one
// column. Exactly one callable field matching len(Args) must be set; the
// Apply constructors in this package keep that invariant for you.
type Func struct {
	Name string

	// Fixed-arity fast paths; standard library functions such as math.Sin
	// or math.Pow bind directly.
	Unary   func(float64) float64
	Binary  func(float64, float64) float64
	Ternary func(float64, float64, float64) float64

	// NAry is the generic path for arity ≥ 4. The argument slice is a view
	// into planner-owned scratch: read it, never retain it.
	NAry func([]float64) float64

	Args []Term
}

func (*Func) termNode()  {}
func (*Func) Width() int { return 1 }

// Arity is the number of argument terms.
func (fn *Func) Arity() int { return len(fn.Args) }

func (fn *Func) String() string {
	parts := make([]string, len(fn.Args))
	for i, a := range fn.Args {
		parts[i] = render(a)
	}
	return fn.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Interaction multiplies its components element-wise across every
// combination of their columns (Kronecker expansion by rows). Component
// order fixes output order: the first component's columns vary fastest.
type Interaction struct {
	Components []Term
}

func (*Interaction) termNode() {}

// Width is the product of component widths.
func (ia *Interaction) Width() int {
	w := 1
	for _, c := range ia.Components {
		w *= c.Width()
	}
	return w
}

func (ia *Interaction) String() string {
	parts := make([]string, len(ia.Components))
	for i, c := range ia.Components {
		parts[i] = render(c)
	}
	return strings.Join(parts, ":")
}

// Sequence concatenates child terms left to right. The usual model RHS is a
// Sequence; nested sequences flatten naturally during filling.
type Sequence struct {
	Terms []Term
}

func (*Sequence) termNode() {}

// Width is the sum of child widths.
func (s *Sequence) Width() int {
	w := 0
	for _, t := range s.Terms {
		w += t.Width()
	}
	return w
}

func (s *Sequence) String() string {
	if len(s.Terms) == 0 {
		return "<empty>"
	}
	parts := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		parts[i] = render(t)
	}
	return strings.Join(parts, " + ")
}

// Grouping marks a random-effects specification: Inner varies within the
// levels of the grouping factor. It contributes no fixed-effect columns and
// is rejected by planners; FixedEffects strips it from a tree first.
type Grouping struct {
	Inner  Term
	Factor string
}

func (*Grouping) termNode()  {}
func (*Grouping) Width() int { return 0 }

func (g *Grouping) String() string { return "(" + render(g.Inner) + " | " + g.Factor + ")" }
