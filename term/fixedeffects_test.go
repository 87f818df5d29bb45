// SPDX-License-Identifier: MIT

package term_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modelmat/term"
)

// treeDiff compares term trees structurally. Contrast internals are opaque
// (compared as equal wrappers) and callables are excluded, which is exactly
// the shape equality extraction cares about.
func treeDiff(want, got term.Term) string {
	return cmp.Diff(want, got,
		cmpopts.IgnoreUnexported(term.Contrast{}),
		cmpopts.IgnoreFields(term.Func{}, "Unary", "Binary", "Ternary", "NAry"),
	)
}

// TestFixedEffects_IdentityWithoutGrouping: trees free of grouping terms come
// back as the same pointer, not a rebuilt copy.
func TestFixedEffects_IdentityWithoutGrouping(t *testing.T) {
	x := &term.Continuous{Variable: "x"}
	g := &term.Categorical{Variable: "g", Levels: 3, Contrast: dummy3(t)}
	rhs := &term.Sequence{Terms: []term.Term{
		&term.Intercept{Present: true},
		x,
		g,
		&term.Interaction{Components: []term.Term{x, g}},
		term.Apply1("log", math.Log, x),
	}}

	out := term.FixedEffects(rhs)
	assert.Same(t, rhs, out, "no grouping terms: extraction must be the identity")

	assert.Nil(t, term.FixedEffects(nil), "nil tree stays nil")
}

// TestFixedEffects_StripsSequenceEntries removes grouping entries from a
// sequence while preserving order of the survivors.
func TestFixedEffects_StripsSequenceEntries(t *testing.T) {
	x := &term.Continuous{Variable: "x"}
	g := &term.Categorical{Variable: "g", Levels: 3, Contrast: dummy3(t)}
	rhs := &term.Sequence{Terms: []term.Term{
		&term.Intercept{Present: true},
		x,
		&term.Grouping{Inner: &term.Intercept{Present: true}, Factor: "subject"},
		g,
		&term.Grouping{Inner: x, Factor: "site"},
	}}

	out := term.FixedEffects(rhs)
	want := &term.Sequence{Terms: []term.Term{&term.Intercept{Present: true}, x, g}}
	assert.Empty(t, treeDiff(want, out))

	// Source tree is untouched.
	assert.Len(t, rhs.Terms, 5, "extraction must not mutate its input")
}

// TestFixedEffects_InterceptOnlySubstitution: stripping everything yields an
// intercept-only term rather than an empty model.
func TestFixedEffects_InterceptOnlySubstitution(t *testing.T) {
	lone := &term.Grouping{Inner: &term.Continuous{Variable: "x"}, Factor: "g"}
	out := term.FixedEffects(lone)
	require.IsType(t, &term.Intercept{}, out)
	assert.True(t, out.(*term.Intercept).Present)

	seq := &term.Sequence{Terms: []term.Term{
		&term.Grouping{Inner: &term.Intercept{Present: true}, Factor: "a"},
		&term.Grouping{Inner: &term.Intercept{Present: true}, Factor: "b"},
	}}
	out = term.FixedEffects(seq)
	require.IsType(t, &term.Intercept{}, out)
	assert.True(t, out.(*term.Intercept).Present)
}

// TestFixedEffects_CascadingRemoval exercises the composite rules: emptied
// nested sequences vanish, interactions lose stripped components, functions
// with stripped arguments go away whole.
func TestFixedEffects_CascadingRemoval(t *testing.T) {
	x := &term.Continuous{Variable: "x"}
	z := &term.Continuous{Variable: "z"}
	grp := &term.Grouping{Inner: x, Factor: "g"}

	t.Run("emptied nested sequence is dropped", func(t *testing.T) {
		rhs := &term.Sequence{Terms: []term.Term{
			x,
			&term.Sequence{Terms: []term.Term{grp}},
		}}
		out := term.FixedEffects(rhs)
		want := &term.Sequence{Terms: []term.Term{x}}
		assert.Empty(t, treeDiff(want, out))
	})

	t.Run("surviving nested sequence keeps survivors", func(t *testing.T) {
		rhs := &term.Sequence{Terms: []term.Term{
			x,
			&term.Sequence{Terms: []term.Term{z, grp}},
			term.Apply1("sin", math.Sin, z),
		}}
		out := term.FixedEffects(rhs)
		// The expected sin node carries its own callable instance; shape
		// comparison must not look at function identity.
		want := &term.Sequence{Terms: []term.Term{
			x,
			&term.Sequence{Terms: []term.Term{z}},
			term.Apply1("sin", math.Sin, z),
		}}
		assert.Empty(t, treeDiff(want, out))
	})

	t.Run("interaction sheds stripped component", func(t *testing.T) {
		rhs := &term.Interaction{Components: []term.Term{x, grp}}
		out := term.FixedEffects(rhs)
		want := &term.Interaction{Components: []term.Term{x}}
		assert.Empty(t, treeDiff(want, out))
	})

	t.Run("function with stripped argument is removed whole", func(t *testing.T) {
		rhs := &term.Sequence{Terms: []term.Term{
			x,
			term.Apply1("sin", math.Sin, grp),
		}}
		out := term.FixedEffects(rhs)
		want := &term.Sequence{Terms: []term.Term{x}}
		assert.Empty(t, treeDiff(want, out))
	})
}

// TestFixedEffects_Idempotent: applying twice equals applying once, and the
// second application is the identity.
func TestFixedEffects_Idempotent(t *testing.T) {
	x := &term.Continuous{Variable: "x"}
	rhs := &term.Sequence{Terms: []term.Term{
		&term.Intercept{Present: true},
		x,
		&term.Grouping{Inner: x, Factor: "subject"},
	}}

	once := term.FixedEffects(rhs)
	twice := term.FixedEffects(once)
	assert.Same(t, once, twice, "second extraction must be the identity")
	assert.Empty(t, treeDiff(once, twice))
}

// TestFormula_FixedEffects preserves the response and rewrites only the RHS.
func TestFormula_FixedEffects(t *testing.T) {
	y := &term.Continuous{Variable: "y"}
	x := &term.Continuous{Variable: "x"}
	f := &term.Formula{
		Response: y,
		RHS: &term.Sequence{Terms: []term.Term{
			&term.Intercept{Present: true},
			x,
			&term.Grouping{Inner: &term.Intercept{Present: true}, Factor: "subject"},
		}},
	}

	out := f.FixedEffects()
	require.NotSame(t, f, out)
	assert.Same(t, y, out.Response, "response term must pass through untouched")
	want := &term.Sequence{Terms: []term.Term{&term.Intercept{Present: true}, x}}
	assert.Empty(t, treeDiff(want, out.RHS))
	assert.Equal(t, "y ~ 1 + x", out.String())

	// No grouping: the receiver itself comes back.
	plain := &term.Formula{Response: y, RHS: x}
	assert.Same(t, plain, plain.FixedEffects())

	var nilFormula *term.Formula
	assert.Nil(t, nilFormula.FixedEffects())
}
