// SPDX-License-Identifier: MIT

// Func constructors. A Func node is valid when exactly the callable matching
// its arity is set; building nodes through these constructors keeps that
// pairing right, and the planner re-checks it before any fill.

package term

// Apply1 builds a unary function term: f(arg). Standard library functions
// bind directly, e.g. Apply1("sin", math.Sin, x).
func Apply1(name string, f func(float64) float64, arg Term) *Func {
	return &Func{Name: name, Unary: f, Args: []Term{arg}}
}

// Apply2 builds a binary function term: f(a, b).
func Apply2(name string, f func(float64, float64) float64, a, b Term) *Func {
	return &Func{Name: name, Binary: f, Args: []Term{a, b}}
}

// Apply3 builds a ternary function term: f(a, b, c).
func Apply3(name string, f func(float64, float64, float64) float64, a, b, c Term) *Func {
	return &Func{Name: name, Ternary: f, Args: []Term{a, b, c}}
}

// ApplyN builds a function term of arbitrary arity. The callable receives the
// argument values for one observation as a scratch-backed slice; it must not
// retain the slice across calls.
func ApplyN(name string, f func([]float64) float64, args ...Term) *Func {
	return &Func{Name: name, NAry: f, Args: args}
}
