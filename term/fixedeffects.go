// SPDX-License-Identifier: MIT

// Fixed-effects extraction: the bridge between a mixed-model specification
// and the planner, which only materializes fixed effects.

package term

// FixedEffects returns t with every Grouping node removed.
//
// The transformation is pure and idempotent. When t contains no grouping
// terms the input is returned unchanged (same pointer); rebuilt nodes are
// allocated only along changed paths. When stripping removes everything -
// the whole tree was grouping terms - an intercept-only term is substituted
// so the result still spans a one-column model, mirroring how mixed-model
// formulas keep their implicit intercept when all random terms drop.
//
// Removal cascades upward through composites:
//   - a Sequence loses stripped children; a Sequence left with none is
//     itself removed,
//   - an Interaction loses stripped components; one left with none is
//     removed,
//   - a Func whose any argument is stripped is removed whole, since a
//     partially-applied function has no meaning.
//
// A nil input is returned as nil.
func FixedEffects(t Term) Term {
	out, changed := stripGrouping(t)
	if !changed {
		return t
	}
	if out == nil {
		// Everything was random-effects structure.
		return &Intercept{Present: true}
	}
	return out
}

// stripGrouping walks the tree bottom-up. It reports (result, changed);
// result == nil means the node vanished entirely. Unchanged subtrees are
// returned by pointer so no-op extractions allocate nothing.
func stripGrouping(t Term) (Term, bool) {
	switch n := t.(type) {
	case *Grouping:
		return nil, true

	case *Sequence:
		kept, changed := stripChildren(n.Terms)
		if !changed {
			return n, false
		}
		if len(kept) == 0 {
			return nil, true
		}
		return &Sequence{Terms: kept}, true

	case *Interaction:
		kept, changed := stripChildren(n.Components)
		if !changed {
			return n, false
		}
		if len(kept) == 0 {
			return nil, true
		}
		return &Interaction{Components: kept}, true

	case *Func:
		rebuilt := n.Args
		changed := false
		var i int
		for i = 0; i < len(n.Args); i++ {
			arg, argChanged := stripGrouping(n.Args[i])
			if !argChanged {
				continue
			}
			if arg == nil {
				// Losing an argument voids the application.
				return nil, true
			}
			if !changed {
				rebuilt = make([]Term, len(n.Args))
				copy(rebuilt, n.Args)
				changed = true
			}
			rebuilt[i] = arg
		}
		if !changed {
			return n, false
		}
		out := *n
		out.Args = rebuilt
		return &out, true

	default:
		// Leaves (Constant, Intercept, Continuous, Categorical) and nil.
		return t, false
	}
}

// stripChildren strips a child list, dropping vanished entries. The input
// slice is returned untouched when nothing changed.
func stripChildren(children []Term) ([]Term, bool) {
	changed := false
	kept := children
	var out []Term
	var i int
	for i = 0; i < len(children); i++ {
		child, childChanged := stripGrouping(children[i])
		if childChanged && !changed {
			// First change: materialize the prefix kept so far.
			out = make([]Term, 0, len(children))
			out = append(out, children[:i]...)
			changed = true
		}
		if changed && (child != nil || !childChanged) {
			// Drop a child only when stripping itself removed it; anything
			// else is preserved verbatim, including structurally odd input.
			out = append(out, child)
		}
	}
	if !changed {
		return kept, false
	}
	return out, true
}

// Formula pairs an optional response term with a right-hand side.
type Formula struct {
	Response Term
	RHS      Term
}

// FixedEffects applies the extraction to the right-hand side only; the
// response is preserved untouched. Returns the receiver when nothing changed.
func (f *Formula) FixedEffects() *Formula {
	if f == nil {
		return nil
	}
	rhs := FixedEffects(f.RHS)
	if rhs == f.RHS {
		return f
	}
	return &Formula{Response: f.Response, RHS: rhs}
}

// String renders "response ~ rhs", or "~ rhs" without a response.
func (f *Formula) String() string {
	if f.Response == nil {
		return "~ " + render(f.RHS)
	}
	return render(f.Response) + " ~ " + render(f.RHS)
}
