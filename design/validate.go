// SPDX-License-Identifier: MIT

// Fill-start dataset binding. The planner proved the tree; this walk proves
// the dataset against it: row counts agree, every referenced variable
// resolves with the right column kind, and categorical level counts match
// their contrasts. It is O(tree size) - the per-row level-code scan already
// happened when the frame was built.

package design

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/modelmat/frame"
	"github.com/katalvlaran/modelmat/term"
)

// bindData validates data against the plan. Called at the start of every
// fill, before the first destination write.
func (p *Plan) bindData(data *frame.Frame) error {
	if data == nil {
		return ErrNilData
	}
	if data.Rows() != p.rows {
		return fmt.Errorf("dataset has %d rows, plan has %d: %w",
			data.Rows(), p.rows, ErrDimensionMismatch)
	}
	return p.bindVars(p.root, data)
}

// bindVars recursively resolves every variable reference in the subtree.
func (p *Plan) bindVars(t term.Term, data *frame.Frame) error {
	switch n := t.(type) {
	case *term.Continuous:
		if _, err := data.Numeric(n.Variable); err != nil {
			return classifyLookup(n.Variable, err)
		}
		return nil

	case *term.Categorical:
		_, labels, err := data.Categorical(n.Variable)
		if err != nil {
			return classifyLookup(n.Variable, err)
		}
		if len(labels) != n.Levels {
			return fmt.Errorf("variable %q has %d levels, contrast expects %d: %w",
				n.Variable, len(labels), n.Levels, ErrLevelMismatch)
		}
		return nil

	case *term.Func:
		for _, arg := range n.Args {
			if err := p.bindVars(arg, data); err != nil {
				return err
			}
		}
		return nil

	case *term.Interaction:
		for _, comp := range n.Components {
			if err := p.bindVars(comp, data); err != nil {
				return err
			}
		}
		return nil

	case *term.Sequence:
		for _, child := range n.Terms {
			if err := p.bindVars(child, data); err != nil {
				return err
			}
		}
		return nil

	default:
		// Constant and Intercept reference no data.
		return nil
	}
}

// classifyLookup maps frame lookup failures onto the design sentinels.
func classifyLookup(variable string, err error) error {
	switch {
	case errors.Is(err, frame.ErrUnknownColumn):
		return fmt.Errorf("variable %q: %w", variable, ErrMissingVariable)
	case errors.Is(err, frame.ErrColumnType):
		return fmt.Errorf("variable %q: %w", variable, ErrVariableType)
	default:
		return fmt.Errorf("variable %q: %w", variable, err)
	}
}
