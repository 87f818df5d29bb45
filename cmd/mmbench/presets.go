// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modelmat/design"
	"github.com/katalvlaran/modelmat/term"
)

// Dataset column names every preset draws from; built by benchFrame.
const (
	colRamp  = "t" // linear ramp over [0,1]
	colChirp = "s" // swept sine
	colPulse = "p" // rectangular pulse train
	colNoise = "w" // seeded Gaussian noise
	colG     = "g" // three-level factor (a, b, c)
	colH     = "h" // two-level factor (u, v)
)

// preset pairs a model name with its tree builder. Trees are constructed in
// code; there is no term serialization.
type preset struct {
	name     string
	describe string
	build    func() (term.Term, error)
}

// presetList is the listing and lookup order.
var presetList = []preset{
	{
		name:     "linear",
		describe: "intercept, ramp and a noise regressor",
		build: func() (term.Term, error) {
			return &term.Sequence{Terms: []term.Term{
				&term.Intercept{Present: true},
				&term.Continuous{Variable: colRamp},
				&term.Continuous{Variable: colNoise},
			}}, nil
		},
	},
	{
		name:     "poly",
		describe: "cubic polynomial in the ramp via pow terms",
		build: func() (term.Term, error) {
			t := &term.Continuous{Variable: colRamp}
			return &term.Sequence{Terms: []term.Term{
				&term.Intercept{Present: true},
				t,
				term.Apply2("pow", math.Pow, t, &term.Constant{Value: 2}),
				term.Apply2("pow", math.Pow, t, &term.Constant{Value: 3}),
			}}, nil
		},
	},
	{
		name:     "factor",
		describe: "ramp plus a dummy-coded three-level factor",
		build: func() (term.Term, error) {
			g, err := dummyG()
			if err != nil {
				return nil, err
			}
			return &term.Sequence{Terms: []term.Term{
				&term.Intercept{Present: true},
				&term.Continuous{Variable: colRamp},
				g,
			}}, nil
		},
	},
	{
		name:     "interaction",
		describe: "factor model plus the ramp:factor product columns",
		build: func() (term.Term, error) {
			g, err := dummyG()
			if err != nil {
				return nil, err
			}
			t := &term.Continuous{Variable: colRamp}
			return &term.Sequence{Terms: []term.Term{
				&term.Intercept{Present: true},
				t,
				g,
				&term.Interaction{Components: []term.Term{t, g}},
			}}, nil
		},
	},
	{
		name:     "signal",
		describe: "chirp, a sine-warped ramp and a gated pulse train",
		build: func() (term.Term, error) {
			h, err := dummyH()
			if err != nil {
				return nil, err
			}
			return &term.Sequence{Terms: []term.Term{
				&term.Intercept{Present: true},
				&term.Continuous{Variable: colChirp},
				term.Apply1("sin2pi", func(x float64) float64 {
					return math.Sin(2 * math.Pi * x)
				}, &term.Continuous{Variable: colRamp}),
				&term.Interaction{Components: []term.Term{
					&term.Continuous{Variable: colPulse},
					h,
				}},
			}}, nil
		},
	},
	{
		name:     "crossed",
		describe: "fully crossed indicator factors, the widest preset",
		build: func() (term.Term, error) {
			g, err := indicatorG()
			if err != nil {
				return nil, err
			}
			h, err := indicatorH()
			if err != nil {
				return nil, err
			}
			return &term.Sequence{Terms: []term.Term{
				&term.Intercept{Present: true},
				g,
				h,
				&term.Interaction{Components: []term.Term{g, h}},
			}}, nil
		},
	},
}

// lookupPreset resolves a preset by name.
func lookupPreset(name string) (preset, error) {
	for _, p := range presetList {
		if p.name == name {
			return p, nil
		}
	}
	return preset{}, fmt.Errorf("unknown preset %q (run \"mmbench presets\")", name)
}

// dummyG: three levels, first as reference.
func dummyG() (*term.Categorical, error) {
	coef, err := term.NewContrast(3, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
	})
	if err != nil {
		return nil, err
	}
	return &term.Categorical{Variable: colG, Levels: 3, Contrast: coef}, nil
}

// dummyH: two levels, first as reference.
func dummyH() (*term.Categorical, error) {
	coef, err := term.NewContrast(2, 1, []float64{0, 1})
	if err != nil {
		return nil, err
	}
	return &term.Categorical{Variable: colH, Levels: 2, Contrast: coef}, nil
}

// indicatorG: three levels, one column per level.
func indicatorG() (*term.Categorical, error) {
	coef, err := term.NewContrast(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	if err != nil {
		return nil, err
	}
	return &term.Categorical{Variable: colG, Levels: 3, Contrast: coef}, nil
}

// indicatorH: two levels, one column per level.
func indicatorH() (*term.Categorical, error) {
	coef, err := term.NewContrast(2, 2, []float64{
		1, 0,
		0, 1,
	})
	if err != nil {
		return nil, err
	}
	return &term.Categorical{Variable: colH, Levels: 2, Contrast: coef}, nil
}

// presetsCmd lists the available model presets with their column widths.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in model presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range presetList {
			root, err := p.build()
			if err != nil {
				return fmt.Errorf("preset %s: %w", p.name, err)
			}
			// Width is rows-independent; a 1-row plan reads it off.
			plan, err := design.NewPlan(root, 1)
			if err != nil {
				return fmt.Errorf("preset %s: %w", p.name, err)
			}
			fmt.Printf("%-12s %2d columns  %s\n", p.name, plan.Width(), p.describe)
		}
		return nil
	},
}
