// SPDX-License-Identifier: MIT

package design_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/modelmat/design"
	"github.com/katalvlaran/modelmat/frame"
	"github.com/katalvlaran/modelmat/matrix"
	"github.com/katalvlaran/modelmat/term"
)

// ExampleMatrix builds the classic intercept + slope + factor model in one
// call.
func ExampleMatrix() {
	// 1) A three-row dataset: numeric x, two-level factor g.
	data, err := frame.New(3)
	if err != nil {
		log.Fatal(err)
	}
	_ = data.AddNumeric("x", []float64{1, 2, 3})
	_ = data.AddCategoricalFromStrings("g", []string{"a", "b", "a"})

	// 2) Dummy coding for g: reference level "a" maps to 0, "b" to 1.
	coef, err := term.NewContrast(2, 1, []float64{0, 1})
	if err != nil {
		log.Fatal(err)
	}

	// 3) The model 1 + x + g as an explicit term tree.
	model := &term.Sequence{Terms: []term.Term{
		&term.Intercept{Present: true},
		&term.Continuous{Variable: "x"},
		&term.Categorical{Variable: "g", Levels: 2, Contrast: coef},
	}}

	// 4) Plan, allocate and fill in one shot.
	m, err := design.Matrix(model, data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(m)

	// Output:
	// [1 1 0]
	// [1 2 1]
	// [1 3 0]
}

// ExamplePlan_Fill reuses one plan across fills, the steady-state pattern
// for repeated model evaluation.
func ExamplePlan_Fill() {
	data, err := frame.New(4)
	if err != nil {
		log.Fatal(err)
	}
	_ = data.AddNumeric("x", []float64{0, 1, 2, 3})

	// x and x² side by side.
	model := &term.Sequence{Terms: []term.Term{
		&term.Continuous{Variable: "x"},
		&term.Interaction{Components: []term.Term{
			&term.Continuous{Variable: "x"},
			&term.Continuous{Variable: "x"},
		}},
	}}

	// 1) Plan once: validates the tree and sizes every scratch buffer.
	p, err := design.NewPlan(model, data.Rows())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("width:", p.Width())

	// 2) Fill as often as needed; no allocation happens here.
	dst, err := matrix.NewDense(p.Rows(), p.Width())
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Fill(dst, data); err != nil {
		log.Fatal(err)
	}
	fmt.Print(dst)

	// Output:
	// width: 2
	// [0 0]
	// [1 1]
	// [2 4]
	// [3 9]
}

// ExamplePlan_FillBuffer writes planned columns into a caller-owned strided
// buffer, leaving the slack column untouched.
func ExamplePlan_FillBuffer() {
	data, err := frame.New(2)
	if err != nil {
		log.Fatal(err)
	}
	_ = data.AddNumeric("x", []float64{5, 6})

	p, err := design.NewPlan(&term.Continuous{Variable: "x"}, data.Rows())
	if err != nil {
		log.Fatal(err)
	}

	// One planned column, one slack column per row.
	buf := []float64{-1, -1, -1, -1}
	if err := p.FillBuffer(buf, 2, data); err != nil {
		log.Fatal(err)
	}
	fmt.Println(buf)

	// Output:
	// [5 -1 6 -1]
}
