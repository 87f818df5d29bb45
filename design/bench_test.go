// SPDX-License-Identifier: MIT

// Package design_test provides benchmarks for planning and filling, using
// deterministic synthetic datasets.
package design_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/modelmat/design"
	"github.com/katalvlaran/modelmat/frame"
	"github.com/katalvlaran/modelmat/matrix"
	"github.com/katalvlaran/modelmat/term"
)

// benchRows are the dataset lengths to benchmark.
var benchRows = []int{1 << 10, 1 << 13, 1 << 16}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkP *design.Plan
)

// benchFrame builds n rows of deterministic signal columns plus a
// three-level factor.
func benchFrame(b *testing.B, n int) *frame.Frame {
	b.Helper()
	f, err := frame.New(n)
	if err != nil {
		b.Fatal(err)
	}
	if err := f.AddNumeric("t", frame.Ramp(n)); err != nil {
		b.Fatal(err)
	}
	if err := f.AddNumeric("s", frame.Chirp(n)); err != nil {
		b.Fatal(err)
	}
	if err := f.AddCategoricalFromStrings("g", frame.Labels(n, []string{"a", "b", "c"}, 1337)); err != nil {
		b.Fatal(err)
	}
	return f
}

// benchModel is a representative mixed tree: intercept, raw signal, a
// contrast expansion, a function column and a crossed interaction.
func benchModel(b *testing.B) term.Term {
	b.Helper()
	coef, err := term.NewContrast(3, 2, []float64{0, 0, 1, 0, 0, 1})
	if err != nil {
		b.Fatal(err)
	}
	g := &term.Categorical{Variable: "g", Levels: 3, Contrast: coef}
	return &term.Sequence{Terms: []term.Term{
		&term.Intercept{Present: true},
		&term.Continuous{Variable: "t"},
		g,
		term.Apply2("mul", func(a, c float64) float64 { return a * c },
			&term.Continuous{Variable: "t"}, &term.Continuous{Variable: "s"}),
		&term.Interaction{Components: []term.Term{&term.Continuous{Variable: "s"}, g}},
	}}
}

// BenchmarkFill_ReusedPlan is the steady-state path: plan once, fill many.
// The fill itself must not allocate.
func BenchmarkFill_ReusedPlan(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			data := benchFrame(b, n)
			p, err := design.NewPlan(benchModel(b), n)
			if err != nil {
				b.Fatal(err)
			}
			dst, err := matrix.NewDense(n, p.Width())
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := p.Fill(dst, data); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = dst
		})
	}
}

// BenchmarkFill_PlanEachTime re-plans per fill, the cost the reusable Plan
// exists to avoid.
func BenchmarkFill_PlanEachTime(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			data := benchFrame(b, n)
			root := benchModel(b)
			dst, err := matrix.NewDense(n, 8)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := design.NewPlan(root, n)
				if err != nil {
					b.Fatal(err)
				}
				if err := p.Fill(dst, data); err != nil {
					b.Fatal(err)
				}
				sinkP = p
			}
		})
	}
}

// BenchmarkNewPlan isolates planning: one tree walk plus scratch allocation.
func BenchmarkNewPlan(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			root := benchModel(b)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := design.NewPlan(root, n)
				if err != nil {
					b.Fatal(err)
				}
				sinkP = p
			}
		})
	}
}
