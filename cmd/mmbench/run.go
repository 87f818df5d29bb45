// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/modelmat/design"
	"github.com/katalvlaran/modelmat/frame"
	"github.com/katalvlaran/modelmat/matrix"
)

// Run flags; config supplies values for the ones left unset.
var (
	flagRows   int
	flagReps   int
	flagSeed   int64
	flagPreset string
	flagGram   bool
)

// pulsePeriod is the rectangular pulse train's period in samples.
const pulsePeriod = 64

// minRows keeps the dataset large enough for every factor level to appear.
const minRows = 16

// runCmd times repeated fills of one preset over a synthetic dataset.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Time repeated design-matrix fills for one preset",
	Long: `Builds a seeded synthetic dataset, plans the chosen preset once and
times two fill modes over it: reusing the plan (steady state) and
re-planning before every fill. With --gram, the run finishes by computing
the Gram matrix of the last fill, the normal-equations product a fitter
would consume next.`,
	RunE: runBench,
}

func init() {
	runCmd.Flags().IntVar(&flagRows, "rows", 0, "Dataset length (default from config)")
	runCmd.Flags().IntVar(&flagReps, "reps", 0, "Fills per timing mode (default from config)")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Noise and factor seed (default from config)")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Model preset name (default from config)")
	runCmd.Flags().BoolVar(&flagGram, "gram", false, "Compute the Gram matrix of the filled result")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rows") {
		cfg.Rows = flagRows
	}
	if cmd.Flags().Changed("reps") {
		cfg.Reps = flagReps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("preset") {
		cfg.Preset = flagPreset
	}
	if cmd.Flags().Changed("gram") {
		cfg.Gram = flagGram
	}

	if cfg.Rows < minRows {
		return fmt.Errorf("rows must be at least %d, got %d", minRows, cfg.Rows)
	}
	if cfg.Reps < 1 {
		return fmt.Errorf("reps must be positive, got %d", cfg.Reps)
	}
	p, err := lookupPreset(cfg.Preset)
	if err != nil {
		return err
	}

	logger.Debug("building dataset",
		zap.Int("rows", cfg.Rows),
		zap.Int64("seed", cfg.Seed))
	data, err := benchFrame(cfg.Rows, cfg.Seed)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	root, err := p.build()
	if err != nil {
		return fmt.Errorf("preset %s: %w", p.name, err)
	}
	plan, err := design.NewPlan(root, cfg.Rows)
	if err != nil {
		return fmt.Errorf("preset %s: %w", p.name, err)
	}
	dst, err := matrix.NewDense(plan.Rows(), plan.Width())
	if err != nil {
		return err
	}

	// Mode 1: one plan, many fills.
	start := time.Now()
	for i := 0; i < cfg.Reps; i++ {
		if err := plan.Fill(dst, data); err != nil {
			return err
		}
	}
	reused := time.Since(start)

	// Mode 2: a fresh plan before every fill.
	start = time.Now()
	for i := 0; i < cfg.Reps; i++ {
		fresh, err := design.NewPlan(root, cfg.Rows)
		if err != nil {
			return err
		}
		if err := fresh.Fill(dst, data); err != nil {
			return err
		}
	}
	replanned := time.Since(start)

	logger.Info("fill timing",
		zap.String("preset", p.name),
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", plan.Width()),
		zap.Int("reps", cfg.Reps),
		zap.Duration("reused_per_fill", reused/time.Duration(cfg.Reps)),
		zap.Duration("replanned_per_fill", replanned/time.Duration(cfg.Reps)),
		zap.Float64("replan_overhead", float64(replanned)/float64(reused)))

	if cfg.Gram {
		xtx, err := matrix.Gram(dst)
		if err != nil {
			return err
		}
		trace := 0.0
		for i := 0; i < xtx.Rows(); i++ {
			v, err := xtx.At(i, i)
			if err != nil {
				return err
			}
			trace += v
		}
		logger.Info("gram checksum",
			zap.Int("order", xtx.Rows()),
			zap.Float64("trace", trace))
	}
	return nil
}

// benchFrame assembles the synthetic dataset every preset draws from:
// deterministic waveforms, seeded noise and two seeded factor columns.
func benchFrame(rows int, seed int64) (*frame.Frame, error) {
	f, err := frame.New(rows)
	if err != nil {
		return nil, err
	}
	if err := f.AddNumeric(colRamp, frame.Ramp(rows)); err != nil {
		return nil, err
	}
	if err := f.AddNumeric(colChirp, frame.Chirp(rows)); err != nil {
		return nil, err
	}
	if err := f.AddNumeric(colPulse, frame.Pulse(rows, pulsePeriod)); err != nil {
		return nil, err
	}
	if err := f.AddNumeric(colNoise, frame.Noise(rows, seed, 1.0)); err != nil {
		return nil, err
	}
	if err := f.AddCategoricalFromStrings(colG, factorColumn(rows, []string{"a", "b", "c"}, seed)); err != nil {
		return nil, err
	}
	if err := f.AddCategoricalFromStrings(colH, factorColumn(rows, []string{"u", "v"}, seed+1)); err != nil {
		return nil, err
	}
	return f, nil
}

// factorColumn draws a seeded label column, then stamps one of each label
// over the leading entries so every level is present at any seed.
func factorColumn(n int, labels []string, seed int64) []string {
	out := frame.Labels(n, labels, seed)
	copy(out, labels)
	return out
}
