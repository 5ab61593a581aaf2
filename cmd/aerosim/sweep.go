package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/aerosim/internal/config"
	"github.com/san-kum/aerosim/internal/integrators"
	"github.com/san-kum/aerosim/internal/metrics"
	"github.com/san-kum/aerosim/internal/sim"
)

// sweepRow is one line of the sweep table.
type sweepRow struct {
	value   float64
	finalZ  float64
	finalV  float64
	metrics map[string]float64
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if sweepN <= 0 {
		return fmt.Errorf("sweep: --n must be positive, got %d", sweepN)
	}

	newOpts := func() []sim.Option {
		// validated by resolveConfig
		integ, _ := integrators.ByName(cfg.Integrator)
		return []sim.Option{
			sim.WithIntegrator(integ),
			sim.WithMetrics(metrics.ForModel(cfg.Model)...),
		}
	}

	values := sim.Linspace(sweepFrom, sweepTo, sweepN)
	logger.Info("sweep started",
		zap.String("model", cfg.Model),
		zap.String("param", sweepParam),
		zap.Float64s("values", values),
		zap.Int("workers", sweepWorkers),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	rows := make([]sweepRow, len(values))
	switch cfg.Model {
	case config.ModelFreeFall:
		params, err := sim.FreeFallSweep(cfg.FreeFall, sweepParam, values)
		if err != nil {
			return err
		}
		results, err := sim.FreeFallEnsemble(ctx, params, sweepWorkers, newOpts)
		if err != nil {
			return err
		}
		for i, r := range results {
			last := r.Final()
			rows[i] = sweepRow{value: values[i], finalZ: last.Position, finalV: last.Velocity, metrics: r.Metrics}
		}
	case config.ModelWing:
		params, err := sim.WingSweep(cfg.Wing, sweepParam, values)
		if err != nil {
			return err
		}
		results, err := sim.WingEnsemble(ctx, params, sweepWorkers, newOpts)
		if err != nil {
			return err
		}
		for i, r := range results {
			row := sweepRow{value: values[i], metrics: r.Metrics}
			if n := len(r.Records); n > 0 {
				row.finalZ, row.finalV = r.Records[n-1].Position, r.Records[n-1].Velocity
			}
			rows[i] = row
		}
	}
	logger.Info("sweep finished", zap.Int("runs", len(rows)), zap.Duration("elapsed", time.Since(start)))

	var names []string
	for _, m := range metrics.ForModel(cfg.Model) {
		names = append(names, m.Name())
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tfinal_z\tfinal_v", sweepParam)
	for _, name := range names {
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		fmt.Fprintf(tw, "%.6g\t%.6g\t%.6g", row.value, row.finalZ, row.finalV)
		for _, name := range names {
			fmt.Fprintf(tw, "\t%.6g", row.metrics[name])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
