package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/aerosim/internal/config"
	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/export"
	"github.com/san-kum/aerosim/internal/integrators"
	"github.com/san-kum/aerosim/internal/logging"
	"github.com/san-kum/aerosim/internal/metrics"
	"github.com/san-kum/aerosim/internal/sim"
	"github.com/san-kum/aerosim/internal/viz"
)

func runOptions(cfg *config.Config) ([]sim.Option, error) {
	integ, err := integrators.ByName(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	return []sim.Option{
		sim.WithIntegrator(integ),
		sim.WithMetrics(metrics.ForModel(cfg.Model)...),
	}, nil
}

func runFreeFall(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModelFreeFall)
	if err != nil {
		return err
	}
	opts, err := runOptions(cfg)
	if err != nil {
		return err
	}

	p := cfg.FreeFall
	logger.Info("run started",
		zap.String("model", cfg.Model),
		zap.String("integrator", cfg.Integrator),
		zap.Float64("step", p.Step),
		zap.Float64("duration", p.Duration),
	)
	logParams(cfg.Model, &p.Sphere)

	start := time.Now()
	result := sim.RunFreeFall(p, opts...)
	logFinished(cfg.Model, len(result.Records)-1, time.Since(start), result.Metrics)
	logger.Debug("terminal velocity estimate", zap.Float64("v_terminal", p.Sphere.TerminalVelocity()))

	return emit(cmd, cfg,
		func(w export.Writer) error { return w.WriteFreeFall(result) },
		func() string { return viz.PlotFreeFall(result) },
		result.Metrics,
	)
}

func runWing(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModelWing)
	if err != nil {
		return err
	}
	opts, err := runOptions(cfg)
	if err != nil {
		return err
	}

	p := cfg.Wing
	logger.Info("run started",
		zap.String("model", cfg.Model),
		zap.String("integrator", cfg.Integrator),
		zap.Float64("dt", p.Dt),
		zap.Float64("duration", p.Duration),
		zap.Float64("speed", p.Speed),
		zap.Float64("trim", p.Trim),
	)
	wing := p.Wing()
	logParams(cfg.Model, &wing)

	start := time.Now()
	result := sim.RunWingParams(p, opts...)
	logFinished(cfg.Model, len(result.Records), time.Since(start), result.Metrics)

	return emit(cmd, cfg,
		func(w export.Writer) error { return w.WriteWing(result) },
		func() string { return viz.PlotWing(result) },
		result.Metrics,
	)
}

func logParams(model string, c dynamo.Configurable) {
	logger.Debug("model parameters", append([]zap.Field{zap.String("model", model)}, logging.Metrics(c.GetParams())...)...)
}

func logFinished(model string, steps int, elapsed time.Duration, values map[string]float64) {
	fields := []zap.Field{
		zap.String("model", model),
		zap.Int("steps", steps),
		zap.Duration("elapsed", elapsed),
	}
	logger.Info("run finished", append(fields, logging.Metrics(values)...)...)
}

// emit writes the records to stdout. Plots go after text output, or to
// stderr when stdout carries csv or json.
func emit(cmd *cobra.Command, cfg *config.Config, write func(export.Writer) error, render func() string, values map[string]float64) error {
	out := cmd.OutOrStdout()
	w, err := export.New(cfg.Output.Format, out)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		return err
	}

	if !cfg.Output.Plot {
		return nil
	}
	var plotOut io.Writer = out
	if cfg.Output.Format != "text" {
		plotOut = cmd.ErrOrStderr()
	}
	fmt.Fprintln(plotOut, render())
	fmt.Fprintln(plotOut, viz.Summary("metrics", values))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	opts, err := runOptions(cfg)
	if err != nil {
		return err
	}

	var m *viz.Live
	switch cfg.Model {
	case config.ModelFreeFall:
		m = viz.NewFreeFallLive(sim.RunFreeFall(cfg.FreeFall, opts...))
	default:
		m = viz.NewWingLive(sim.RunWingParams(cfg.Wing, opts...))
	}
	if cmd.Flags().Changed("fps") {
		m.SetFPS(fps)
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "integrator\tfinal_z\tfinal_v\ttime_ms")

	for _, name := range integrators.Names() {
		c := *cfg
		c.Integrator = name
		opts, err := runOptions(&c)
		if err != nil {
			return err
		}

		start := time.Now()
		var z, v float64
		switch c.Model {
		case config.ModelFreeFall:
			last := sim.RunFreeFall(c.FreeFall, opts...).Final()
			z, v = last.Position, last.Velocity
		default:
			records := sim.RunWingParams(c.Wing, opts...).Records
			if len(records) > 0 {
				z, v = records[len(records)-1].Position, records[len(records)-1].Velocity
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.3f\n", name, z, v, float64(elapsed.Microseconds())/1000)
	}
	return tw.Flush()
}
