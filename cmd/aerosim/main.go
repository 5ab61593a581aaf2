package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/aerosim/internal/config"
	"github.com/san-kum/aerosim/internal/integrators"
	"github.com/san-kum/aerosim/internal/logging"
)

var (
	configFile string
	preset     string
	integrator string
	format     string
	plot       bool
	logLevel   string

	logger = zap.NewNop()
)

// free fall flags
var (
	ffZ0, ffV0                      float64
	ffDiameter, ffViscosity         float64
	ffSphereDensity, ffFluidDensity float64
	ffGravity                       float64
	ffStep, ffDuration              float64
)

// wing flags
var (
	wSpeed, wDuration, wTrim float64
	wBeta, wDt               float64
	wZ0, wV0                 float64
)

// sweep flags
var (
	sweepParam   string
	sweepFrom    float64
	sweepTo      float64
	sweepN       int
	sweepWorkers int
)

var fps int

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "aerosim",
		Short:        "falling spheres and fluttering wings, integrated with RK4",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			l, err := logging.New(level)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&integrator, "integrator", "rk4", fmt.Sprintf("integrator %v", integrators.Names()))
	pf.StringVar(&format, "format", config.DefaultFormat, fmt.Sprintf("output format %v", config.Formats))
	pf.BoolVar(&plot, "plot", false, "plot the run after the records")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	freefallCmd := &cobra.Command{
		Use:   "freefall",
		Short: "drop a sphere through a quiescent fluid",
		Args:  cobra.NoArgs,
		RunE:  runFreeFall,
	}
	addFreeFallFlags(freefallCmd)

	wingCmd := &cobra.Command{
		Use:   "wing",
		Short: "simulate a flexible wing section in a steady stream",
		Args:  cobra.NoArgs,
		RunE:  runWing,
	}
	addWingFlags(wingCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "run a model across a range of one parameter in parallel",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addFreeFallFlags(sweepCmd)
	addWingFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to vary")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "last value")
	sweepCmd.Flags().IntVar(&sweepN, "n", 5, "number of runs")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "concurrent runs (0 = unbounded)")
	_ = sweepCmd.MarkFlagRequired("param")

	compareCmd := &cobra.Command{
		Use:   "compare [model]",
		Short: "compare integrators on the same run",
		Args:  cobra.ExactArgs(1),
		RunE:  compareIntegrators,
	}
	addFreeFallFlags(compareCmd)
	addWingFlags(compareCmd)

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "replay a run with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addFreeFallFlags(liveCmd)
	addWingFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 20, "replay frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(freefallCmd, wingCmd, sweepCmd, compareCmd, liveCmd, presetsCmd)
	return rootCmd
}

func addFreeFallFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&ffZ0, "z0", 0, "initial position")
	f.Float64Var(&ffV0, "v0", 0, "initial velocity")
	f.Float64Var(&ffDiameter, "diameter", 0.01, "sphere diameter (m)")
	f.Float64Var(&ffViscosity, "viscosity", 0.0000149, "fluid kinematic viscosity (m^2/s)")
	f.Float64Var(&ffSphereDensity, "sphere-density", 8000, "sphere density (kg/m^3)")
	f.Float64Var(&ffFluidDensity, "fluid-density", 1.22, "fluid density (kg/m^3)")
	f.Float64Var(&ffGravity, "gravity", 9.8, "gravitational acceleration (m/s^2)")
	f.Float64Var(&ffStep, "step", config.DefaultStep, "time step (s)")
	f.Float64Var(&ffDuration, "duration", config.DefaultDuration, "duration (s)")
}

// addWingFlags shares --duration with the free fall flags when both are
// registered on one command.
func addWingFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&wSpeed, "speed", config.DefaultWingSpeed, "forward speed")
	if d := f.Lookup("duration"); d == nil {
		f.Float64Var(&wDuration, "duration", config.DefaultWingDuration, "duration (s)")
	} else {
		d.Usage = fmt.Sprintf("duration (s); when unset, freefall uses %g and wing uses %g",
			config.DefaultDuration, config.DefaultWingDuration)
	}
	f.Float64Var(&wTrim, "trim", config.DefaultTrim, "trim angle (rad)")
	f.Float64Var(&wBeta, "beta", 0.00183, "lift coupling")
	f.Float64Var(&wDt, "dt", 0.1, "time step (s)")
	if f.Lookup("z0") == nil {
		f.Float64Var(&wZ0, "z0", 0, "initial deflection")
		f.Float64Var(&wV0, "v0", 0, "initial deflection rate")
	}
}
