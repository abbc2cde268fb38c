package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/busemann/internal/config"
	"github.com/san-kum/busemann/internal/inlet"
	"github.com/san-kum/busemann/internal/viz"
)

var (
	method         string
	freestreamMach float64
	exitMach       float64
	recovery       float64
	gamma          float64
	steps          int
	captureRadius  float64
	integrator     string
	maxNormalMach  float64
	tolerance      float64
	showPlot       bool
)

func addDesignFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&method, "method", d.Method, "design method (pair, recovery)")
	f.Float64Var(&freestreamMach, "freestream", d.FreestreamMach, "freestream Mach number (pair)")
	f.Float64Var(&exitMach, "exit", d.ExitMach, "exit Mach number")
	f.Float64Var(&recovery, "recovery", d.Recovery, "total pressure recovery (recovery)")
	f.Float64Var(&gamma, "gamma", d.Gamma, "specific heat ratio")
	f.IntVar(&steps, "steps", d.Steps, "integration steps")
	f.Float64Var(&captureRadius, "capture", d.CaptureRadius, "capture radius")
	f.StringVar(&integrator, "integrator", d.Integrator, "integrator")
	f.Float64Var(&maxNormalMach, "max-normal", d.MaxNormalMach, "strongest terminal shock, as a normal Mach number")
	f.Float64Var(&tolerance, "tol", d.Solver.Tolerance, "root finder tolerance")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
}

// applyDesignFlags overrides cfg with the design flags set on cmd.
func applyDesignFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("method") {
		cfg.Method = method
	}
	if f.Changed("freestream") {
		cfg.FreestreamMach = freestreamMach
	}
	if f.Changed("exit") {
		cfg.ExitMach = exitMach
	}
	if f.Changed("recovery") {
		cfg.Recovery = recovery
	}
	if f.Changed("gamma") {
		cfg.Gamma = gamma
	}
	if f.Changed("steps") {
		cfg.Steps = steps
	}
	if f.Changed("capture") {
		cfg.CaptureRadius = captureRadius
	}
	if f.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if f.Changed("max-normal") {
		cfg.MaxNormalMach = maxNormalMach
	}
	if f.Changed("tol") {
		cfg.Solver.Tolerance = tolerance
	}
}

func newDesignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "design an inlet",
		Long: `Design a Busemann inlet either from a freestream and exit Mach pair
or from an exit Mach number and a target total pressure recovery.`,
		Args: cobra.NoArgs,
		RunE: runDesign,
	}
	addDesignFlags(cmd)
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the design")
	cmd.Flags().BoolVar(&showPlot, "plot", false, "plot the contour and Mach distribution")
	return cmd
}

func runDesign(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	dc, err := cfg.ToDesign()
	if err != nil {
		return err
	}

	logger.Info("designing", "method", dc.Method, "freestream", dc.FreestreamMach, "exit", dc.ExitMach, "recovery", dc.Recovery)
	start := time.Now()

	in, err := inlet.NewDesigner(inlet.WithLogger(logger)).Design(cmd.Context(), dc)
	if err != nil {
		return err
	}
	logger.Info("design complete", "elapsed", time.Since(start), "states", len(in.Solution))

	fmt.Println(viz.Report(in, theme))
	if showPlot {
		if err := printPlots(in); err != nil {
			return err
		}
	}
	return save(in)
}

func printPlots(in *inlet.Inlet) error {
	contour, err := viz.ContourPlot(in.Contour, 70, 12)
	if err != nil {
		return err
	}
	fmt.Println(contour)
	fmt.Println()

	mach, err := viz.MachPlot(in.Solution, 70, 10)
	if err != nil {
		return err
	}
	fmt.Println(mach)
	return nil
}
