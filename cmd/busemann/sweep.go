package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/san-kum/busemann/internal/config"
	"github.com/san-kum/busemann/internal/inlet"
	"github.com/san-kum/busemann/internal/sweep"
	"github.com/san-kum/busemann/internal/viz"
)

var (
	m1Min, m1Max float64
	m1N          int
	m3Min, m3Max float64
	m3N          int
	workers      int
	profileMode  string
	saveSweep    bool
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "design a grid of freestream and exit Mach pairs in parallel",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addDesignFlags(cmd)
	d := config.DefaultConfig().Sweep
	f := cmd.Flags()
	f.Float64Var(&m1Min, "m1-min", d.FreestreamMin, "lowest freestream Mach")
	f.Float64Var(&m1Max, "m1-max", d.FreestreamMax, "highest freestream Mach")
	f.IntVar(&m1N, "m1-n", d.FreestreamN, "freestream samples")
	f.Float64Var(&m3Min, "m3-min", d.ExitMin, "lowest exit Mach")
	f.Float64Var(&m3Max, "m3-max", d.ExitMax, "highest exit Mach")
	f.IntVar(&m3N, "m3-n", d.ExitN, "exit samples")
	f.IntVar(&workers, "workers", d.Workers, "parallel designs (0 = all CPUs)")
	f.StringVar(&profileMode, "profile", "", "write a cpu or mem profile to the data directory")
	f.BoolVar(&saveSweep, "save", false, "store every successful design")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	sw := cfg.Sweep
	if f.Changed("m1-min") {
		sw.FreestreamMin = m1Min
	}
	if f.Changed("m1-max") {
		sw.FreestreamMax = m1Max
	}
	if f.Changed("m1-n") {
		sw.FreestreamN = m1N
	}
	if f.Changed("m3-min") {
		sw.ExitMin = m3Min
	}
	if f.Changed("m3-max") {
		sw.ExitMax = m3Max
	}
	if f.Changed("m3-n") {
		sw.ExitN = m3N
	}
	if f.Changed("workers") {
		sw.Workers = workers
	}

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dataDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(dataDir), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode: %s (cpu, mem)", profileMode)
	}

	base, err := cfg.ToDesign()
	if err != nil {
		return err
	}
	base.Method = inlet.MethodMachPair

	cases := sweep.Grid(sw.FreestreamMin, sw.FreestreamMax, sw.FreestreamN, sw.ExitMin, sw.ExitMax, sw.ExitN, base)
	if len(cases) == 0 {
		return fmt.Errorf("sweep grid has no pair with freestream above exit Mach")
	}

	logger.Info("sweep", "designs", len(cases), "workers", sw.Workers)
	start := time.Now()
	outcomes := sweep.RunWith(cmd.Context(), inlet.NewDesigner(inlet.WithLogger(logger)), cases, sw.Workers)
	logger.Info("sweep complete", "elapsed", time.Since(start), "failed", sweep.Failed(outcomes))

	fmt.Print(viz.SweepTable(outcomes, theme))

	if saveSweep {
		for _, o := range outcomes {
			if o.Err != nil {
				continue
			}
			if err := save(o.Inlet); err != nil {
				return err
			}
		}
	}
	return cmd.Context().Err()
}
