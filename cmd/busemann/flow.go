package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/isentropic"
	"github.com/san-kum/busemann/internal/obliqueshock"
)

var (
	flowGamma  float64
	flowMach   float64
	fromKind   string
	fromValue  float64
	shockBeta  float64
	deflection float64
)

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }

func newFlowCmd() *cobra.Command {
	flowCmd := &cobra.Command{
		Use:   "flow",
		Short: "compressible flow relations",
	}
	flowCmd.PersistentFlags().Float64Var(&flowGamma, "gamma", flow.GammaAir, "specific heat ratio")

	isenCmd := &cobra.Command{
		Use:   "isentropic",
		Short: "isentropic ratios at a Mach number",
		Long: `Print the isentropic static-to-stagnation ratios, Mach angle and
Prandtl-Meyer angle. With --from the Mach number is first recovered from a
pressure, temperature or density ratio, a Mach angle or a Prandtl-Meyer
angle (angles in degrees).`,
		Args: cobra.NoArgs,
		RunE: runIsentropic,
	}
	isenCmd.Flags().Float64Var(&flowMach, "mach", 2, "Mach number")
	isenCmd.Flags().StringVar(&fromKind, "from", "", "invert from pressure, temperature, density, mach-angle or prandtl-meyer")
	isenCmd.Flags().Float64Var(&fromValue, "value", 0, "value to invert with --from")

	shockCmd := &cobra.Command{
		Use:   "shock",
		Short: "oblique shock relations",
		Long: `Print the oblique shock relations for an upstream Mach number and either
a shock angle (--beta) or a deflection angle (--deflection, weak solution).
Angles are in degrees.`,
		Args: cobra.NoArgs,
		RunE: runShock,
	}
	shockCmd.Flags().Float64Var(&flowMach, "mach", 2, "upstream Mach number")
	shockCmd.Flags().Float64Var(&shockBeta, "beta", 0, "shock angle")
	shockCmd.Flags().Float64Var(&deflection, "deflection", 0, "deflection angle")

	terminalCmd := &cobra.Command{
		Use:   "terminal",
		Short: "reconstruct the upstream side of a shock from its downstream side",
		Args:  cobra.NoArgs,
		RunE:  runTerminal,
	}
	terminalCmd.Flags().Float64Var(&flowMach, "mach", 2.5, "downstream Mach number")
	terminalCmd.Flags().Float64Var(&shockBeta, "beta", 20, "shock angle relative to the downstream flow")

	flowCmd.AddCommand(isenCmd, shockCmd, terminalCmd)
	return flowCmd
}

func machFrom(kind string, v, gamma float64) (float64, error) {
	switch kind {
	case "":
		return flowMach, nil
	case "pressure":
		return isentropic.MachFromPressureRatio(v, gamma)
	case "temperature":
		return isentropic.MachFromTemperatureRatio(v, gamma)
	case "density":
		return isentropic.MachFromDensityRatio(v, gamma)
	case "mach-angle":
		return isentropic.MachFromMachAngle(rad(v))
	case "prandtl-meyer":
		return isentropic.MachFromPrandtlMeyer(rad(v), gamma)
	}
	return 0, fmt.Errorf("unknown --from: %s", kind)
}

func runIsentropic(cmd *cobra.Command, args []string) error {
	m, err := machFrom(fromKind, fromValue, flowGamma)
	if err != nil {
		return err
	}

	p, err := isentropic.PressureRatio(m, flowGamma)
	if err != nil {
		return err
	}
	t, err := isentropic.TemperatureRatio(m, flowGamma)
	if err != nil {
		return err
	}
	rho, err := isentropic.DensityRatio(m, flowGamma)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "M\t%.6f\n", m)
	fmt.Fprintf(w, "p/p0\t%.6f\n", p)
	fmt.Fprintf(w, "T/T0\t%.6f\n", t)
	fmt.Fprintf(w, "rho/rho0\t%.6f\n", rho)
	if m >= 1 {
		mu, err := isentropic.MachAngle(m)
		if err != nil {
			return err
		}
		nu, err := isentropic.PrandtlMeyer(m, flowGamma)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "mach angle\t%.4f°\n", deg(mu))
		fmt.Fprintf(w, "prandtl-meyer\t%.4f°\n", deg(nu))
	}
	return w.Flush()
}

func runShock(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	if f.Changed("beta") == f.Changed("deflection") {
		return fmt.Errorf("give exactly one of --beta or --deflection")
	}

	beta := rad(shockBeta)
	if f.Changed("deflection") {
		var err error
		if beta, err = obliqueshock.ShockAngle(flowMach, rad(deflection), flowGamma); err != nil {
			return err
		}
	}

	theta, err := obliqueshock.DeflectionAngle(flowMach, beta, flowGamma)
	if err != nil {
		return err
	}
	m2, err := obliqueshock.DownstreamMachFromShockAngle(flowMach, beta, flowGamma)
	if err != nil {
		return err
	}
	p, err := obliqueshock.PressureRatio(flowMach, beta, flowGamma)
	if err != nil {
		return err
	}
	rho, err := obliqueshock.DensityRatio(flowMach, beta, flowGamma)
	if err != nil {
		return err
	}
	t, err := obliqueshock.TemperatureRatio(flowMach, beta, flowGamma)
	if err != nil {
		return err
	}
	p0, err := obliqueshock.StagnationPressureRatio(flowMach, beta, flowGamma)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "M1\t%.6f\n", flowMach)
	fmt.Fprintf(w, "shock angle\t%.4f°\n", deg(beta))
	fmt.Fprintf(w, "deflection\t%.4f°\n", deg(theta))
	if betaMax, err := obliqueshock.MaxShockAngle(flowMach, flowGamma); err == nil {
		fmt.Fprintf(w, "max shock angle\t%.4f°\n", deg(betaMax))
	}
	fmt.Fprintf(w, "M2\t%.6f\n", m2)
	fmt.Fprintf(w, "p2/p1\t%.6f\n", p)
	fmt.Fprintf(w, "rho2/rho1\t%.6f\n", rho)
	fmt.Fprintf(w, "T2/T1\t%.6f\n", t)
	fmt.Fprintf(w, "p02/p01\t%.6f\n", p0)
	return w.Flush()
}

func runTerminal(cmd *cobra.Command, args []string) error {
	up, err := obliqueshock.UpstreamFromDownstream(flowMach, rad(shockBeta), flowGamma)
	if err != nil {
		return err
	}
	p0, err := obliqueshock.StagnationPressureRatio(up.Mach, up.ShockAngle, flowGamma)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "downstream M\t%.6f\n", flowMach)
	fmt.Fprintf(w, "upstream M\t%.6f\n", up.Mach)
	fmt.Fprintf(w, "upstream shock angle\t%.4f°\n", deg(up.ShockAngle))
	fmt.Fprintf(w, "deflection\t%.4f°\n", deg(up.Deflection))
	fmt.Fprintf(w, "p02/p01\t%.6f\n", p0)
	return w.Flush()
}
