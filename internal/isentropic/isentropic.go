// Package isentropic implements isentropic-flow relations of a perfect gas
// and their inverses.
//
// Ratios are static-to-stagnation (p/p0, T/T0, ρ/ρ0). Angles are in radians.
package isentropic

import (
	"math"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/numerics"
)

// prandtlMeyerGuess is the Newton-Raphson starting value of η = sqrt(M²-1).
const prandtlMeyerGuess = 1.5

// stagnationFactor returns 1 + (γ-1)/2·M².
func stagnationFactor(mach, gamma float64) float64 {
	return 1.0 + (gamma-1.0)/2.0*mach*mach
}

func checkMach(mach float64) error {
	if mach < 0 || math.IsNaN(mach) {
		return flow.Errorf(flow.ErrInvalidMachNumber, "mach=%g", mach)
	}
	return nil
}

func checkRatio(name string, ratio float64) error {
	if !(ratio > 0 && ratio <= 1.0) {
		return flow.Errorf(flow.ErrInvalidRatio, "%s=%g", name, ratio)
	}
	return nil
}

func PressureRatio(mach, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	return math.Pow(stagnationFactor(mach, gamma), -gamma/(gamma-1.0)), nil
}

func TemperatureRatio(mach, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	return 1.0 / stagnationFactor(mach, gamma), nil
}

func DensityRatio(mach, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	return math.Pow(stagnationFactor(mach, gamma), -1.0/(gamma-1.0)), nil
}

// MachAngle returns μ = asin(1/M). Subsonic Mach numbers have no Mach
// angle and report ErrMathDomain.
func MachAngle(mach float64) (float64, error) {
	if err := checkMach(mach); err != nil {
		return 0, err
	}
	if mach < 1.0 {
		return 0, flow.Errorf(flow.ErrMathDomain, "asin(1/%g) undefined for subsonic mach", mach)
	}
	return math.Asin(1.0 / mach), nil
}

// PrandtlMeyer returns ν(M) for supersonic M.
func PrandtlMeyer(mach, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	if mach <= 1.0 {
		return 0, flow.Errorf(flow.ErrInvalidMachNumber, "prandtl-meyer needs mach > 1, got %g", mach)
	}
	alpha := math.Sqrt((gamma + 1.0) / (gamma - 1.0))
	eta := math.Sqrt(mach*mach - 1.0)
	return alpha*math.Atan(eta/alpha) - math.Atan(eta), nil
}

// MachFromSpeedOfSound returns velocity / speed of sound.
func MachFromSpeedOfSound(velocity, speedOfSound float64) (float64, error) {
	if speedOfSound <= 0 {
		return 0, flow.Errorf(flow.ErrMathDomain, "speed of sound %g", speedOfSound)
	}
	return math.Abs(velocity) / speedOfSound, nil
}

// MachFromMachAngle inverts MachAngle. An angle of zero corresponds to an
// infinite Mach number and reports ErrMathDomain.
func MachFromMachAngle(machAngle float64) (float64, error) {
	if !(machAngle >= 0 && machAngle <= math.Pi/2) {
		return 0, flow.Errorf(flow.ErrInvalidAngle, "mach angle %g outside [0, π/2]", machAngle)
	}
	if machAngle == 0 {
		return 0, flow.Errorf(flow.ErrMathDomain, "zero mach angle")
	}
	return 1.0 / math.Sin(machAngle), nil
}

func MachFromTemperatureRatio(ratio, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	if err := checkRatio("temperature ratio", ratio); err != nil {
		return 0, err
	}
	return math.Sqrt(2.0 * (1.0/ratio - 1.0) / (gamma - 1.0)), nil
}

func MachFromPressureRatio(ratio, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	if err := checkRatio("pressure ratio", ratio); err != nil {
		return 0, err
	}
	return math.Sqrt(2.0 * (math.Pow(ratio, -(gamma-1.0)/gamma) - 1.0) / (gamma - 1.0)), nil
}

func MachFromDensityRatio(ratio, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	if err := checkRatio("density ratio", ratio); err != nil {
		return 0, err
	}
	return math.Sqrt(2.0 * (math.Pow(ratio, -(gamma-1.0)) - 1.0) / (gamma - 1.0)), nil
}

// MachFromPrandtlMeyer inverts PrandtlMeyer with Newton-Raphson on
// η = sqrt(M²-1). The target angle must lie in (0, νmax), where
// νmax = (α-1)·π/2 is the limit of ν as M grows without bound.
func MachFromPrandtlMeyer(nu, gamma float64) (float64, error) {
	return MachFromPrandtlMeyerConfig(nu, gamma, numerics.DefaultSolverConfig())
}

func MachFromPrandtlMeyerConfig(nu, gamma float64, cfg numerics.SolverConfig) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	alpha := math.Sqrt((gamma + 1.0) / (gamma - 1.0))
	if nuMax := (alpha - 1.0) * math.Pi / 2.0; !(nu > 0 && nu < nuMax) {
		return 0, flow.Errorf(flow.ErrInvalidAngle, "prandtl-meyer angle %g outside (0, %g)", nu, nuMax)
	}

	f := func(eta float64) float64 {
		return alpha*math.Atan(eta/alpha) - math.Atan(eta) - nu
	}
	df := func(eta float64) float64 {
		return 1.0/((eta/alpha)*(eta/alpha)+1.0) - 1.0/(eta*eta+1.0)
	}

	eta, err := numerics.NewtonRaphson(numerics.Plain(f), numerics.Plain(df), prandtlMeyerGuess, cfg)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(eta*eta + 1.0), nil
}
