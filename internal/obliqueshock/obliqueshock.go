// Package obliqueshock implements perfect-gas oblique-shock relations.
//
// M1 is the upstream Mach number, beta the shock angle and theta the flow
// deflection angle, all angles in radians measured from the upstream flow
// direction. Ratios are downstream over upstream.
package obliqueshock

import (
	"math"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/numerics"
)

func checkUpstream(mach, gamma float64) error {
	if err := flow.CheckGamma(gamma); err != nil {
		return err
	}
	if !(mach > 1.0) {
		return flow.Errorf(flow.ErrInvalidMachNumber, "upstream mach %g must exceed 1", mach)
	}
	return nil
}

func checkShockAngle(beta float64) error {
	if !(beta > 0 && beta <= math.Pi/2) {
		return flow.Errorf(flow.ErrInvalidAngle, "shock angle %g outside (0, π/2]", beta)
	}
	return nil
}

func check(mach, beta, gamma float64) error {
	if err := checkUpstream(mach, gamma); err != nil {
		return err
	}
	return checkShockAngle(beta)
}

// DeflectionAngle returns θ from tanθ = 2cotβ(M1²sin²β-1)/(M1²(γ+cos2β)+2).
// Shock angles below the Mach angle give a negative deflection.
func DeflectionAngle(mach, beta, gamma float64) (float64, error) {
	if err := check(mach, beta, gamma); err != nil {
		return 0, err
	}
	m2 := mach * mach
	sinB := math.Sin(beta)
	tanTheta := 2.0 / math.Tan(beta) * (m2*sinB*sinB - 1.0) / (m2*(gamma+math.Cos(2.0*beta)) + 2.0)
	return math.Atan(tanTheta), nil
}

func PressureRatio(mach, beta, gamma float64) (float64, error) {
	if err := check(mach, beta, gamma); err != nil {
		return 0, err
	}
	mn := mach * math.Sin(beta)
	return (2.0*gamma*mn*mn - (gamma - 1.0)) / (gamma + 1.0), nil
}

func DensityRatio(mach, beta, gamma float64) (float64, error) {
	if err := check(mach, beta, gamma); err != nil {
		return 0, err
	}
	mn2 := math.Pow(mach*math.Sin(beta), 2)
	return (gamma + 1.0) * mn2 / ((gamma-1.0)*mn2 + 2.0), nil
}

func TemperatureRatio(mach, beta, gamma float64) (float64, error) {
	p, err := PressureRatio(mach, beta, gamma)
	if err != nil {
		return 0, err
	}
	rho, err := DensityRatio(mach, beta, gamma)
	if err != nil {
		return 0, err
	}
	return p / rho, nil
}

// StagnationPressureRatio returns p02/p01 = (ρ2/ρ1)^(γ/(γ-1)) · (p1/p2)^(1/(γ-1)).
func StagnationPressureRatio(mach, beta, gamma float64) (float64, error) {
	p, err := PressureRatio(mach, beta, gamma)
	if err != nil {
		return 0, err
	}
	rho, err := DensityRatio(mach, beta, gamma)
	if err != nil {
		return 0, err
	}
	if p <= 0 {
		return 0, flow.Errorf(flow.ErrMathDomain, "non-positive pressure ratio %g", p)
	}
	return math.Pow(rho, gamma/(gamma-1.0)) * math.Pow(1.0/p, 1.0/(gamma-1.0)), nil
}

func NormalUpstreamMach(mach, beta float64) (float64, error) {
	if !(mach > 1.0) {
		return 0, flow.Errorf(flow.ErrInvalidMachNumber, "upstream mach %g must exceed 1", mach)
	}
	return mach * math.Sin(beta), nil
}

// NormalDownstreamMach returns M2·sin(β-θ) for a supersonic downstream Mach.
func NormalDownstreamMach(downstreamMach, beta, theta float64) (float64, error) {
	if !(downstreamMach > 1.0) {
		return 0, flow.Errorf(flow.ErrInvalidMachNumber, "downstream mach %g must exceed 1", downstreamMach)
	}
	return downstreamMach * math.Sin(beta-theta), nil
}

// NormalShockDownstreamMach applies the normal-shock relation
// Mn2² = (1 + (γ-1)/2·Mn1²) / (γ·Mn1² - (γ-1)/2). The relation is its own
// inverse, so it also recovers Mn1 from Mn2.
func NormalShockDownstreamMach(normalMach, gamma float64) (float64, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return 0, err
	}
	mn2 := normalMach * normalMach
	den := gamma*mn2 - (gamma-1.0)/2.0
	if !(den > 0) {
		return 0, flow.Errorf(flow.ErrMathDomain, "normal mach %g below the normal-shock limit", normalMach)
	}
	return math.Sqrt((1.0 + (gamma-1.0)/2.0*mn2) / den), nil
}

// MaxShockAngle returns the detachment shock angle from
// sinβ = sqrt((1 + (γ+1)·sqrt(D)) / (γM1²)), D = (γ+1)M1⁴/16 + (γ-1)M1²/2 + 1.
func MaxShockAngle(mach, gamma float64) (float64, error) {
	if err := checkUpstream(mach, gamma); err != nil {
		return 0, err
	}
	m2 := mach * mach
	disc := (gamma+1.0)*m2*m2/16.0 + (gamma-1.0)*m2/2.0 + 1.0
	sinBeta := math.Sqrt((1.0 / (gamma * m2)) * (1.0 + (gamma+1.0)*math.Sqrt(disc)))
	if !(sinBeta >= 0 && sinBeta <= 1.0) {
		return 0, flow.Errorf(flow.ErrMathDomain, "sinβ=%g outside [0, 1]", sinBeta)
	}
	return math.Asin(sinBeta), nil
}

// detachedResidual is the largest deflection mismatch accepted from the
// shock-angle bisection.
const detachedResidual = 1e-6

// ShockAngle returns the weak-branch shock angle for deflection theta by
// bisection over [θ, π/2].
func ShockAngle(mach, theta, gamma float64) (float64, error) {
	return ShockAngleConfig(mach, theta, gamma, numerics.DefaultSolverConfig())
}

func ShockAngleConfig(mach, theta, gamma float64, cfg numerics.SolverConfig) (float64, error) {
	if err := checkUpstream(mach, gamma); err != nil {
		return 0, err
	}
	if !(theta > 0 && theta < math.Pi/2) {
		return 0, flow.Errorf(flow.ErrInvalidAngle, "deflection angle %g outside (0, π/2)", theta)
	}

	f := func(beta float64) (float64, error) {
		d, err := DeflectionAngle(mach, beta, gamma)
		if err != nil {
			return 0, err
		}
		return d - theta, nil
	}

	beta, err := numerics.Bisection(f, theta, math.Pi/2, cfg)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(beta) {
		return 0, flow.Errorf(flow.ErrMathDomain, "shock angle for M1=%g θ=%g", mach, theta)
	}
	// Past the detachment limit there is no root in the bracket and the
	// bisection collapses onto π/2.
	residual, err := f(beta)
	if err != nil {
		return 0, err
	}
	if math.Abs(residual) > math.Max(detachedResidual, 1e3*cfg.Tolerance) {
		return 0, flow.Errorf(flow.ErrMathDomain,
			"deflection %g exceeds the detachment limit for M1=%g", theta, mach)
	}
	return beta, nil
}

// downstreamMach recovers M2 from the normal-shock relation applied to the
// normal component M1·sinβ, turned back through sin(β-θ).
func downstreamMach(mach, beta, theta, gamma float64) (float64, error) {
	mn1, err := NormalUpstreamMach(mach, beta)
	if err != nil {
		return 0, err
	}
	mn2, err := NormalShockDownstreamMach(mn1, gamma)
	if err != nil {
		return 0, err
	}
	s := math.Sin(beta - theta)
	if !(s > 0) {
		return 0, flow.Errorf(flow.ErrMathDomain, "sin(β-θ)=%g", s)
	}
	return mn2 / s, nil
}

func DownstreamMachFromShockAngle(mach, beta, gamma float64) (float64, error) {
	theta, err := DeflectionAngle(mach, beta, gamma)
	if err != nil {
		return 0, err
	}
	return downstreamMach(mach, beta, theta, gamma)
}

func DownstreamMachFromDeflectionAngle(mach, theta, gamma float64) (float64, error) {
	beta, err := ShockAngle(mach, theta, gamma)
	if err != nil {
		return 0, err
	}
	return downstreamMach(mach, beta, theta, gamma)
}

// Upstream describes the flow ahead of a shock reconstructed from its
// downstream side.
type Upstream struct {
	Mach       float64 // upstream Mach number
	ShockAngle float64 // shock angle relative to the upstream flow
	Deflection float64 // turning angle across the shock
}

// UpstreamFromDownstream reconstructs the upstream state of an oblique shock
// from the downstream Mach number and the angle betaDown between the shock
// and the downstream flow. It is the inverse used for a terminal shock that
// leaves the flow parallel to a known direction.
func UpstreamFromDownstream(downMach, betaDown, gamma float64) (Upstream, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return Upstream{}, err
	}
	if !(downMach > 1.0) {
		return Upstream{}, flow.Errorf(flow.ErrInvalidMachNumber, "downstream mach %g must exceed 1", downMach)
	}
	if !(betaDown > 0 && betaDown < math.Pi/2) {
		return Upstream{}, flow.Errorf(flow.ErrInvalidAngle, "downstream shock angle %g outside (0, π/2)", betaDown)
	}

	mnDown := downMach * math.Sin(betaDown)
	if mnDown > 1.0 {
		return Upstream{}, flow.Errorf(flow.ErrInvalidAngle,
			"downstream normal mach %g is supersonic; shock angle %g exceeds the mach angle", mnDown, betaDown)
	}
	mnUp, err := NormalShockDownstreamMach(mnDown, gamma)
	if err != nil {
		return Upstream{}, err
	}

	mn2 := mnUp * mnUp
	densityRatio := (gamma + 1.0) * mn2 / ((gamma-1.0)*mn2 + 2.0)
	betaUp := math.Atan(math.Tan(betaDown) * densityRatio)

	return Upstream{
		Mach:       mnUp / math.Sin(betaUp),
		ShockAngle: betaUp,
		Deflection: betaUp - betaDown,
	}, nil
}
