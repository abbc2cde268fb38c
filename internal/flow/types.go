package flow

import "math"

// GammaAir is the specific heat ratio of air.
const GammaAir = 1.4

// VelocityVector holds the radial (U) and tangential (V) velocity components
// of a conical flow point, both divided by the local speed of sound.
type VelocityVector struct {
	U float64
	V float64
}

// Mach returns the local Mach number sqrt(u² + v²).
func (vv VelocityVector) Mach() float64 {
	return math.Hypot(vv.U, vv.V)
}

// IsSupersonic reports whether the local Mach number is at least 1, the
// condition under which the conical-flow equations stay valid.
func (vv VelocityVector) IsSupersonic() bool {
	return vv.Mach() >= 1.0
}

// IsValid reports whether both components are finite.
func (vv VelocityVector) IsValid() bool {
	return isFinite(vv.U) && isFinite(vv.V)
}

// CrossStream returns the velocity component normal to the cone axis at
// polar angle theta. It is negative while the flow still turns toward the axis.
func (vv VelocityVector) CrossStream(theta float64) float64 {
	return vv.U*math.Sin(theta) + vv.V*math.Cos(theta)
}

type VelocityVectorDerivative struct {
	DU float64 // du/dθ
	DV float64 // dv/dθ
}

// FlowState is one accepted integration step.
type FlowState struct {
	Velocity VelocityVector
	R        float64 // streamline radial distance from the cone apex
	Theta    float64 // polar angle from the cone axis
}

// X returns the streamwise coordinate of the state relative to the apex.
func (s FlowState) X() float64 { return s.R * math.Cos(s.Theta) }

// Y returns the radial coordinate of the state relative to the axis.
func (s FlowState) Y() float64 { return s.R * math.Sin(s.Theta) }

// Solution is the ordered history of one conical-flow integration.
type Solution []FlowState

// Last returns the final state. It panics on an empty solution, which a
// successful integration never returns.
func (s Solution) Last() FlowState {
	return s[len(s)-1]
}

// Machs returns the local Mach number of every state.
func (s Solution) Machs() []float64 {
	out := make([]float64, len(s))
	for i, st := range s {
		out[i] = st.Velocity.Mach()
	}
	return out
}

// ValidSpecificHeatRatio reports whether gamma is a physical specific heat
// ratio (γ > 1).
func ValidSpecificHeatRatio(gamma float64) bool {
	return gamma > 1.0
}

// CheckGamma returns ErrInvalidSpecificHeatRatio unless gamma > 1.
func CheckGamma(gamma float64) error {
	if !ValidSpecificHeatRatio(gamma) {
		return Errorf(ErrInvalidSpecificHeatRatio, "gamma=%g", gamma)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsFinite reports whether every value is neither NaN nor infinite.
func IsFinite(xs ...float64) bool {
	for _, x := range xs {
		if !isFinite(x) {
			return false
		}
	}
	return true
}
