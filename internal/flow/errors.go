package flow

import (
	"errors"
	"fmt"
)

// Domain errors for flow relations, solvers and the conical integrator.
var (
	// ErrInvalidSpecificHeatRatio indicates γ ≤ 1.
	ErrInvalidSpecificHeatRatio = errors.New("flow: invalid specific heat ratio (must exceed 1)")

	// ErrInvalidMachNumber indicates a Mach number outside the relation's domain.
	ErrInvalidMachNumber = errors.New("flow: invalid mach number")

	// ErrInvalidRatio indicates a property ratio outside (0, 1].
	ErrInvalidRatio = errors.New("flow: invalid ratio (must lie in (0, 1])")

	// ErrInvalidAngle indicates an angle outside [0, π/2].
	ErrInvalidAngle = errors.New("flow: invalid angle")

	// ErrMathDomain indicates an asin/sqrt argument out of domain.
	ErrMathDomain = errors.New("flow: math domain error")

	// ErrConvergenceFailure indicates a root finder exhausted its iteration budget.
	ErrConvergenceFailure = errors.New("flow: solution not converged")

	// ErrSingularDerivative indicates a Newton-Raphson derivative too close to zero.
	ErrSingularDerivative = errors.New("flow: derivative too small")

	// ErrSingularFlowField indicates a division by a near-zero term in the
	// Taylor-Maccoll or streamline equations.
	ErrSingularFlowField = errors.New("flow: singular flow field")

	// ErrDesignOutOfRange indicates a design target the shock-angle bracket
	// cannot reach.
	ErrDesignOutOfRange = errors.New("flow: design target out of range")
)

// Errorf wraps kind with a formatted message so errors.Is still matches kind.
func Errorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
