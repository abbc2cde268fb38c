// Package numerics provides scalar iterative root finders.
//
// Both solvers are pure: they keep their iteration state on the stack and
// may be nested, so a function handed to Bisection can itself call
// NewtonRaphson. The function arguments return an error so failures of a
// nested evaluation propagate instead of aborting the process.
package numerics

import (
	"fmt"
	"math"

	"github.com/san-kum/busemann/internal/flow"
)

const (
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 200

	// minDerivative guards the Newton-Raphson division.
	minDerivative = 1e-12
)

// Func is a scalar function whose evaluation may fail.
type Func func(x float64) (float64, error)

// Plain adapts an infallible function to Func.
func Plain(f func(float64) float64) Func {
	return func(x float64) (float64, error) { return f(x), nil }
}

type SolverConfig struct {
	Tolerance     float64
	MaxIterations int
}

func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// withDefaults fills zero fields, so SolverConfig{} behaves as the default.
func (c SolverConfig) withDefaults() SolverConfig {
	if c.Tolerance <= 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	return c
}

// SolverError wraps a solver failure with the iteration context.
type SolverError struct {
	Method     string
	Iterations int
	Estimate   float64
	Wrapped    error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("%s: after %d iterations (x=%.6g): %v", e.Method, e.Iterations, e.Estimate, e.Wrapped)
}

func (e *SolverError) Unwrap() error {
	return e.Wrapped
}

// Bisection finds a root of f between x1 and x2. The caller must supply a
// bracket with a sign change; it is not verified. Iteration stops when
// |f(mid)| < tol or half the bracket width is below tol.
func Bisection(f Func, x1, x2 float64, cfg SolverConfig) (float64, error) {
	cfg = cfg.withDefaults()

	lower, upper := x1, x2
	if x2 < x1 {
		lower, upper = x2, x1
	}

	fLower, err := f(lower)
	if err != nil {
		return 0, &SolverError{Method: "bisection", Estimate: lower, Wrapped: err}
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		mid := (upper + lower) / 2.0

		fMid, err := f(mid)
		if err != nil {
			return 0, &SolverError{Method: "bisection", Iterations: i, Estimate: mid, Wrapped: err}
		}

		if math.Abs(fMid) < cfg.Tolerance || (upper-lower)/2.0 < cfg.Tolerance {
			return mid, nil
		}

		if fMid*fLower > 0 {
			lower, fLower = mid, fMid
		} else {
			upper = mid
		}
	}

	return 0, &SolverError{
		Method:     "bisection",
		Iterations: cfg.MaxIterations,
		Estimate:   (upper + lower) / 2.0,
		Wrapped:    flow.ErrConvergenceFailure,
	}
}

// NewtonRaphson iterates x ← x - f(x)/df(x) from x0 until successive
// estimates differ by at most tol.
func NewtonRaphson(f, df Func, x0 float64, cfg SolverConfig) (float64, error) {
	cfg = cfg.withDefaults()

	x := x0
	for i := 0; i < cfg.MaxIterations; i++ {
		fx, err := f(x)
		if err != nil {
			return 0, &SolverError{Method: "newton-raphson", Iterations: i, Estimate: x, Wrapped: err}
		}
		dfx, err := df(x)
		if err != nil {
			return 0, &SolverError{Method: "newton-raphson", Iterations: i, Estimate: x, Wrapped: err}
		}
		if math.Abs(dfx) < minDerivative || math.IsNaN(dfx) {
			return 0, &SolverError{Method: "newton-raphson", Iterations: i, Estimate: x, Wrapped: flow.ErrSingularDerivative}
		}

		next := x - fx/dfx
		if math.Abs(next-x) <= cfg.Tolerance {
			return next, nil
		}
		x = next
	}

	return 0, &SolverError{
		Method:     "newton-raphson",
		Iterations: cfg.MaxIterations,
		Estimate:   x,
		Wrapped:    flow.ErrConvergenceFailure,
	}
}
