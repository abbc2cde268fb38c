package integrators

import "math"

// State is the dependent vector advanced by a Stepper.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is an ODE dx/dθ = f(x, θ). Derive may fail when the right-hand
// side is undefined at x.
type System interface {
	Derive(x State, theta float64) (State, error)
}

// SystemFunc adapts a function to System.
type SystemFunc func(x State, theta float64) (State, error)

func (f SystemFunc) Derive(x State, theta float64) (State, error) {
	return f(x, theta)
}

// Stepper advances a State by one step of size h. Implementations may hold
// scratch buffers and are not safe for concurrent use.
type Stepper interface {
	Step(sys System, x State, theta, h float64) (State, error)
}

// ErrorEstimator is a Stepper that also reports the largest scaled local
// error of the step it took.
type ErrorEstimator interface {
	Stepper
	StepWithError(sys System, x State, theta, h float64) (State, float64, error)
}
