// Package taylormaccoll integrates the Taylor-Maccoll equations for
// axisymmetric conical flow together with the streamline radius.
//
// Velocities are Mach components: u along the ray from the cone vertex and
// v normal to it, positive toward increasing θ. θ is the polar angle from
// the +x axis. The conical-flow equations are
//
//	du/dθ = v + (γ-1)/2·u·v·(u + v·cotθ) / (v² - 1)
//	dv/dθ = -u + (1 + (γ-1)/2·v²)·(u + v·cotθ) / (v² - 1)
//	dr/dθ = r·u / v
//
// and Solve stops when the flow becomes parallel to the axis.
package taylormaccoll

import (
	"fmt"
	"math"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/integrators"
)

// singularEpsilon bounds |v|, |v²-1| and |sinθ| away from zero.
const singularEpsilon = 1e-12

// Derivatives evaluates the Taylor-Maccoll equations at polar angle theta.
func Derivatives(vel flow.VelocityVector, theta, gamma float64) (flow.VelocityVectorDerivative, error) {
	u, v := vel.U, vel.V
	if math.Abs(v) < singularEpsilon {
		return flow.VelocityVectorDerivative{}, flow.Errorf(flow.ErrSingularFlowField, "tangential mach %g at θ=%g", v, theta)
	}
	den := v*v - 1.0
	if math.Abs(den) < singularEpsilon {
		return flow.VelocityVectorDerivative{}, flow.Errorf(flow.ErrSingularFlowField, "sonic tangential mach at θ=%g", theta)
	}
	sin, cos := math.Sincos(theta)
	if math.Abs(sin) < singularEpsilon {
		return flow.VelocityVectorDerivative{}, flow.Errorf(flow.ErrSingularFlowField, "polar angle %g on the axis", theta)
	}

	k := (gamma - 1.0) / 2.0
	common := (u + v*cos/sin) / den
	d := flow.VelocityVectorDerivative{
		DU: v + k*u*v*common,
		DV: -u + (1.0+k*v*v)*common,
	}
	if !flow.IsFinite(d.DU, d.DV) {
		return flow.VelocityVectorDerivative{}, flow.Errorf(flow.ErrSingularFlowField, "non-finite derivative at θ=%g", theta)
	}
	return d, nil
}

// Streamline returns dr/dθ for a streamline at radius r.
func Streamline(vel flow.VelocityVector, r float64) (float64, error) {
	if math.Abs(vel.V) < singularEpsilon {
		return 0, flow.Errorf(flow.ErrSingularFlowField, "tangential mach %g", vel.V)
	}
	dr := r * vel.U / vel.V
	if !flow.IsFinite(dr) {
		return 0, flow.Errorf(flow.ErrSingularFlowField, "non-finite streamline slope at r=%g", r)
	}
	return dr, nil
}

// system exposes [u, v, r] to the steppers.
type system struct {
	gamma float64
}

func (s system) Derive(x integrators.State, theta float64) (integrators.State, error) {
	vel := flow.VelocityVector{U: x[0], V: x[1]}
	d, err := Derivatives(vel, theta, s.gamma)
	if err != nil {
		return nil, err
	}
	dr, err := Streamline(vel, x[2])
	if err != nil {
		return nil, err
	}
	return integrators.State{d.DU, d.DV, dr}, nil
}

// IntegrationError reports a step that could not be completed. Partial holds
// the states accepted before the failure and is for diagnostics only.
type IntegrationError struct {
	Step    int
	Theta   float64
	Partial flow.Solution
	Err     error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("taylor-maccoll: step %d at θ=%.6g: %v", e.Step, e.Theta, e.Err)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

type options struct {
	stepper     integrators.Stepper
	observer    func(flow.FlowState)
	errObserver func(step int, errMax float64)
	machConeEnd bool
}

type Option func(*options)

// WithStepper replaces the default RK4 stepper.
func WithStepper(s integrators.Stepper) Option {
	return func(o *options) { o.stepper = s }
}

// StopAtMachCone also ends the integration, dropping the candidate, when the
// tangential Mach crosses unity. That line is where uniform axial flow meets
// the Mach cone of the freestream and the equations become 0/0, so a fixed
// step can pass through it before the cross-stream Mach changes sign.
func StopAtMachCone() Option {
	return func(o *options) { o.machConeEnd = true }
}

// WithObserver is called with every accepted state, the initial one included.
func WithObserver(fn func(flow.FlowState)) Option {
	return func(o *options) { o.observer = fn }
}

// WithErrorObserver is called with the local error estimate of every
// completed step when the stepper provides one, such as rk45. Other
// steppers never call it.
func WithErrorObserver(fn func(step int, errMax float64)) Option {
	return func(o *options) { o.errObserver = fn }
}

// initialCapacity bounds the up-front allocation; longer runs grow the slice.
const initialCapacity = 4096

// Solve integrates from thetaInitial toward thetaFinal in steps equal steps.
// After each step the cross-stream Mach u·sinθ + v·cosθ of the candidate is
// checked; once it is non-negative the candidate is dropped and the states
// accepted so far are returned. The result always starts with the initial
// condition and holds at most steps+1 states.
func Solve(initial flow.VelocityVector, thetaInitial, thetaFinal, rInitial, gamma float64, steps int, opts ...Option) (flow.Solution, error) {
	if err := flow.CheckGamma(gamma); err != nil {
		return nil, err
	}
	if steps <= 0 {
		return nil, fmt.Errorf("taylor-maccoll: steps must be positive, got %d", steps)
	}
	if !flow.IsFinite(initial.U, initial.V, thetaInitial, thetaFinal, rInitial) {
		return nil, flow.Errorf(flow.ErrSingularFlowField, "non-finite initial condition")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.stepper == nil {
		o.stepper = integrators.NewRK4()
	}

	h := (thetaFinal - thetaInitial) / float64(steps)
	sys := system{gamma: gamma}

	current := flow.FlowState{Velocity: initial, R: rInitial, Theta: thetaInitial}
	sol := make(flow.Solution, 0, min(steps+1, initialCapacity))
	sol = append(sol, current)
	if o.observer != nil {
		o.observer(current)
	}

	estimator, _ := o.stepper.(integrators.ErrorEstimator)
	if o.errObserver == nil {
		estimator = nil
	}

	x := integrators.State{initial.U, initial.V, rInitial}
	for i := 0; i < steps; i++ {
		var (
			next integrators.State
			err  error
		)
		if estimator != nil {
			var errMax float64
			next, errMax, err = estimator.StepWithError(sys, x, current.Theta, h)
			if err == nil {
				o.errObserver(i+1, errMax)
			}
		} else {
			next, err = o.stepper.Step(sys, x, current.Theta, h)
		}
		if err == nil && !next.IsValid() {
			err = flow.Errorf(flow.ErrSingularFlowField, "non-finite state")
		}
		if err != nil {
			return nil, &IntegrationError{Step: i + 1, Theta: current.Theta + h, Partial: sol, Err: err}
		}

		candidate := flow.FlowState{
			Velocity: flow.VelocityVector{U: next[0], V: next[1]},
			R:        next[2],
			Theta:    thetaInitial + float64(i+1)*h,
		}
		if candidate.Velocity.CrossStream(candidate.Theta) >= 0 {
			break
		}
		if o.machConeEnd && crossesUnity(current.Velocity.V, candidate.Velocity.V) {
			break
		}

		sol = append(sol, candidate)
		if o.observer != nil {
			o.observer(candidate)
		}
		current = candidate
		x = next
	}

	return sol, nil
}

func crossesUnity(v0, v1 float64) bool {
	return (v0*v0-1.0)*(v1*v1-1.0) <= 0
}
