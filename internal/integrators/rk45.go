package integrators

import "math"

// Dormand-Prince 5(4) tableau.
var (
	dpNodes = [7]float64{0, 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0, 1, 1}

	dpCoupling = [7][6]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
		{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
	}

	// fifth-order weights; the last stage is FSAL and carries no weight
	dpWeights = [7]float64{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0, 0}

	// fifth minus fourth order weights
	dpErrWeights = [7]float64{
		35.0/384.0 - 5179.0/57600.0,
		0,
		500.0/1113.0 - 7571.0/16695.0,
		125.0/192.0 - 393.0/640.0,
		-2187.0/6784.0 + 92097.0/339200.0,
		11.0/84.0 - 187.0/2100.0,
		-1.0 / 40.0,
	}
)

// RK45 applies the Dormand-Prince fifth-order update with a fixed step. The
// embedded fourth-order solution is only used for the error estimate.
type RK45 struct {
	k       [7]State
	scratch State
}

func NewRK45() *RK45 {
	return &RK45{}
}

func (r *RK45) ensureScratch(n int) {
	if len(r.scratch) != n {
		for i := range r.k {
			r.k[i] = make(State, n)
		}
		r.scratch = make(State, n)
	}
}

func (r *RK45) Step(sys System, x State, theta, h float64) (State, error) {
	next, _, err := r.StepWithError(sys, x, theta, h)
	return next, err
}

// StepWithError returns the fifth-order update and the largest scaled
// local error estimate over all components.
func (r *RK45) StepWithError(sys System, x State, theta, h float64) (State, float64, error) {
	n := len(x)
	r.ensureScratch(n)

	for s := 0; s < 6; s++ {
		for i := 0; i < n; i++ {
			acc := 0.0
			for j := 0; j < s; j++ {
				acc += dpCoupling[s][j] * r.k[j][i]
			}
			r.scratch[i] = x[i] + h*acc
		}
		k, err := sys.Derive(r.scratch, theta+dpNodes[s]*h)
		if err != nil {
			return nil, 0, err
		}
		copy(r.k[s], k)
	}

	next := make(State, n)
	for i := 0; i < n; i++ {
		acc := 0.0
		for s := 0; s < 6; s++ {
			acc += dpWeights[s] * r.k[s][i]
		}
		next[i] = x[i] + h*acc
	}

	k7, err := sys.Derive(next, theta+h)
	if err != nil {
		return nil, 0, err
	}
	copy(r.k[6], k7)

	errMax := 0.0
	for i := 0; i < n; i++ {
		est := 0.0
		for s := 0; s < 7; s++ {
			est += dpErrWeights[s] * r.k[s][i]
		}
		scale := math.Abs(x[i]) + math.Abs(h*r.k[0][i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(h*est)/scale)
	}

	return next, errMax, nil
}
