package numerics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/busemann/internal/flow"
)

func square2(x float64) float64 { return x*x - 2 }

func TestBisection_Sqrt2(t *testing.T) {
	root, err := Bisection(Plain(square2), 0, 2, DefaultSolverConfig())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-8)
}

func TestBisection_ReversedBracket(t *testing.T) {
	root, err := Bisection(Plain(square2), 2, 0, SolverConfig{})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-8)
}

func TestBisection_ExactMidpoint(t *testing.T) {
	calls := 0
	f := func(x float64) (float64, error) {
		calls++
		return x - 1, nil
	}
	root, err := Bisection(f, 0, 2, DefaultSolverConfig())
	require.NoError(t, err)
	assert.Equal(t, 1.0, root)
	assert.Equal(t, 2, calls, "lower bound plus one midpoint")
}

func TestBisection_ConvergenceFailure(t *testing.T) {
	_, err := Bisection(Plain(square2), 0, 2, SolverConfig{Tolerance: 1e-12, MaxIterations: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, flow.ErrConvergenceFailure))

	var se *SolverError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Iterations)
	assert.Equal(t, "bisection", se.Method)
}

func TestBisection_PropagatesEvaluationError(t *testing.T) {
	f := func(x float64) (float64, error) {
		if x > 1.2 {
			return 0, flow.ErrMathDomain
		}
		return square2(x), nil
	}
	_, err := Bisection(f, 0, 2, DefaultSolverConfig())
	assert.True(t, errors.Is(err, flow.ErrMathDomain))
}

func TestNewtonRaphson_Sqrt2(t *testing.T) {
	df := func(x float64) float64 { return 2 * x }
	root, err := NewtonRaphson(Plain(square2), Plain(df), 1.5, DefaultSolverConfig())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-9)
}

func TestNewtonRaphson_SingularDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }
	_, err := NewtonRaphson(Plain(f), Plain(df), 0, DefaultSolverConfig())
	assert.True(t, errors.Is(err, flow.ErrSingularDerivative))
}

func TestNewtonRaphson_ConvergenceFailure(t *testing.T) {
	// no real root: every step has magnitude at least 1
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }
	_, err := NewtonRaphson(Plain(f), Plain(df), 0.5, SolverConfig{MaxIterations: 25})
	assert.True(t, errors.Is(err, flow.ErrConvergenceFailure))
}

func TestNestedSolvers(t *testing.T) {
	// find a such that the Newton square root of a equals 1.5
	sqrt := func(a float64) (float64, error) {
		return NewtonRaphson(
			Plain(func(x float64) float64 { return x*x - a }),
			Plain(func(x float64) float64 { return 2 * x }),
			1.0, DefaultSolverConfig())
	}
	f := func(a float64) (float64, error) {
		r, err := sqrt(a)
		if err != nil {
			return 0, err
		}
		return r - 1.5, nil
	}

	a, err := Bisection(f, 1, 4, DefaultSolverConfig())
	require.NoError(t, err)
	assert.InDelta(t, 2.25, a, 1e-7)
}

func TestSolverConfigDefaults(t *testing.T) {
	cfg := SolverConfig{}.withDefaults()
	assert.Equal(t, DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)

	custom := SolverConfig{Tolerance: 1e-4, MaxIterations: 10}.withDefaults()
	assert.Equal(t, 1e-4, custom.Tolerance)
	assert.Equal(t, 10, custom.MaxIterations)
}
