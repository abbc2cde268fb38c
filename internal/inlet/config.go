package inlet

import (
	"fmt"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/integrators"
	"github.com/san-kum/busemann/internal/numerics"
)

type Method string

const (
	MethodMachPair Method = "pair"
	MethodRecovery Method = "recovery"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodMachPair, MethodRecovery:
		return Method(s), nil
	case "":
		return MethodMachPair, nil
	}
	return "", fmt.Errorf("unknown design method: %s", s)
}

const (
	DefaultSteps         = 10000
	DefaultCaptureRadius = 1.0
	// DefaultMaxNormalMach limits the normal Mach ahead of the terminal
	// shock. Stronger shocks put the freestream Mach cone so close to the
	// axis that the integration no longer resolves it.
	DefaultMaxNormalMach = 3.0
	DefaultScanPoints    = 64
)

// DesignConfig describes one inlet design.
type DesignConfig struct {
	Method         Method
	FreestreamMach float64 // MethodMachPair only
	ExitMach       float64
	Recovery       float64 // MethodRecovery only, total-pressure recovery in (0, 1)
	Gamma          float64
	Steps          int
	CaptureRadius  float64
	Integrator     string
	MaxNormalMach  float64
	Solver         numerics.SolverConfig
}

func DefaultDesignConfig() DesignConfig {
	return DesignConfig{
		Method:        MethodMachPair,
		Gamma:         flow.GammaAir,
		Steps:         DefaultSteps,
		CaptureRadius: DefaultCaptureRadius,
		Integrator:    integrators.Default,
		MaxNormalMach: DefaultMaxNormalMach,
		Solver:        numerics.SolverConfig{Tolerance: 1e-7, MaxIterations: numerics.DefaultMaxIterations},
	}
}

// withDefaults fills zero-valued optional fields.
func (c DesignConfig) withDefaults() DesignConfig {
	d := DefaultDesignConfig()
	if c.Method == "" {
		c.Method = d.Method
	}
	if c.Gamma == 0 {
		c.Gamma = d.Gamma
	}
	if c.Steps == 0 {
		c.Steps = d.Steps
	}
	if c.CaptureRadius == 0 {
		c.CaptureRadius = d.CaptureRadius
	}
	if c.Integrator == "" {
		c.Integrator = d.Integrator
	}
	if c.MaxNormalMach == 0 {
		c.MaxNormalMach = d.MaxNormalMach
	}
	if c.Solver.Tolerance == 0 {
		c.Solver.Tolerance = d.Solver.Tolerance
	}
	if c.Solver.MaxIterations == 0 {
		c.Solver.MaxIterations = d.Solver.MaxIterations
	}
	return c
}

func (c DesignConfig) Validate() error {
	if err := flow.CheckGamma(c.Gamma); err != nil {
		return err
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if !(c.CaptureRadius > 0) {
		return fmt.Errorf("capture radius must be positive, got %g", c.CaptureRadius)
	}
	if !(c.MaxNormalMach > 1) {
		return fmt.Errorf("max normal mach must exceed 1, got %g", c.MaxNormalMach)
	}
	if _, err := integrators.New(c.Integrator); err != nil {
		return err
	}
	if !(c.ExitMach > 1) {
		return flow.Errorf(flow.ErrInvalidMachNumber, "exit mach %g must exceed 1", c.ExitMach)
	}

	switch c.Method {
	case MethodMachPair:
		if !(c.FreestreamMach > c.ExitMach) {
			return flow.Errorf(flow.ErrInvalidMachNumber,
				"freestream mach %g must exceed exit mach %g", c.FreestreamMach, c.ExitMach)
		}
	case MethodRecovery:
		if !(c.Recovery > 0 && c.Recovery < 1) {
			return flow.Errorf(flow.ErrInvalidRatio, "recovery %g outside (0, 1)", c.Recovery)
		}
	default:
		return fmt.Errorf("unknown design method: %s", c.Method)
	}
	return nil
}
