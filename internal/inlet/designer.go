package inlet

import (
	"context"
	"log/slog"
	"math"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/integrators"
	"github.com/san-kum/busemann/internal/numerics"
	"github.com/san-kum/busemann/internal/obliqueshock"
	"github.com/san-kum/busemann/internal/taylormaccoll"
)

// coneTolerance bounds the gap between the terminal polar angle and the
// freestream Mach cone before a solution is rejected.
const coneTolerance = 5e-3

// machConeOffset keeps the weakest terminal shock off the Mach angle, where
// the pre-shock tangential Mach is exactly one.
const machConeOffset = 1e-6

// Inlet is a completed design.
type Inlet struct {
	Config      DesignConfig
	Solution    flow.Solution
	Contour     Contour
	Performance Performance
}

type Designer struct {
	logger     *slog.Logger
	scanPoints int
}

type DesignerOption func(*Designer)

func WithLogger(l *slog.Logger) DesignerOption {
	return func(d *Designer) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithScanPoints sets how many shock angles the Mach-pair search samples
// before bisecting.
func WithScanPoints(n int) DesignerOption {
	return func(d *Designer) {
		if n > 0 {
			d.scanPoints = n
		}
	}
}

func NewDesigner(opts ...DesignerOption) *Designer {
	d := &Designer{logger: slog.Default(), scanPoints: DefaultScanPoints}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Design runs cfg with a default Designer.
func Design(cfg DesignConfig) (*Inlet, error) {
	return NewDesigner().Design(context.Background(), cfg)
}

func (d *Designer) Design(ctx context.Context, cfg DesignConfig) (*Inlet, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lo, hi, err := shockAngleRange(cfg)
	if err != nil {
		return nil, err
	}

	var beta3 float64
	switch cfg.Method {
	case MethodMachPair:
		beta3, err = d.searchMachPair(ctx, cfg, lo, hi)
	case MethodRecovery:
		beta3, err = d.searchRecovery(cfg, lo, hi)
	}
	if err != nil {
		return nil, err
	}

	ev, err := d.evaluate(ctx, cfg, beta3)
	if err != nil {
		return nil, err
	}

	contour, err := NewContour(ev.sol, cfg.CaptureRadius)
	if err != nil {
		return nil, err
	}
	perf, err := composePerformance(ev.freestream, cfg.ExitMach, beta3, ev.upstream, contour, cfg.Gamma)
	if err != nil {
		return nil, err
	}
	perf.MaxLocalError = ev.maxLocalError

	d.logger.Debug("design complete",
		"method", cfg.Method,
		"freestream", perf.FreestreamMach,
		"exit", perf.ExitMach,
		"beta3", beta3,
		"recovery", perf.TotalPressureRecovery,
		"points", contour.Len(),
		"max_local_error", perf.MaxLocalError)

	return &Inlet{Config: cfg, Solution: ev.sol, Contour: contour, Performance: perf}, nil
}

// shockAngleRange returns the terminal shock angles searched for cfg: from
// the shock with MaxNormalMach ahead of it up to just below the Mach angle
// of the exit flow.
func shockAngleRange(cfg DesignConfig) (float64, float64, error) {
	mnExit, err := obliqueshock.NormalShockDownstreamMach(cfg.MaxNormalMach, cfg.Gamma)
	if err != nil {
		return 0, 0, err
	}
	lo := math.Asin(mnExit / cfg.ExitMach)
	hi := math.Asin(1.0/cfg.ExitMach) - machConeOffset
	return lo, hi, nil
}

type evaluation struct {
	upstream      obliqueshock.Upstream
	sol           flow.Solution
	freestream    float64
	maxLocalError float64 // zero unless the stepper estimates it
}

// evaluate integrates the conical flow upstream of a terminal shock at
// beta3 and checks that it ends on the freestream Mach cone.
func (d *Designer) evaluate(ctx context.Context, cfg DesignConfig, beta3 float64) (evaluation, error) {
	if err := ctx.Err(); err != nil {
		return evaluation{}, err
	}

	up, err := obliqueshock.UpstreamFromDownstream(cfg.ExitMach, beta3, cfg.Gamma)
	if err != nil {
		return evaluation{}, err
	}

	stepper, err := integrators.New(cfg.Integrator)
	if err != nil {
		return evaluation{}, err
	}

	initial := flow.VelocityVector{
		U: up.Mach * math.Cos(beta3+up.Deflection),
		V: -up.Mach * math.Sin(beta3+up.Deflection),
	}
	var maxLocalError float64
	sol, err := taylormaccoll.Solve(initial, beta3, math.Pi-machConeOffset, 1.0, cfg.Gamma, cfg.Steps,
		taylormaccoll.WithStepper(stepper), taylormaccoll.StopAtMachCone(),
		taylormaccoll.WithErrorObserver(func(_ int, errMax float64) {
			maxLocalError = math.Max(maxLocalError, errMax)
		}))
	if err != nil {
		return evaluation{}, err
	}
	if len(sol) > cfg.Steps {
		return evaluation{}, flow.Errorf(flow.ErrDesignOutOfRange,
			"flow not axial after %d steps from β3=%.6g", cfg.Steps, beta3)
	}

	last := sol.Last()
	m1 := last.Velocity.Mach()
	if !last.Velocity.IsSupersonic() {
		return evaluation{}, flow.Errorf(flow.ErrDesignOutOfRange, "freestream mach %g at β3=%.6g", m1, beta3)
	}
	if cone := math.Pi - math.Asin(1.0/m1); math.Abs(last.Theta-cone) > coneTolerance {
		return evaluation{}, flow.Errorf(flow.ErrDesignOutOfRange,
			"terminal θ=%.6g is off the mach %.4g cone at %.6g", last.Theta, m1, cone)
	}

	d.logger.Debug("freestream evaluated", "beta3", beta3, "mach", m1, "states", len(sol))
	return evaluation{upstream: up, sol: sol, freestream: m1, maxLocalError: maxLocalError}, nil
}

// searchMachPair walks the terminal shock angle down from the Mach angle,
// where the freestream equals the exit Mach, until the freestream reaches the
// target, then bisects inside the last interval.
func (d *Designer) searchMachPair(ctx context.Context, cfg DesignConfig, lo, hi float64) (float64, error) {
	residual := func(beta3 float64) (float64, error) {
		ev, err := d.evaluate(ctx, cfg, beta3)
		if err != nil {
			return 0, err
		}
		return ev.freestream - cfg.FreestreamMach, nil
	}

	prev := hi
	f, err := residual(hi)
	if err != nil {
		return 0, err
	}
	if f >= 0 {
		return 0, flow.Errorf(flow.ErrDesignOutOfRange,
			"freestream mach %g too close to exit mach %g", cfg.FreestreamMach, cfg.ExitMach)
	}

	for i := 1; i <= d.scanPoints; i++ {
		beta := hi - (hi-lo)*float64(i)/float64(d.scanPoints)
		f, err = residual(beta)
		if err != nil {
			d.logger.Debug("scan stopped", "beta3", beta, "err", err)
			break
		}
		if f >= 0 {
			d.logger.Debug("bracket found", "lower", beta, "upper", prev)
			return numerics.Bisection(residual, beta, prev, cfg.Solver)
		}
		prev = beta
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	return 0, flow.Errorf(flow.ErrDesignOutOfRange,
		"freestream mach %g not reachable from exit mach %g", cfg.FreestreamMach, cfg.ExitMach)
}

// searchRecovery bisects the terminal shock angle on its total-pressure
// recovery, which grows monotonically towards one at the Mach angle.
func (d *Designer) searchRecovery(cfg DesignConfig, lo, hi float64) (float64, error) {
	residual := func(beta3 float64) (float64, error) {
		up, err := obliqueshock.UpstreamFromDownstream(cfg.ExitMach, beta3, cfg.Gamma)
		if err != nil {
			return 0, err
		}
		r, err := obliqueshock.StagnationPressureRatio(up.Mach, up.ShockAngle, cfg.Gamma)
		if err != nil {
			return 0, err
		}
		return r - cfg.Recovery, nil
	}

	fLo, err := residual(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := residual(hi)
	if err != nil {
		return 0, err
	}
	if fLo*fHi > 0 {
		return 0, flow.Errorf(flow.ErrDesignOutOfRange,
			"recovery %g outside [%.4g, %.4g] for exit mach %g",
			cfg.Recovery, fLo+cfg.Recovery, fHi+cfg.Recovery, cfg.ExitMach)
	}

	d.logger.Debug("recovery bracket", "lower", lo, "upper", hi)
	return numerics.Bisection(residual, lo, hi, cfg.Solver)
}
