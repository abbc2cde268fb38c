package inlet

import (
	"github.com/san-kum/busemann/internal/isentropic"
	"github.com/san-kum/busemann/internal/obliqueshock"
)

// Performance summarises a design. Static ratios are exit over freestream.
type Performance struct {
	FreestreamMach float64
	PreShockMach   float64 // ahead of the terminal shock
	ExitMach       float64

	TerminalShockAngle float64 // between the shock and the exit flow
	ShockAngle         float64 // between the shock and the pre-shock flow
	Deflection         float64 // turning across the terminal shock

	TotalPressureRecovery  float64
	StaticPressureRatio    float64
	StaticTemperatureRatio float64
	ContractionRatio       float64 // (capture radius / exit radius)²
	LengthRatio            float64 // contour length / capture radius

	// MaxLocalError is the largest scaled local error estimate of the final
	// integration. Only rk45 provides one; other integrators leave it zero.
	MaxLocalError float64
}

// composePerformance chains the isentropic compression M1 -> M2 with the
// terminal shock at (M2, beta2). The compression is isentropic so the
// recovery is that of the shock alone.
func composePerformance(m1, m3, beta3 float64, up obliqueshock.Upstream, contour Contour, gamma float64) (Performance, error) {
	m2, beta2 := up.Mach, up.ShockAngle

	recovery, err := obliqueshock.StagnationPressureRatio(m2, beta2, gamma)
	if err != nil {
		return Performance{}, err
	}

	p1, err := isentropic.PressureRatio(m1, gamma)
	if err != nil {
		return Performance{}, err
	}
	p2, err := isentropic.PressureRatio(m2, gamma)
	if err != nil {
		return Performance{}, err
	}
	shockP, err := obliqueshock.PressureRatio(m2, beta2, gamma)
	if err != nil {
		return Performance{}, err
	}

	t1, err := isentropic.TemperatureRatio(m1, gamma)
	if err != nil {
		return Performance{}, err
	}
	t2, err := isentropic.TemperatureRatio(m2, gamma)
	if err != nil {
		return Performance{}, err
	}
	shockT, err := obliqueshock.TemperatureRatio(m2, beta2, gamma)
	if err != nil {
		return Performance{}, err
	}

	perf := Performance{
		FreestreamMach:         m1,
		PreShockMach:           m2,
		ExitMach:               m3,
		TerminalShockAngle:     beta3,
		ShockAngle:             beta2,
		Deflection:             up.Deflection,
		TotalPressureRecovery:  recovery,
		StaticPressureRatio:    p2 / p1 * shockP,
		StaticTemperatureRatio: t2 / t1 * shockT,
	}
	if exit := contour.ExitRadius(); exit > 0 {
		cr := contour.CaptureRadius() / exit
		perf.ContractionRatio = cr * cr
	}
	if capture := contour.CaptureRadius(); capture > 0 {
		perf.LengthRatio = contour.Length() / capture
	}
	return perf, nil
}
