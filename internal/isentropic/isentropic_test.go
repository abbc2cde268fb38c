package isentropic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/busemann/internal/flow"
)

const (
	mach  = 2.0
	gamma = flow.GammaAir
	tol   = 1e-5
)

func TestLiteralValues(t *testing.T) {
	p, err := PressureRatio(mach, gamma)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(1.8, -3.5), p, 1e-12)
	assert.InDelta(t, 0.1278, p, 1e-4)

	temp, err := TemperatureRatio(mach, gamma)
	require.NoError(t, err)
	assert.InDelta(t, 1/1.8, temp, 1e-12)

	rho, err := DensityRatio(mach, gamma)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(1.8, -2.5), rho, 1e-12)

	mu, err := MachAngle(mach)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/6, mu, 1e-12)

	nu, err := PrandtlMeyer(mach, gamma)
	require.NoError(t, err)
	assert.InDelta(t, 0.4604, nu, 1e-4) // 26.38 degrees
}

func TestRoundTrips(t *testing.T) {
	tests := []struct {
		name    string
		forward func(float64, float64) (float64, error)
		inverse func(float64, float64) (float64, error)
	}{
		{"pressure", PressureRatio, MachFromPressureRatio},
		{"temperature", TemperatureRatio, MachFromTemperatureRatio},
		{"density", DensityRatio, MachFromDensityRatio},
		{"prandtl-meyer", PrandtlMeyer, MachFromPrandtlMeyer},
		{
			"mach angle",
			func(m, _ float64) (float64, error) { return MachAngle(m) },
			func(a, _ float64) (float64, error) { return MachFromMachAngle(a) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range []float64{1.2, mach, 3.5, 6.0} {
				v, err := tt.forward(m, gamma)
				require.NoError(t, err)
				got, err := tt.inverse(v, gamma)
				require.NoError(t, err)
				assert.InDelta(t, m, got, tol, "mach %v", m)
			}
		})
	}
}

func TestRoundTripOtherGamma(t *testing.T) {
	g := 5.0 / 3.0
	nu, err := PrandtlMeyer(3.0, g)
	require.NoError(t, err)
	m, err := MachFromPrandtlMeyer(nu, g)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, m, tol)
}

func TestBoundaryFailures(t *testing.T) {
	tests := []struct {
		name string
		call func() (float64, error)
		want error
	}{
		{"negative mach angle input", func() (float64, error) { return MachAngle(-1.0) }, flow.ErrInvalidMachNumber},
		{"subsonic mach angle", func() (float64, error) { return MachAngle(0.5) }, flow.ErrMathDomain},
		{"gamma of one", func() (float64, error) { return PressureRatio(2.0, 1.0) }, flow.ErrInvalidSpecificHeatRatio},
		{"gamma below one", func() (float64, error) { return TemperatureRatio(2.0, 0.9) }, flow.ErrInvalidSpecificHeatRatio},
		{"negative mach ratio", func() (float64, error) { return DensityRatio(-2.0, 1.4) }, flow.ErrInvalidMachNumber},
		{"sonic prandtl-meyer", func() (float64, error) { return PrandtlMeyer(1.0, 1.4) }, flow.ErrInvalidMachNumber},
		{"mach angle above π/2", func() (float64, error) { return MachFromMachAngle(math.Pi) }, flow.ErrInvalidAngle},
		{"negative mach angle", func() (float64, error) { return MachFromMachAngle(-0.1) }, flow.ErrInvalidAngle},
		{"zero mach angle", func() (float64, error) { return MachFromMachAngle(0) }, flow.ErrMathDomain},
		{"zero pressure ratio", func() (float64, error) { return MachFromPressureRatio(0, 1.4) }, flow.ErrInvalidRatio},
		{"pressure ratio above one", func() (float64, error) { return MachFromPressureRatio(1.2, 1.4) }, flow.ErrInvalidRatio},
		{"negative temperature ratio", func() (float64, error) { return MachFromTemperatureRatio(-0.5, 1.4) }, flow.ErrInvalidRatio},
		{"density ratio above one", func() (float64, error) { return MachFromDensityRatio(1.01, 1.4) }, flow.ErrInvalidRatio},
		{"prandtl-meyer beyond limit", func() (float64, error) { return MachFromPrandtlMeyer(3.0, 1.4) }, flow.ErrInvalidAngle},
		{"inverse gamma", func() (float64, error) { return MachFromPrandtlMeyer(0.4, 1.0) }, flow.ErrInvalidSpecificHeatRatio},
		{"zero speed of sound", func() (float64, error) { return MachFromSpeedOfSound(300, 0) }, flow.ErrMathDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Zero(t, v)
		})
	}
}

func TestStagnationLimits(t *testing.T) {
	p, err := PressureRatio(0, gamma)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	m, err := MachFromTemperatureRatio(1.0, gamma)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	mu, err := MachAngle(1.0)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, mu, 1e-12)
}

func TestMachFromSpeedOfSound(t *testing.T) {
	m, err := MachFromSpeedOfSound(680.6, 340.3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m, 1e-12)
}
