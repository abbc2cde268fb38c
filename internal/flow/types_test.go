package flow

import (
	"errors"
	"math"
	"testing"
)

func TestValidSpecificHeatRatio(t *testing.T) {
	tests := []struct {
		gamma float64
		valid bool
	}{
		{1.4, true},
		{1.0, false},
		{0.5, false},
		{1.0000001, true},
		{5.0 / 3.0, true},
	}

	for _, tt := range tests {
		if got := ValidSpecificHeatRatio(tt.gamma); got != tt.valid {
			t.Errorf("ValidSpecificHeatRatio(%v) = %v, want %v", tt.gamma, got, tt.valid)
		}
	}
}

func TestCheckGamma(t *testing.T) {
	if err := CheckGamma(1.4); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckGamma(1.0); !errors.Is(err, ErrInvalidSpecificHeatRatio) {
		t.Errorf("expected ErrInvalidSpecificHeatRatio, got %v", err)
	}
}

func TestVelocityVector_Mach(t *testing.T) {
	tests := []struct {
		name       string
		vv         VelocityVector
		mach       float64
		supersonic bool
	}{
		{"3-4-5", VelocityVector{U: 3, V: -4}, 5, true},
		{"sonic", VelocityVector{U: 1, V: 0}, 1, true},
		{"subsonic", VelocityVector{U: 0.3, V: 0.4}, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vv.Mach(); math.Abs(got-tt.mach) > 1e-12 {
				t.Errorf("Mach() = %v, want %v", got, tt.mach)
			}
			if got := tt.vv.IsSupersonic(); got != tt.supersonic {
				t.Errorf("IsSupersonic() = %v, want %v", got, tt.supersonic)
			}
		})
	}
}

func TestVelocityVector_AxialFlow(t *testing.T) {
	// uniform flow along the axis has zero cross-stream component at any ray
	mach := 3.0
	for _, theta := range []float64{0.3, 1.0, math.Pi / 2, 2.5} {
		vv := VelocityVector{U: mach * math.Cos(theta), V: -mach * math.Sin(theta)}
		if cs := vv.CrossStream(theta); math.Abs(cs) > 1e-12 {
			t.Errorf("theta=%v: cross stream = %v, want 0", theta, cs)
		}
	}
}

func TestVelocityVector_IsValid(t *testing.T) {
	if !(VelocityVector{U: 1, V: 2}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (VelocityVector{U: math.NaN(), V: 2}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (VelocityVector{U: 1, V: math.Inf(-1)}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}

func TestFlowState_Cartesian(t *testing.T) {
	s := FlowState{R: 2, Theta: math.Pi / 2}
	if math.Abs(s.X()) > 1e-12 || math.Abs(s.Y()-2) > 1e-12 {
		t.Errorf("got (%v, %v), want (0, 2)", s.X(), s.Y())
	}
}

func TestSolution_Machs(t *testing.T) {
	sol := Solution{
		{Velocity: VelocityVector{U: 3, V: -4}},
		{Velocity: VelocityVector{U: 0, V: -2}},
	}
	machs := sol.Machs()
	if len(machs) != 2 || machs[0] != 5 || machs[1] != 2 {
		t.Errorf("Machs() = %v", machs)
	}
	if sol.Last().Velocity.V != -2 {
		t.Errorf("Last() returned wrong state: %+v", sol.Last())
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(ErrInvalidMachNumber, "mach=%g", -1.0)
	if !errors.Is(err, ErrInvalidMachNumber) {
		t.Errorf("wrapped error lost its kind: %v", err)
	}
	want := "flow: invalid mach number: mach=-1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
