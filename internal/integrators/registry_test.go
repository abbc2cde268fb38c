package integrators

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    Stepper
		wantErr bool
	}{
		{"", &RK4{}, false},
		{"rk4", &RK4{}, false},
		{"euler", &Euler{}, false},
		{"rk45", &RK45{}, false},
		{"verlet", nil, true},
	}

	for _, tt := range tests {
		got, err := New(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q): %v", tt.name, err)
			continue
		}
		if reflect.TypeOf(got) != reflect.TypeOf(tt.want) {
			t.Errorf("New(%q) = %T, want %T", tt.name, got, tt.want)
		}
	}
}

func TestNewReturnsFreshInstances(t *testing.T) {
	a, _ := New("rk4")
	b, _ := New("rk4")
	if a == b {
		t.Error("expected distinct stepper instances")
	}
}

func TestList(t *testing.T) {
	want := []string{"euler", "rk4", "rk45"}
	if got := List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}
