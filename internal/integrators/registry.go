package integrators

import (
	"fmt"
	"sort"
)

// Default is the stepper used when no name is given.
const Default = "rk4"

var registry = map[string]func() Stepper{
	"rk4":   func() Stepper { return NewRK4() },
	"euler": func() Stepper { return NewEuler() },
	"rk45":  func() Stepper { return NewRK45() },
}

// New returns a fresh stepper by name. The empty name selects Default.
func New(name string) (Stepper, error) {
	if name == "" {
		name = Default
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
