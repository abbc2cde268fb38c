package integrators

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, x State, theta, h float64) (State, error) {
	dx, err := sys.Derive(x, theta)
	if err != nil {
		return nil, err
	}
	result := make(State, len(x))
	for i := range x {
		result[i] = x[i] + h*dx[i]
	}
	return result, nil
}
