// Package sweep runs families of independent inlet designs concurrently.
package sweep

import (
	"context"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/busemann/internal/inlet"
)

// Outcome is the result of one case; Index is its position in the input.
type Outcome struct {
	Index  int
	Config inlet.DesignConfig
	Inlet  *inlet.Inlet
	Err    error
}

// Run designs every case on a pool of workers with a default Designer.
func Run(ctx context.Context, cases []inlet.DesignConfig, workers int) []Outcome {
	return RunWith(ctx, inlet.NewDesigner(), cases, workers)
}

// RunWith designs every case with d. Outcomes are returned in input order.
// Cases still queued when ctx is cancelled report ctx.Err(). workers <= 0
// uses one worker per CPU.
func RunWith(ctx context.Context, d *inlet.Designer, cases []inlet.DesignConfig, workers int) []Outcome {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(cases) {
		workers = len(cases)
	}

	out := make([]Outcome, len(cases))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				in, err := d.Design(ctx, cases[idx])
				out[idx] = Outcome{Index: idx, Config: cases[idx], Inlet: in, Err: err}
			}
		}()
	}

	next := 0
feed:
	for ; next < len(cases); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- next:
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(cases); i++ {
		out[i] = Outcome{Index: i, Config: cases[i], Err: ctx.Err()}
	}
	return out
}

// Grid builds Mach-pair cases over n1 freestream and n3 exit Mach numbers,
// copying the remaining fields from base. Pairs whose freestream does not
// exceed the exit Mach are left out.
func Grid(m1Lo, m1Hi float64, n1 int, m3Lo, m3Hi float64, n3 int, base inlet.DesignConfig) []inlet.DesignConfig {
	m1s := span(m1Lo, m1Hi, n1)
	m3s := span(m3Lo, m3Hi, n3)

	cases := make([]inlet.DesignConfig, 0, len(m1s)*len(m3s))
	for _, m1 := range m1s {
		for _, m3 := range m3s {
			if m1 <= m3 {
				continue
			}
			c := base
			c.Method = inlet.MethodMachPair
			c.FreestreamMach = m1
			c.ExitMach = m3
			cases = append(cases, c)
		}
	}
	return cases
}

func span(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Failed counts outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
