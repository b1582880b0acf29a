package benchmarks

import (
	"github.com/evolab/metabench/pkg/framework"
)

// Rosenbrock is the classic banana valley: unimodal but with a long, flat
// curved ridge toward the minimum at (1, ..., 1).
type Rosenbrock struct {
	dim int
}

func NewRosenbrock(dim int) *Rosenbrock {
	return &Rosenbrock{dim: dim}
}

func (p *Rosenbrock) Name() string {
	return "Rosenbrock"
}

func (p *Rosenbrock) Dimension() int {
	return p.dim
}

func (p *Rosenbrock) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.dim, -30, 30)
}

func (p *Rosenbrock) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.eval}
}

func (p *Rosenbrock) eval(x []float64) float64 {
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := x[i] - 1
		sum += 100*a*a + b*b
	}
	return sum
}

func (p *Rosenbrock) Constraints() []framework.Constraint {
	return nil
}

func (p *Rosenbrock) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
