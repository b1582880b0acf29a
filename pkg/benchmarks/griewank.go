package benchmarks

import (
	"math"

	"github.com/evolab/metabench/pkg/framework"
)

// Griewank overlays a slowly growing quadratic bowl with a product of
// cosines, producing many widely spread local minima; minimum 0 at the
// origin.
type Griewank struct {
	dim int
}

func NewGriewank(dim int) *Griewank {
	return &Griewank{dim: dim}
}

func (p *Griewank) Name() string {
	return "Griewank"
}

func (p *Griewank) Dimension() int {
	return p.dim
}

func (p *Griewank) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.dim, -600, 600)
}

func (p *Griewank) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.eval}
}

func (p *Griewank) eval(x []float64) float64 {
	sum := 0.0
	prod := 1.0
	for i, v := range x {
		sum += v * v / 4000
		prod *= math.Cos(v / math.Sqrt(float64(i+1)))
	}
	return sum - prod + 1
}

func (p *Griewank) Constraints() []framework.Constraint {
	return nil
}

func (p *Griewank) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
