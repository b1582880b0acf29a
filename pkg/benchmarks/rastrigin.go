package benchmarks

import (
	"math"

	"github.com/evolab/metabench/pkg/framework"
)

// Rastrigin is highly multimodal, with a regular lattice of local minima
// around the global minimum 0 at the origin.
type Rastrigin struct {
	dim int
}

func NewRastrigin(dim int) *Rastrigin {
	return &Rastrigin{dim: dim}
}

func (p *Rastrigin) Name() string {
	return "Rastrigin"
}

func (p *Rastrigin) Dimension() int {
	return p.dim
}

func (p *Rastrigin) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.dim, -5.12, 5.12)
}

func (p *Rastrigin) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.eval}
}

func (p *Rastrigin) eval(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v*v - 10*math.Cos(2*math.Pi*v) + 10
	}
	return sum
}

func (p *Rastrigin) Constraints() []framework.Constraint {
	return nil
}

func (p *Rastrigin) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
