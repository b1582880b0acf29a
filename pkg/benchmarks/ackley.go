package benchmarks

import (
	"math"

	"github.com/evolab/metabench/pkg/framework"
)

// Ackley combines an exponential well with a cosine ripple; nearly flat far
// from the origin, minimum 0 at the origin.
type Ackley struct {
	dim int
}

func NewAckley(dim int) *Ackley {
	return &Ackley{dim: dim}
}

func (p *Ackley) Name() string {
	return "Ackley"
}

func (p *Ackley) Dimension() int {
	return p.dim
}

func (p *Ackley) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.dim, -32, 32)
}

func (p *Ackley) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.eval}
}

func (p *Ackley) eval(x []float64) float64 {
	n := float64(len(x))
	sumSq := 0.0
	sumCos := 0.0
	for _, v := range x {
		sumSq += v * v
		sumCos += math.Cos(2 * math.Pi * v)
	}
	return -20*math.Exp(-0.2*math.Sqrt(sumSq/n)) - math.Exp(sumCos/n) + 20 + math.E
}

func (p *Ackley) Constraints() []framework.Constraint {
	return nil
}

func (p *Ackley) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
