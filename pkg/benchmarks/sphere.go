// Package benchmarks provides the standard single- and multi-objective test
// functions the platform runs its algorithms against, plus a registry of
// their metadata and a sweep suite for the multi-objective set.
package benchmarks

import (
	"github.com/evolab/metabench/pkg/framework"
)

// Sphere is the unimodal baseline: f(x) = Σ xᵢ², minimum 0 at the origin.
type Sphere struct {
	dim int
}

func NewSphere(dim int) *Sphere {
	return &Sphere{dim: dim}
}

func (p *Sphere) Name() string {
	return "Sphere"
}

func (p *Sphere) Dimension() int {
	return p.dim
}

func (p *Sphere) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.dim, -100, 100)
}

func (p *Sphere) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.eval}
}

func (p *Sphere) eval(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func (p *Sphere) Constraints() []framework.Constraint {
	return nil
}

func (p *Sphere) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
