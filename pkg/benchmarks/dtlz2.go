package benchmarks

import (
	"math"

	"github.com/evolab/metabench/pkg/framework"
)

// DTLZ2 is scalable to any number of objectives
// It has a spherical Pareto front
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ2
	return &DTLZ2{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ2) Name() string {
	return "DTLZ2"
}

func (p *DTLZ2) Dimension() int {
	return p.numVars
}

func (p *DTLZ2) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i
		funcs[i] = func(x []float64) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) objective(x []float64, objIdx int) float64 {
	g := p.g(x)

	f := 1 + g
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= math.Cos(x[i] * math.Pi / 2)
	}
	if objIdx > 0 {
		f *= math.Sin(x[p.numObjectives-objIdx-1] * math.Pi / 2)
	}

	return f
}

func (p *DTLZ2) Constraints() []framework.Constraint {
	return nil
}

func (p *DTLZ2) Bounds() []framework.Bounds {
	return framework.UniformBounds(p.numVars, 0, 1)
}

func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// The true Pareto front satisfies sum(f_i^2) = 1.
	switch p.numObjectives {
	case 2:
		// Quarter circle in the first quadrant.
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := 0; i < numPoints; i++ {
			theta := float64(i) / float64(numPoints-1) * math.Pi / 2
			points[i] = framework.ObjectiveSpacePoint{
				math.Cos(theta),
				math.Sin(theta),
			}
		}
		return points
	case 3:
		// Octant of the unit sphere, on a grid over two angles.
		side := int(math.Sqrt(float64(numPoints)))
		if side < 2 {
			side = 2
		}
		points := make([]framework.ObjectiveSpacePoint, 0, side*side)
		for i := 0; i < side; i++ {
			theta1 := float64(i) / float64(side-1) * math.Pi / 2
			for j := 0; j < side; j++ {
				theta2 := float64(j) / float64(side-1) * math.Pi / 2
				points = append(points, framework.ObjectiveSpacePoint{
					math.Cos(theta1) * math.Cos(theta2),
					math.Cos(theta1) * math.Sin(theta2),
					math.Sin(theta1),
				})
			}
		}
		return points
	}
	return nil
}
