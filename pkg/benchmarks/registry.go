package benchmarks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evolab/metabench/pkg/framework"
)

// ErrUnknownBenchmark is returned by New for ids not present in the catalog.
var ErrUnknownBenchmark = errors.New("benchmarks: unknown function")

// Kinds of benchmark functions.
const (
	KindUnimodal       = "Unimodal"
	KindMultimodal     = "Multimodal"
	KindMultiobjective = "Multiobjective"
)

// Info describes a registered benchmark function.
type Info struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Kind         string  `json:"type"`
	Dimension    int     `json:"dimension"`
	Objectives   int     `json:"objectives"`
	LowerBound   float64 `json:"lowerBound"`
	UpperBound   float64 `json:"upperBound"`
	OptimalValue float64 `json:"optimalValue"`
	Description  string  `json:"description,omitempty"`
}

type entry struct {
	info  Info
	build func(dimension int) framework.Problem
}

var catalog = []entry{
	{
		info: Info{
			ID: "F1", Name: "Sphere", Kind: KindUnimodal,
			Dimension: 30, Objectives: 1,
			LowerBound: -100, UpperBound: 100, OptimalValue: 0,
			Description: "Convex quadratic bowl, minimum at the origin",
		},
		build: func(dim int) framework.Problem { return NewSphere(dim) },
	},
	{
		info: Info{
			ID: "F2", Name: "Rosenbrock", Kind: KindUnimodal,
			Dimension: 30, Objectives: 1,
			LowerBound: -30, UpperBound: 30, OptimalValue: 0,
			Description: "Narrow curved valley, minimum at (1,...,1)",
		},
		build: func(dim int) framework.Problem { return NewRosenbrock(dim) },
	},
	{
		info: Info{
			ID: "F9", Name: "Rastrigin", Kind: KindMultimodal,
			Dimension: 30, Objectives: 1,
			LowerBound: -5.12, UpperBound: 5.12, OptimalValue: 0,
			Description: "Regular lattice of local minima, global minimum at the origin",
		},
		build: func(dim int) framework.Problem { return NewRastrigin(dim) },
	},
	{
		info: Info{
			ID: "F10", Name: "Ackley", Kind: KindMultimodal,
			Dimension: 30, Objectives: 1,
			LowerBound: -32, UpperBound: 32, OptimalValue: 0,
			Description: "Nearly flat outer region with a deep central hole",
		},
		build: func(dim int) framework.Problem { return NewAckley(dim) },
	},
	{
		info: Info{
			ID: "F11", Name: "Griewank", Kind: KindMultimodal,
			Dimension: 30, Objectives: 1,
			LowerBound: -600, UpperBound: 600, OptimalValue: 0,
			Description: "Many widespread local minima over a quadratic trend",
		},
		build: func(dim int) framework.Problem { return NewGriewank(dim) },
	},
	{
		info: Info{
			ID: "ZDT1", Name: "ZDT1", Kind: KindMultiobjective,
			Dimension: 30, Objectives: 2,
			LowerBound: 0, UpperBound: 1,
			Description: "Bi-objective with a convex Pareto front",
		},
		build: func(dim int) framework.Problem { return NewZDT1(dim) },
	},
	{
		info: Info{
			ID: "ZDT2", Name: "ZDT2", Kind: KindMultiobjective,
			Dimension: 30, Objectives: 2,
			LowerBound: 0, UpperBound: 1,
			Description: "Bi-objective with a non-convex Pareto front",
		},
		build: func(dim int) framework.Problem { return NewZDT2(dim) },
	},
	{
		info: Info{
			ID: "ZDT3", Name: "ZDT3", Kind: KindMultiobjective,
			Dimension: 30, Objectives: 2,
			LowerBound: 0, UpperBound: 1,
			Description: "Bi-objective with a disconnected Pareto front",
		},
		build: func(dim int) framework.Problem { return NewZDT3(dim) },
	},
	{
		info: Info{
			ID: "DTLZ1", Name: "DTLZ1", Kind: KindMultiobjective,
			Dimension: 7, Objectives: 2,
			LowerBound: 0, UpperBound: 1,
			Description: "Scalable problem with a linear Pareto front and many local fronts",
		},
		build: func(dim int) framework.Problem { return NewDTLZ1(dim, 2) },
	},
	{
		info: Info{
			ID: "DTLZ2", Name: "DTLZ2", Kind: KindMultiobjective,
			Dimension: 12, Objectives: 2,
			LowerBound: 0, UpperBound: 1,
			Description: "Scalable problem with a spherical Pareto front",
		},
		build: func(dim int) framework.Problem { return NewDTLZ2(dim, 2) },
	},
}

// List returns metadata for every registered function, in catalog order.
func List() []Info {
	out := make([]Info, len(catalog))
	for i, e := range catalog {
		out[i] = e.info
	}
	return out
}

// Lookup returns the metadata registered under id.
func Lookup(id string) (Info, bool) {
	for _, e := range catalog {
		if strings.EqualFold(e.info.ID, id) {
			return e.info, true
		}
	}
	return Info{}, false
}

// New builds the benchmark function registered under id. A dimension of 0
// keeps the catalog default for that function.
func New(id string, dimension int) (framework.Problem, error) {
	for _, e := range catalog {
		if strings.EqualFold(e.info.ID, id) {
			dim := e.info.Dimension
			if dimension > 0 {
				dim = dimension
			}
			return e.build(dim), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBenchmark, id)
}
