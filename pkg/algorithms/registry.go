package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evolab/metabench/pkg/framework"
)

// Version is the engine version reported in algorithm metadata and run
// results.
const Version = "2.0.0"

// ErrObjectiveMismatch is returned when an algorithm id is used with the
// wrong arity, e.g. a multi-objective id passed to New.
var ErrObjectiveMismatch = errors.New("algorithms: objective arity mismatch")

// Algorithm categories.
const (
	CategorySwarm        = "swarm"
	CategoryEvolutionary = "evolutionary"
	CategoryPhysics      = "physics"
	CategoryHybrid       = "hybrid"
)

// Reference cites the publication introducing an algorithm.
type Reference struct {
	Authors string `json:"authors"`
	Year    int    `json:"year"`
	DOI     string `json:"doi,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Complexity describes the asymptotic cost of a run in terms of the
// population size N, dimension D, iteration count T and objective count M.
type Complexity struct {
	Time  string `json:"time"`
	Space string `json:"space"`
}

// ParamSpec documents one tunable parameter.
type ParamSpec struct {
	Type        string   `json:"type"`
	Default     float64  `json:"default"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Description string   `json:"description"`
}

// Info describes a registered algorithm.
type Info struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	FullName       string               `json:"fullName"`
	Version        string               `json:"version"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	MultiObjective bool                 `json:"multiObjective"`
	ParamSchema    map[string]ParamSpec `json:"paramSchema"`
	Reference      Reference            `json:"reference"`
	Complexity     Complexity           `json:"complexity"`
}

// Params carries optional algorithm-specific parameters keyed by their
// paramSchema names. Missing keys read as zero, which selects the driver's
// default.
type Params map[string]float64

func (p Params) Float(name string) float64 { return p[name] }
func (p Params) Int(name string) int       { return int(p[name]) }

type entry struct {
	info       Info
	build      func(cfg Config, params Params, problem framework.Problem) Optimizer
	buildFront func(cfg MultiConfig, params Params, problem framework.Problem) MultiObjective
}

func f64(v float64) *float64 { return &v }

func baseSchema() map[string]ParamSpec {
	return map[string]ParamSpec{
		"populationSize": {
			Type: "integer", Default: DefaultPopulationSize, Min: f64(2),
			Description: "number of search agents",
		},
		"maxIterations": {
			Type: "integer", Default: DefaultMaxIterations, Min: f64(1),
			Description: "iteration budget",
		},
	}
}

func archiveSchema() map[string]ParamSpec {
	schema := baseSchema()
	schema["archiveSize"] = ParamSpec{
		Type: "integer", Default: DefaultArchiveSize, Min: f64(1),
		Description: "capacity of the external Pareto archive",
	}
	return schema
}

func nsga2Schema() map[string]ParamSpec {
	schema := archiveSchema()
	schema["crossoverProbability"] = ParamSpec{
		Type: "float", Default: DefaultCrossoverProbability, Min: f64(0), Max: f64(1),
		Description: "probability of applying simulated binary crossover",
	}
	schema["mutationProbability"] = ParamSpec{
		Type: "float", Default: 0, Min: f64(0), Max: f64(1),
		Description: "per-variable polynomial mutation probability, 0 selects 1/dimension",
	}
	schema["tournamentSize"] = ParamSpec{
		Type: "integer", Default: DefaultTournamentSize, Min: f64(2),
		Description: "contestants per tournament selection",
	}
	return schema
}

func mopsoSchema() map[string]ParamSpec {
	schema := archiveSchema()
	schema["inertiaWeight"] = ParamSpec{
		Type: "float", Default: DefaultInertiaWeight, Min: f64(0), Max: f64(1),
		Description: "velocity inertia weight",
	}
	schema["cognitiveCoeff"] = ParamSpec{
		Type: "float", Default: DefaultCognitiveCoeff, Min: f64(0),
		Description: "attraction toward the personal best",
	}
	schema["socialCoeff"] = ParamSpec{
		Type: "float", Default: DefaultSocialCoeff, Min: f64(0),
		Description: "attraction toward the archive leader",
	}
	return schema
}

var registry = []entry{
	{
		info: Info{
			ID: GWOName, Name: GWOName, FullName: "Grey Wolf Optimizer",
			Version: Version, Category: CategorySwarm,
			Description: "Pack hunting dynamics led by the three best wolves",
			ParamSchema: baseSchema(),
			Reference: Reference{
				Authors: "Mirjalili, Mirjalili, Lewis", Year: 2014,
				DOI:   "10.1016/j.advengsoft.2013.12.007",
				Title: "Grey Wolf Optimizer",
			},
			Complexity: Complexity{Time: "O(T*N*D)", Space: "O(N*D)"},
		},
		build: func(cfg Config, _ Params, problem framework.Problem) Optimizer {
			return NewGWO(cfg, problem)
		},
	},
	{
		info: Info{
			ID: ALOName, Name: ALOName, FullName: "Ant Lion Optimizer",
			Version: Version, Category: CategorySwarm,
			Description: "Ants random-walking into shrinking antlion traps",
			ParamSchema: baseSchema(),
			Reference: Reference{
				Authors: "Mirjalili", Year: 2015,
				DOI:   "10.1016/j.advengsoft.2015.01.010",
				Title: "The Ant Lion Optimizer",
			},
			Complexity: Complexity{Time: "O(T^2*N*D)", Space: "O(N*D)"},
		},
		build: func(cfg Config, _ Params, problem framework.Problem) Optimizer {
			return NewALO(cfg, problem)
		},
	},
	{
		info: Info{
			ID: WOAName, Name: WOAName, FullName: "Whale Optimization Algorithm",
			Version: Version, Category: CategorySwarm,
			Description: "Humpback bubble-net hunting with spiral position updates",
			ParamSchema: baseSchema(),
			Reference: Reference{
				Authors: "Mirjalili, Lewis", Year: 2016,
				DOI:   "10.1016/j.advengsoft.2016.01.008",
				Title: "The Whale Optimization Algorithm",
			},
			Complexity: Complexity{Time: "O(T*N*D)", Space: "O(N*D)"},
		},
		build: func(cfg Config, _ Params, problem framework.Problem) Optimizer {
			return NewWOA(cfg, problem)
		},
	},
	{
		info: Info{
			ID: IGWOName, Name: IGWOName, FullName: "Improved Grey Wolf Optimizer",
			Version: Version, Category: CategoryHybrid,
			Description: "GWO with dimension learning-based hunting neighborhoods",
			ParamSchema: baseSchema(),
			Reference: Reference{
				Authors: "Nadimi-Shahraki, Taghian, Mirjalili", Year: 2021,
				DOI:   "10.1016/j.eswa.2020.113917",
				Title: "An improved grey wolf optimizer for solving engineering problems",
			},
			Complexity: Complexity{Time: "O(T*N^2*D)", Space: "O(N*D)"},
		},
		build: func(cfg Config, _ Params, problem framework.Problem) Optimizer {
			return NewIGWO(cfg, problem)
		},
	},
	{
		info: Info{
			ID: NSGA2Name, Name: NSGA2Name,
			FullName: "Non-dominated Sorting Genetic Algorithm II",
			Version:  Version, Category: CategoryEvolutionary, MultiObjective: true,
			Description: "Elitist genetic algorithm with fast non-dominated sorting and crowding distance",
			ParamSchema: nsga2Schema(),
			Reference: Reference{
				Authors: "Deb, Pratap, Agarwal, Meyarivan", Year: 2002,
				DOI:   "10.1109/4235.996017",
				Title: "A fast and elitist multiobjective genetic algorithm: NSGA-II",
			},
			Complexity: Complexity{Time: "O(T*M*N^2)", Space: "O(N*D)"},
		},
		buildFront: func(cfg MultiConfig, params Params, problem framework.Problem) MultiObjective {
			return NewNSGAII(NSGA2Config{
				MultiConfig:          cfg,
				CrossoverProbability: params.Float("crossoverProbability"),
				MutationProbability:  params.Float("mutationProbability"),
				TournamentSize:       params.Int("tournamentSize"),
			}, problem)
		},
	},
	{
		info: Info{
			ID: MOGWOName, Name: MOGWOName, FullName: "Multi-Objective Grey Wolf Optimizer",
			Version: Version, Category: CategorySwarm, MultiObjective: true,
			Description: "Grey wolf pack steered by leaders sampled from a bounded Pareto archive",
			ParamSchema: archiveSchema(),
			Reference: Reference{
				Authors: "Mirjalili, Saremi, Mirjalili, Coelho", Year: 2016,
				DOI:   "10.1016/j.eswa.2015.10.039",
				Title: "Multi-objective grey wolf optimizer: A novel algorithm for multi-criterion optimization",
			},
			Complexity: Complexity{Time: "O(T*(N*D + A^2*M))", Space: "O((N+A)*D)"},
		},
		buildFront: func(cfg MultiConfig, _ Params, problem framework.Problem) MultiObjective {
			return NewMOGWO(cfg, problem)
		},
	},
	{
		info: Info{
			ID: MOPSOName, Name: MOPSOName, FullName: "Multi-Objective Particle Swarm Optimization",
			Version: Version, Category: CategorySwarm, MultiObjective: true,
			Description: "Particle swarm with Pareto personal bests and archive leaders",
			ParamSchema: mopsoSchema(),
			Reference: Reference{
				Authors: "Coello Coello, Pulido, Lechuga", Year: 2004,
				DOI:   "10.1109/TEVC.2004.826067",
				Title: "Handling multiple objectives with particle swarm optimization",
			},
			Complexity: Complexity{Time: "O(T*(N*D + A^2*M))", Space: "O((N+A)*D)"},
		},
		buildFront: func(cfg MultiConfig, params Params, problem framework.Problem) MultiObjective {
			return NewMOPSO(MOPSOConfig{
				MultiConfig:    cfg,
				InertiaWeight:  params.Float("inertiaWeight"),
				CognitiveCoeff: params.Float("cognitiveCoeff"),
				SocialCoeff:    params.Float("socialCoeff"),
			}, problem)
		},
	},
}

// List returns metadata for every registered algorithm, in registry order.
func List() []Info {
	out := make([]Info, len(registry))
	for i, e := range registry {
		out[i] = e.info
	}
	return out
}

// Lookup returns the metadata registered under id.
func Lookup(id string) (Info, bool) {
	for _, e := range registry {
		if strings.EqualFold(e.info.ID, id) {
			return e.info, true
		}
	}
	return Info{}, false
}

// New builds the single-objective algorithm registered under id.
func New(id string, cfg Config, params Params, problem framework.Problem) (Optimizer, error) {
	for _, e := range registry {
		if !strings.EqualFold(e.info.ID, id) {
			continue
		}
		if e.build == nil {
			return nil, fmt.Errorf("%w: %s is multi-objective", ErrObjectiveMismatch, e.info.ID)
		}
		return e.build(cfg, params, problem), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
}

// NewMulti builds the multi-objective algorithm registered under id.
func NewMulti(id string, cfg MultiConfig, params Params, problem framework.Problem) (MultiObjective, error) {
	for _, e := range registry {
		if !strings.EqualFold(e.info.ID, id) {
			continue
		}
		if e.buildFront == nil {
			return nil, fmt.Errorf("%w: %s is single-objective", ErrObjectiveMismatch, e.info.ID)
		}
		return e.buildFront(cfg, params, problem), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
}
