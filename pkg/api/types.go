// Package api defines the serializable types shared by the CLI, the runner
// and result files. Field names follow the platform's JSON conventions.
package api

// AlgorithmConfig carries the tunable parameters of one optimization run.
type AlgorithmConfig struct {
	PopulationSize int `json:"populationSize,omitempty"`
	MaxIterations  int `json:"maxIterations,omitempty"`

	// ArchiveSize, EvictionPolicy and DeduplicateObjectives apply to
	// multi-objective algorithms only and are ignored by the rest.
	ArchiveSize           int    `json:"archiveSize,omitempty"`
	EvictionPolicy        string `json:"evictionPolicy,omitempty"`
	DeduplicateObjectives bool   `json:"deduplicateObjectives,omitempty"`

	// Params carries algorithm-specific parameters keyed by their
	// paramSchema names, e.g. crossoverProbability for NSGA-II.
	Params map[string]float64 `json:"params,omitempty"`

	// InitialSolutions warm-starts the population. Vectors must match the
	// problem dimension.
	InitialSolutions [][]float64 `json:"initialSolutions,omitempty"`
}

// ProblemSpec selects the objective function for a run. The id is resolved
// in the benchmark catalog; dimension 0 keeps the catalog default.
type ProblemSpec struct {
	ID        string `json:"id"`
	Type      string `json:"type,omitempty"`
	Dimension int    `json:"dimension,omitempty"`
}

// ProblemTypeBenchmark is the only supported problem type.
const ProblemTypeBenchmark = "benchmark"

// ResultMetadata describes how an OptimizationResult was produced. Seed is
// the generator seed of the run; replaying with the same seed and config
// reproduces the result exactly.
type ResultMetadata struct {
	Algorithm  string          `json:"algorithm"`
	Version    string          `json:"version"`
	Iterations int             `json:"iterations"`
	Seed       uint64          `json:"seed"`
	Config     AlgorithmConfig `json:"config"`
	Timestamp  string          `json:"timestamp,omitempty"`
}

// OptimizationResult is the outcome of one run. ElapsedTime is wall-clock
// seconds. For multi-objective algorithms ParetoFront and ParetoSet hold the
// archive contents and BestSolution describes the front point with the
// smallest first objective.
type OptimizationResult struct {
	BestSolution     []float64      `json:"bestSolution"`
	BestFitness      float64        `json:"bestFitness"`
	ConvergenceCurve []float64      `json:"convergenceCurve"`
	TotalEvaluations int            `json:"totalEvaluations"`
	ElapsedTime      float64        `json:"elapsedTime"`
	Metadata         ResultMetadata `json:"metadata"`

	ParetoFront [][]float64 `json:"paretoFront,omitempty"`
	ParetoSet   [][]float64 `json:"paretoSet,omitempty"`
}

// ComparisonStatistics aggregates fitness and timing across algorithms.
// Rankings orders algorithms by mean fitness, rank 1 being the best.
type ComparisonStatistics struct {
	MeanFitness map[string]float64 `json:"meanFitness"`
	StdFitness  map[string]float64 `json:"stdFitness"`
	MeanTime    map[string]float64 `json:"meanTime"`
	Rankings    map[string]int     `json:"rankings"`
}

// ComparisonResult is the outcome of running several algorithms on the same
// problem. Results holds the best run per algorithm.
type ComparisonResult struct {
	Algorithms   []string                      `json:"algorithms"`
	FunctionName string                        `json:"functionName"`
	Results      map[string]OptimizationResult `json:"results"`
	Statistics   ComparisonStatistics          `json:"statistics"`
}

// Experiment is the loadable description of a comparison run.
type Experiment struct {
	Name             string          `json:"name,omitempty"`
	Algorithms       []string        `json:"algorithms"`
	Problem          ProblemSpec     `json:"problem"`
	Config           AlgorithmConfig `json:"config,omitempty"`
	RunsPerAlgorithm int             `json:"runsPerAlgorithm,omitempty"`
	Seed             uint64          `json:"seed,omitempty"`
	OutputDir        string          `json:"outputDir,omitempty"`
}
