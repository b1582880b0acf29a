package api

// Defaults shared with the algorithm drivers.
const (
	DefaultPopulationSize   = 30
	DefaultMaxIterations    = 500
	DefaultArchiveSize      = 100
	DefaultRunsPerAlgorithm = 1
)

// SetDefaults_AlgorithmConfig fills in zero fields.
func SetDefaults_AlgorithmConfig(cfg *AlgorithmConfig) {
	if cfg.PopulationSize == 0 {
		cfg.PopulationSize = DefaultPopulationSize
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.ArchiveSize == 0 {
		cfg.ArchiveSize = DefaultArchiveSize
	}
}

// SetDefaults_ProblemSpec fills in zero fields. The dimension is left alone:
// zero means the benchmark catalog default.
func SetDefaults_ProblemSpec(spec *ProblemSpec) {
	if spec.Type == "" {
		spec.Type = ProblemTypeBenchmark
	}
}

// SetDefaults_Experiment fills in zero fields, recursing into the nested
// config and problem spec.
func SetDefaults_Experiment(exp *Experiment) {
	if exp.RunsPerAlgorithm == 0 {
		exp.RunsPerAlgorithm = DefaultRunsPerAlgorithm
	}
	SetDefaults_AlgorithmConfig(&exp.Config)
	SetDefaults_ProblemSpec(&exp.Problem)
}
