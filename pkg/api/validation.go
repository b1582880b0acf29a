package api

import (
	"fmt"

	"github.com/evolab/metabench/pkg/archive"
)

// ValidateAlgorithmConfig checks ranges after defaulting.
func ValidateAlgorithmConfig(cfg *AlgorithmConfig) error {
	if cfg.PopulationSize < 2 {
		return fmt.Errorf("populationSize must be at least 2, got %d", cfg.PopulationSize)
	}
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("maxIterations must be at least 1, got %d", cfg.MaxIterations)
	}
	if cfg.ArchiveSize < 1 {
		return fmt.Errorf("archiveSize must be at least 1, got %d", cfg.ArchiveSize)
	}
	switch archive.EvictionPolicy(cfg.EvictionPolicy) {
	case "", archive.EvictStaleRanks, archive.EvictRecomputeRanks:
	default:
		return fmt.Errorf("evictionPolicy must be %q or %q, got %q",
			archive.EvictStaleRanks, archive.EvictRecomputeRanks, cfg.EvictionPolicy)
	}
	for i, sol := range cfg.InitialSolutions {
		if len(sol) == 0 {
			return fmt.Errorf("initialSolutions[%d] is empty", i)
		}
	}
	return nil
}

// ValidateProblemSpec checks the problem selector.
func ValidateProblemSpec(spec *ProblemSpec) error {
	if spec.ID == "" {
		return fmt.Errorf("problem id must not be empty")
	}
	if spec.Type != ProblemTypeBenchmark {
		return fmt.Errorf("problem type must be %q, got %q", ProblemTypeBenchmark, spec.Type)
	}
	if spec.Dimension < 0 {
		return fmt.Errorf("problem dimension must not be negative, got %d", spec.Dimension)
	}
	return nil
}

// ValidateExperiment checks a defaulted experiment.
func ValidateExperiment(exp *Experiment) error {
	if len(exp.Algorithms) == 0 {
		return fmt.Errorf("experiment must name at least one algorithm")
	}
	seen := make(map[string]bool, len(exp.Algorithms))
	for _, id := range exp.Algorithms {
		if id == "" {
			return fmt.Errorf("algorithm ids must not be empty")
		}
		if seen[id] {
			return fmt.Errorf("algorithm %q listed twice", id)
		}
		seen[id] = true
	}
	if exp.RunsPerAlgorithm < 1 || exp.RunsPerAlgorithm > 100 {
		return fmt.Errorf("runsPerAlgorithm must be between 1 and 100, got %d", exp.RunsPerAlgorithm)
	}
	if err := ValidateProblemSpec(&exp.Problem); err != nil {
		return err
	}
	return ValidateAlgorithmConfig(&exp.Config)
}
