// Package runner executes optimization runs and comparison experiments,
// translating between the serializable api types and the algorithm drivers.
package runner

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/algorithms"
	"github.com/evolab/metabench/pkg/api"
	"github.com/evolab/metabench/pkg/archive"
	"github.com/evolab/metabench/pkg/framework"
)

// Option customizes a single run.
type Option func(*options)

type options struct {
	progress algorithms.ProgressFunc
}

// WithProgress registers a callback invoked once per iteration with the
// iteration number, the iteration budget and the best fitness so far.
func WithProgress(fn algorithms.ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// Run executes one run of the named algorithm on the problem, seeding the
// generator so repeated calls with the same seed reproduce the result bit for
// bit. The config is defaulted and validated before the run starts.
func Run(ctx context.Context, algorithmID string, problem framework.Problem, cfg api.AlgorithmConfig, seed uint64, opts ...Option) (*api.OptimizationResult, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	api.SetDefaults_AlgorithmConfig(&cfg)
	if err := api.ValidateAlgorithmConfig(&cfg); err != nil {
		return nil, err
	}
	info, ok := algorithms.Lookup(algorithmID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", algorithms.ErrUnknownAlgorithm, algorithmID)
	}

	// The drivers attach the algorithm name themselves.
	logger := klog.FromContext(ctx).WithValues("problem", problem.Name(), "seed", seed)
	rng := rand.New(rand.NewSource(seed))
	start := time.Now()

	var result *api.OptimizationResult
	if info.MultiObjective {
		driver, err := algorithms.NewMulti(info.ID, multiConfig(cfg, o.progress), cfg.Params, problem)
		if err != nil {
			return nil, err
		}
		front, err := driver.RunFront(klog.NewContext(ctx, logger), rng)
		if err != nil {
			return nil, err
		}
		result = fromFront(front)
	} else {
		driver, err := algorithms.New(info.ID, singleConfig(cfg, o.progress), cfg.Params, problem)
		if err != nil {
			return nil, err
		}
		run, err := driver.Run(klog.NewContext(ctx, logger), rng)
		if err != nil {
			return nil, err
		}
		result = &api.OptimizationResult{
			BestSolution:     run.BestSolution,
			BestFitness:      run.BestFitness,
			ConvergenceCurve: run.ConvergenceCurve,
			TotalEvaluations: run.Evaluations,
		}
	}

	result.ElapsedTime = time.Since(start).Seconds()
	result.Metadata = api.ResultMetadata{
		Algorithm:  info.ID,
		Version:    algorithms.Version,
		Iterations: cfg.MaxIterations,
		Seed:       seed,
		Config:     cfg,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	logger.V(2).Info("run complete",
		"algorithm", info.ID,
		"bestFitness", result.BestFitness,
		"evaluations", result.TotalEvaluations,
		"elapsedSeconds", result.ElapsedTime)
	return result, nil
}

func singleConfig(cfg api.AlgorithmConfig, progress algorithms.ProgressFunc) algorithms.Config {
	return algorithms.Config{
		PopulationSize:   cfg.PopulationSize,
		MaxIterations:    cfg.MaxIterations,
		InitialSolutions: cfg.InitialSolutions,
		Progress:         progress,
	}
}

func multiConfig(cfg api.AlgorithmConfig, progress algorithms.ProgressFunc) algorithms.MultiConfig {
	return algorithms.MultiConfig{
		Config:                singleConfig(cfg, progress),
		ArchiveSize:           cfg.ArchiveSize,
		Eviction:              archive.EvictionPolicy(cfg.EvictionPolicy),
		DeduplicateObjectives: cfg.DeduplicateObjectives,
	}
}

// fromFront summarizes a Pareto front as an OptimizationResult. BestSolution
// and BestFitness describe the front point with the smallest first objective
// so multi-objective runs remain comparable by a single number.
func fromFront(front *algorithms.FrontResult) *api.OptimizationResult {
	res := &api.OptimizationResult{
		ConvergenceCurve: front.ConvergenceCurve,
		TotalEvaluations: front.Evaluations,
		ParetoFront:      front.Objectives,
		ParetoSet:        front.Decisions,
	}
	best := -1
	for i, objs := range front.Objectives {
		if best < 0 || objs[0] < front.Objectives[best][0] {
			best = i
		}
	}
	if best >= 0 {
		res.BestSolution = front.Decisions[best]
		res.BestFitness = front.Objectives[best][0]
	}
	return res
}
