package runner

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/api"
	"github.com/evolab/metabench/pkg/benchmarks"
)

// Compare runs every algorithm named by the experiment against its problem
// and aggregates the results. Runs execute concurrently on a bounded worker
// pool; each run draws its own seed derived from the experiment seed, so the
// outcome does not depend on scheduling order.
func Compare(ctx context.Context, exp *api.Experiment) (*api.ComparisonResult, error) {
	api.SetDefaults_Experiment(exp)
	if err := api.ValidateExperiment(exp); err != nil {
		return nil, err
	}
	problem, err := benchmarks.New(exp.Problem.ID, exp.Problem.Dimension)
	if err != nil {
		return nil, err
	}

	logger := klog.FromContext(ctx).WithValues("problem", problem.Name())
	runs := exp.RunsPerAlgorithm
	jobs := len(exp.Algorithms) * runs
	results := make([]*api.OptimizationResult, jobs)
	errs := make([]error, jobs)

	workers := runtime.GOMAXPROCS(0)
	if workers > jobs {
		workers = jobs
	}
	logger.V(2).Info("starting comparison",
		"algorithms", exp.Algorithms, "runsPerAlgorithm", runs, "workers", workers)

	jobCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				id := exp.Algorithms[j/runs]
				results[j], errs[j] = Run(ctx, id, problem, exp.Config, exp.Seed+uint64(j))
			}
		}()
	}
	for j := 0; j < jobs; j++ {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	stats := api.ComparisonStatistics{
		MeanFitness: make(map[string]float64, len(exp.Algorithms)),
		StdFitness:  make(map[string]float64, len(exp.Algorithms)),
		MeanTime:    make(map[string]float64, len(exp.Algorithms)),
		Rankings:    make(map[string]int, len(exp.Algorithms)),
	}
	best := make(map[string]api.OptimizationResult, len(exp.Algorithms))
	for a, id := range exp.Algorithms {
		fitness := make([]float64, runs)
		elapsed := make([]float64, runs)
		bestRun := results[a*runs]
		for r := 0; r < runs; r++ {
			res := results[a*runs+r]
			fitness[r] = res.BestFitness
			elapsed[r] = res.ElapsedTime
			if res.BestFitness < bestRun.BestFitness {
				bestRun = res
			}
		}
		stats.MeanFitness[id] = stat.Mean(fitness, nil)
		stats.MeanTime[id] = stat.Mean(elapsed, nil)
		if runs > 1 {
			stats.StdFitness[id] = stat.StdDev(fitness, nil)
		} else {
			// StdDev of a single sample is NaN.
			stats.StdFitness[id] = 0
		}
		best[id] = *bestRun
	}

	// Rank by mean fitness, rank 1 being the best. Ties keep the
	// experiment's declaration order.
	order := make([]string, len(exp.Algorithms))
	copy(order, exp.Algorithms)
	sort.SliceStable(order, func(i, j int) bool {
		return stats.MeanFitness[order[i]] < stats.MeanFitness[order[j]]
	})
	for rank, id := range order {
		stats.Rankings[id] = rank + 1
	}

	logger.V(2).Info("comparison complete", "rankings", stats.Rankings)
	return &api.ComparisonResult{
		Algorithms:   exp.Algorithms,
		FunctionName: problem.Name(),
		Results:      best,
		Statistics:   stats,
	}, nil
}
