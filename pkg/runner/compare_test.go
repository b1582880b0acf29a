package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evolab/metabench/pkg/api"
	"github.com/evolab/metabench/pkg/benchmarks"
	"github.com/evolab/metabench/pkg/runner"
)

func sphereExperiment(runs int) *api.Experiment {
	return &api.Experiment{
		Algorithms: []string{"GWO", "WOA", "ALO"},
		Problem:    api.ProblemSpec{ID: "F1", Dimension: 5},
		Config: api.AlgorithmConfig{
			PopulationSize: 15,
			MaxIterations:  30,
		},
		RunsPerAlgorithm: runs,
		Seed:             7,
	}
}

func TestCompareRanksAlgorithms(t *testing.T) {
	cmpRes, err := runner.Compare(context.Background(), sphereExperiment(3))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmpRes.FunctionName != "Sphere" {
		t.Errorf("FunctionName = %q, want Sphere", cmpRes.FunctionName)
	}
	if got, want := len(cmpRes.Results), 3; got != want {
		t.Fatalf("len(Results) = %d, want %d", got, want)
	}

	seenRanks := make(map[int]string)
	for _, id := range cmpRes.Algorithms {
		stats := cmpRes.Statistics
		mean, ok := stats.MeanFitness[id]
		if !ok {
			t.Fatalf("no mean fitness recorded for %s", id)
		}
		if mean < 0 {
			t.Errorf("%s: mean fitness %v is negative on Sphere", id, mean)
		}
		if std := stats.StdFitness[id]; std < 0 {
			t.Errorf("%s: negative std %v", id, std)
		}
		if stats.MeanTime[id] <= 0 {
			t.Errorf("%s: mean time %v, want > 0", id, stats.MeanTime[id])
		}

		rank := stats.Rankings[id]
		if rank < 1 || rank > 3 {
			t.Fatalf("%s: rank %d out of range", id, rank)
		}
		if prev, dup := seenRanks[rank]; dup {
			t.Fatalf("rank %d assigned to both %s and %s", rank, prev, id)
		}
		seenRanks[rank] = id

		// The reported run is the best of the batch, so it cannot be
		// worse than the batch mean.
		if best := cmpRes.Results[id].BestFitness; best > mean {
			t.Errorf("%s: best run fitness %v exceeds mean %v", id, best, mean)
		}
	}

	// Rank 1 must hold the smallest mean fitness.
	first := seenRanks[1]
	for _, id := range cmpRes.Algorithms {
		if cmpRes.Statistics.MeanFitness[id] < cmpRes.Statistics.MeanFitness[first] {
			t.Errorf("%s has better mean than rank-1 %s", id, first)
		}
	}
}

func TestCompareIsDeterministic(t *testing.T) {
	first, err := runner.Compare(context.Background(), sphereExperiment(2))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	second, err := runner.Compare(context.Background(), sphereExperiment(2))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if diff := cmp.Diff(first.Statistics.MeanFitness, second.Statistics.MeanFitness); diff != "" {
		t.Errorf("mean fitness changed between identical experiments (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Statistics.Rankings, second.Statistics.Rankings); diff != "" {
		t.Errorf("rankings changed between identical experiments (-first +second):\n%s", diff)
	}
	for id, res := range first.Results {
		if got := second.Results[id].BestFitness; got != res.BestFitness {
			t.Errorf("%s: best fitness %v vs %v across identical experiments", id, res.BestFitness, got)
		}
	}
}

func TestCompareSingleRunHasZeroStd(t *testing.T) {
	res, err := runner.Compare(context.Background(), sphereExperiment(1))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	for id, std := range res.Statistics.StdFitness {
		if std != 0 {
			t.Errorf("%s: std = %v for a single run, want 0", id, std)
		}
	}
}

func TestCompareMixedObjectiveArity(t *testing.T) {
	exp := &api.Experiment{
		Algorithms: []string{"NSGA-II", "MOGWO"},
		Problem:    api.ProblemSpec{ID: "ZDT1", Dimension: 10},
		Config: api.AlgorithmConfig{
			PopulationSize: 20,
			MaxIterations:  25,
			ArchiveSize:    30,
		},
		RunsPerAlgorithm: 2,
		Seed:             11,
	}
	res, err := runner.Compare(context.Background(), exp)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	for _, id := range exp.Algorithms {
		best := res.Results[id]
		if len(best.ParetoFront) == 0 {
			t.Errorf("%s: best run carries no Pareto front", id)
		}
	}
}

func TestCompareUnknownProblem(t *testing.T) {
	exp := sphereExperiment(1)
	exp.Problem.ID = "F999"
	_, err := runner.Compare(context.Background(), exp)
	if !errors.Is(err, benchmarks.ErrUnknownBenchmark) {
		t.Errorf("err = %v, want ErrUnknownBenchmark", err)
	}
}

func TestCompareHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runner.Compare(ctx, sphereExperiment(2))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
