package runner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/evolab/metabench/pkg/algorithms"
	"github.com/evolab/metabench/pkg/api"
	"github.com/evolab/metabench/pkg/benchmarks"
	"github.com/evolab/metabench/pkg/runner"
)

func TestRunSingleObjective(t *testing.T) {
	problem, err := benchmarks.New("F1", 10)
	if err != nil {
		t.Fatalf("benchmarks.New: %v", err)
	}
	cfg := api.AlgorithmConfig{PopulationSize: 20, MaxIterations: 50}

	res, err := runner.Run(context.Background(), "GWO", problem, cfg, 42)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := len(res.ConvergenceCurve), 50; got != want {
		t.Errorf("curve length = %d, want %d", got, want)
	}
	if got, want := res.TotalEvaluations, 20*51; got != want {
		t.Errorf("TotalEvaluations = %d, want %d", got, want)
	}
	if res.BestFitness != res.ConvergenceCurve[len(res.ConvergenceCurve)-1] {
		t.Errorf("BestFitness %v does not match the curve tail %v",
			res.BestFitness, res.ConvergenceCurve[len(res.ConvergenceCurve)-1])
	}
	if res.ParetoFront != nil {
		t.Errorf("single-objective run should not report a Pareto front")
	}
	if res.ElapsedTime <= 0 {
		t.Errorf("ElapsedTime = %v, want > 0", res.ElapsedTime)
	}

	meta := res.Metadata
	if meta.Algorithm != "GWO" {
		t.Errorf("metadata algorithm = %q, want GWO", meta.Algorithm)
	}
	if meta.Seed != 42 {
		t.Errorf("metadata seed = %d, want 42", meta.Seed)
	}
	if meta.Version != algorithms.Version {
		t.Errorf("metadata version = %q, want %q", meta.Version, algorithms.Version)
	}
	if meta.Iterations != 50 {
		t.Errorf("metadata iterations = %d, want 50", meta.Iterations)
	}
	if meta.Config.PopulationSize != 20 {
		t.Errorf("metadata config population = %d, want 20", meta.Config.PopulationSize)
	}
	if _, err := time.Parse(time.RFC3339, meta.Timestamp); err != nil {
		t.Errorf("metadata timestamp %q is not RFC3339: %v", meta.Timestamp, err)
	}
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	run := func(seed uint64) *api.OptimizationResult {
		p, err := benchmarks.New("F9", 8)
		if err != nil {
			t.Fatalf("benchmarks.New: %v", err)
		}
		res, err := runner.Run(context.Background(), "WOA", p, api.AlgorithmConfig{
			PopulationSize: 15,
			MaxIterations:  40,
		}, seed)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		// Wall-clock fields differ between runs.
		res.ElapsedTime = 0
		res.Metadata.Timestamp = ""
		return res
	}

	if diff := cmp.Diff(run(99), run(99)); diff != "" {
		t.Errorf("same seed produced different results (-first +second):\n%s", diff)
	}
	first, other := run(99), run(100)
	if first.BestFitness == other.BestFitness {
		t.Errorf("different seeds produced identical best fitness %v", first.BestFitness)
	}
}

func TestRunMultiObjective(t *testing.T) {
	problem, err := benchmarks.New("ZDT1", 10)
	if err != nil {
		t.Fatalf("benchmarks.New: %v", err)
	}
	cfg := api.AlgorithmConfig{PopulationSize: 40, MaxIterations: 60, ArchiveSize: 50}

	res, err := runner.Run(context.Background(), "NSGA-II", problem, cfg, 7)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.ParetoFront) == 0 {
		t.Fatalf("expected a non-empty Pareto front")
	}
	if len(res.ParetoFront) != len(res.ParetoSet) {
		t.Fatalf("front and set sizes differ: %d vs %d", len(res.ParetoFront), len(res.ParetoSet))
	}

	minF1 := res.ParetoFront[0][0]
	for _, objs := range res.ParetoFront {
		if len(objs) != 2 {
			t.Fatalf("expected 2 objectives per point, got %d", len(objs))
		}
		if objs[0] < minF1 {
			minF1 = objs[0]
		}
	}
	if res.BestFitness != minF1 {
		t.Errorf("BestFitness = %v, want the smallest first objective %v", res.BestFitness, minF1)
	}
	if got, want := len(res.BestSolution), problem.Dimension(); got != want {
		t.Errorf("BestSolution dimension = %d, want %d", got, want)
	}
}

func TestRunReportsProgress(t *testing.T) {
	problem, err := benchmarks.New("F1", 5)
	if err != nil {
		t.Fatalf("benchmarks.New: %v", err)
	}
	var calls int
	var lastTotal int
	_, err = runner.Run(context.Background(), "GWO", problem, api.AlgorithmConfig{
		PopulationSize: 10,
		MaxIterations:  20,
	}, 3, runner.WithProgress(func(iteration, total int, best float64) {
		calls++
		lastTotal = total
		if iteration != calls {
			t.Errorf("iteration %d reported out of order at call %d", iteration, calls)
		}
	}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 20 {
		t.Errorf("progress called %d times, want 20", calls)
	}
	if lastTotal != 20 {
		t.Errorf("progress total = %d, want 20", lastTotal)
	}
}

func TestRunUnknownAlgorithm(t *testing.T) {
	problem, err := benchmarks.New("F1", 0)
	if err != nil {
		t.Fatalf("benchmarks.New: %v", err)
	}
	_, err = runner.Run(context.Background(), "SA", problem, api.AlgorithmConfig{}, 1)
	if !errors.Is(err, algorithms.ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	problem, err := benchmarks.New("F1", 0)
	if err != nil {
		t.Fatalf("benchmarks.New: %v", err)
	}
	_, err = runner.Run(context.Background(), "GWO", problem, api.AlgorithmConfig{PopulationSize: 1}, 1)
	if err == nil {
		t.Fatalf("expected a validation error for population size 1")
	}
}
