package benchmarks

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evolab/metabench/pkg/algorithms"
	"github.com/evolab/metabench/pkg/framework"
)

func TestSuiteStandardProblems(t *testing.T) {
	cfg := algorithms.MultiConfig{
		Config: algorithms.Config{
			PopulationSize: 60,
			MaxIterations:  80,
		},
		ArchiveSize: 100,
	}

	suite := NewSuite(algorithms.NSGA2Name, cfg, nil, 42)
	suite.AddStandardProblems()

	outputDir := t.TempDir()
	reports, err := suite.Run(context.Background(), outputDir)
	if err != nil {
		t.Fatalf("suite run: %v", err)
	}

	if len(reports) != 7 {
		t.Fatalf("expected 7 reports, got %d", len(reports))
	}
	noFront := 0
	for _, r := range reports {
		if r.FrontSize == 0 {
			t.Errorf("%s: empty front", r.Problem)
		}
		if r.Evaluations == 0 {
			t.Errorf("%s: no evaluations recorded", r.Problem)
		}
		if r.IGD == -1 {
			noFront++
		}
		if r.PlotFile != "" {
			if _, err := os.Stat(r.PlotFile); err != nil {
				t.Errorf("%s: plot file missing: %v", r.Problem, err)
			}
		}
	}
	// Only the 3-objective DTLZ1 lacks an analytic front to measure against.
	if noFront != 1 {
		t.Errorf("%d reports without IGD, want 1", noFront)
	}

	// 3-objective problems cannot be plotted.
	for _, r := range reports {
		switch r.Problem {
		case "ZDT1", "ZDT2", "ZDT3":
			if r.PlotFile == "" {
				t.Errorf("%s: expected a plot file", r.Problem)
			}
		}
	}
}

func TestIndividualBenchmarks(t *testing.T) {
	tests := []struct {
		name    string
		problem framework.Problem
		maxIGD  float64
	}{
		{
			name:    "ZDT1",
			problem: NewZDT1(30),
			maxIGD:  0.1,
		},
		{
			name:    "ZDT2",
			problem: NewZDT2(30),
			maxIGD:  0.1,
		},
	}

	cfg := algorithms.MultiConfig{
		Config: algorithms.Config{
			PopulationSize: 100,
			MaxIterations:  250,
		},
		ArchiveSize: 100,
	}
	params := algorithms.Params{
		"crossoverProbability": 0.9,
		"mutationProbability":  1.0 / 30.0,
		"tournamentSize":       2,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite := NewSuite(algorithms.NSGA2Name, cfg, params, 7)
			suite.AddProblem(tt.problem)

			reports, err := suite.Run(context.Background(), "")
			if err != nil {
				t.Fatalf("suite run: %v", err)
			}
			r := reports[0]
			t.Logf("%s: front size %d, IGD = %.6f", tt.name, r.FrontSize, r.IGD)

			if r.IGD > tt.maxIGD {
				t.Errorf("%s: IGD %.6f exceeds threshold %.6f", tt.name, r.IGD, tt.maxIGD)
			}
		})
	}
}

func TestSuiteIsReproducible(t *testing.T) {
	cfg := algorithms.MultiConfig{
		Config:      algorithms.Config{PopulationSize: 30, MaxIterations: 30},
		ArchiveSize: 30,
	}

	run := func() []Report {
		suite := NewSuite(algorithms.MOGWOName, cfg, nil, 123)
		suite.AddProblem(NewZDT1(10))
		suite.AddProblem(NewZDT2(10))
		reports, err := suite.Run(context.Background(), "")
		if err != nil {
			t.Fatalf("suite run: %v", err)
		}
		return reports
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different reports (-first +second):\n%s", diff)
	}
}

func TestSuiteUnknownAlgorithm(t *testing.T) {
	suite := NewSuite("nope", algorithms.MultiConfig{}, nil, 1)
	suite.AddProblem(NewZDT1(10))

	if _, err := suite.Run(context.Background(), ""); !errors.Is(err, algorithms.ErrUnknownAlgorithm) {
		t.Errorf("got %v, want ErrUnknownAlgorithm", err)
	}
}

func TestIGDKnownValues(t *testing.T) {
	trueFront := []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}

	if got := IGD(trueFront, trueFront); got != 0 {
		t.Errorf("IGD of identical fronts = %v, want 0", got)
	}

	obtained := []framework.ObjectiveSpacePoint{{0.5, 0.5}}
	// Squared distance from each true point to (0.5, 0.5) is 0.5.
	if got := IGD(obtained, trueFront); got != 0.5 {
		t.Errorf("IGD = %v, want 0.5", got)
	}
}
