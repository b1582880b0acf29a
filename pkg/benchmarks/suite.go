package benchmarks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/evolab/metabench/pkg/algorithms"
	"github.com/evolab/metabench/pkg/framework"
	"github.com/evolab/metabench/pkg/util"
)

// Suite runs one multi-objective algorithm across a set of benchmark
// problems and reports front quality per problem.
type Suite struct {
	problems  []framework.Problem
	algorithm string
	cfg       algorithms.MultiConfig
	params    algorithms.Params
	seed      uint64
}

// Report is the outcome of one suite problem. IGD is -1 when the problem has
// no analytic true front to measure against.
type Report struct {
	Problem     string  `json:"problem"`
	FrontSize   int     `json:"frontSize"`
	IGD         float64 `json:"igd"`
	Evaluations int     `json:"evaluations"`
	PlotFile    string  `json:"plotFile,omitempty"`
}

// NewSuite creates a suite driving the named multi-objective algorithm.
func NewSuite(algorithm string, cfg algorithms.MultiConfig, params algorithms.Params, seed uint64) *Suite {
	return &Suite{
		algorithm: algorithm,
		cfg:       cfg,
		params:    params,
		seed:      seed,
	}
}

// AddProblem adds a problem to the suite.
func (s *Suite) AddProblem(p framework.Problem) {
	s.problems = append(s.problems, p)
}

// AddStandardProblems adds the common benchmark problems.
func (s *Suite) AddStandardProblems() {
	// ZDT problems with 30 variables (standard)
	s.AddProblem(NewZDT1(30))
	s.AddProblem(NewZDT2(30))
	s.AddProblem(NewZDT3(30))

	// DTLZ problems
	// 2 objectives, 7 variables (M + k - 1, where k=5 for DTLZ1)
	s.AddProblem(NewDTLZ1(7, 2))
	// 2 objectives, 12 variables (M + k - 1, where k=10 for DTLZ2)
	s.AddProblem(NewDTLZ2(12, 2))

	// 3 objectives versions
	s.AddProblem(NewDTLZ1(8, 3))
	s.AddProblem(NewDTLZ2(13, 3))
}

// Run executes the suite. When outputDir is non-empty, plots for 2-objective
// problems are written there. Each problem runs with its own seed derived
// from the suite seed, so reports are reproducible problem by problem.
func (s *Suite) Run(ctx context.Context, outputDir string) ([]Report, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", s.algorithm)

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	reports := make([]Report, 0, len(s.problems))
	for i, problem := range s.problems {
		logger.V(2).Info("running problem", "problem", problem.Name())

		driver, err := algorithms.NewMulti(s.algorithm, s.cfg, s.params, problem)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(s.seed + uint64(i)))
		result, err := driver.RunFront(ctx, rng)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", s.algorithm, problem.Name(), err)
		}

		front := make([]framework.ObjectiveSpacePoint, len(result.Objectives))
		for j, p := range result.Objectives {
			front[j] = p
		}

		report := Report{
			Problem:     problem.Name(),
			FrontSize:   len(front),
			IGD:         -1,
			Evaluations: result.Evaluations,
		}

		if trueFront := problem.TrueParetoFront(500); trueFront != nil {
			report.IGD = IGD(front, trueFront)
		}

		if outputDir != "" && len(problem.ObjectiveFuncs()) == 2 {
			plotFile := filepath.Join(outputDir,
				fmt.Sprintf("%s_%s_results.html", problem.Name(), s.algorithm))
			if err := util.PlotFront(front, problem, s.algorithm, plotFile); err != nil {
				logger.Error(err, "failed to plot results", "problem", problem.Name())
			} else {
				report.PlotFile = plotFile
			}
		}

		logger.V(2).Info("problem complete",
			"problem", problem.Name(), "frontSize", report.FrontSize, "igd", report.IGD)
		reports = append(reports, report)
	}

	return reports, nil
}

// IGD is the inverted generational distance: the average distance from each
// true front point to its nearest obtained point. Distances stay squared to
// save computation, matching how the thresholds are calibrated.
func IGD(obtained, trueFront []framework.ObjectiveSpacePoint) float64 {
	igd := 0.0
	for _, truePoint := range trueFront {
		minDist := 1e10
		for _, obtPoint := range obtained {
			dist := squaredDistance(truePoint, obtPoint)
			if dist < minDist {
				minDist = dist
			}
		}
		igd += minDist
	}
	return igd / float64(len(trueFront))
}

func squaredDistance(a, b framework.ObjectiveSpacePoint) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
