package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/evolab/metabench/pkg/api"
	"github.com/evolab/metabench/pkg/benchmarks"
	"github.com/evolab/metabench/pkg/framework"
	"github.com/evolab/metabench/pkg/runner"
	"github.com/evolab/metabench/pkg/util"
)

type runOptions struct {
	algorithm  string
	function   string
	dimension  int
	population int
	iterations int
	archive    int
	eviction   string
	dedup      bool
	params     map[string]string
	seed       uint64
	output     string
	plotDir    string
}

func newRunCommand(out io.Writer) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one algorithm against one benchmark function",
		Example: `  metabench run --algorithm GWO --function F1
  metabench run --algorithm NSGA-II --function ZDT1 --plot charts/
  metabench run --algorithm NSGA-II --function ZDT1 --param crossoverProbability=0.8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), out)
		},
	}

	o.AddFlags(cmd.Flags())
	cobra.CheckErr(cmd.MarkFlagRequired("algorithm"))
	cobra.CheckErr(cmd.MarkFlagRequired("function"))
	return cmd
}

func (o *runOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.algorithm, "algorithm", "a", "", "algorithm id, see 'metabench list algorithms'")
	fs.StringVarP(&o.function, "function", "f", "", "benchmark function id, see 'metabench list functions'")
	fs.IntVarP(&o.dimension, "dimension", "d", 0, "problem dimension, 0 keeps the catalog default")
	fs.IntVar(&o.population, "population", 0, "population size")
	fs.IntVar(&o.iterations, "iterations", 0, "iteration budget")
	fs.IntVar(&o.archive, "archive-size", 0, "Pareto archive capacity for multi-objective algorithms")
	fs.StringVar(&o.eviction, "eviction", "", "archive eviction policy: StaleRanks or RecomputeRanks")
	fs.BoolVar(&o.dedup, "dedup-objectives", false, "drop archive candidates with duplicate objective vectors")
	fs.StringToStringVar(&o.params, "param", nil, "algorithm-specific parameter as name=value, repeatable")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed, equal seeds reproduce runs exactly")
	fs.StringVarP(&o.output, "output", "o", "", "write the result JSON to this file instead of stdout")
	fs.StringVar(&o.plotDir, "plot", "", "write HTML charts into this directory")
}

func (o *runOptions) run(ctx context.Context, out io.Writer) error {
	params, err := parseParams(o.params)
	if err != nil {
		return err
	}
	problem, err := benchmarks.New(o.function, o.dimension)
	if err != nil {
		return err
	}
	cfg := api.AlgorithmConfig{
		PopulationSize:        o.population,
		MaxIterations:         o.iterations,
		ArchiveSize:           o.archive,
		EvictionPolicy:        o.eviction,
		DeduplicateObjectives: o.dedup,
		Params:                params,
	}

	res, err := runner.Run(ctx, o.algorithm, problem, cfg, o.seed)
	if err != nil {
		return err
	}
	if o.plotDir != "" {
		if err := o.plot(problem, res); err != nil {
			return err
		}
	}
	return writeJSON(out, o.output, res)
}

func (o *runOptions) plot(problem framework.Problem, res *api.OptimizationResult) error {
	if err := os.MkdirAll(o.plotDir, 0755); err != nil {
		return err
	}
	curvePath := filepath.Join(o.plotDir, fmt.Sprintf("%s_%s_convergence.html", problem.Name(), res.Metadata.Algorithm))
	curves := map[string][]float64{res.Metadata.Algorithm: res.ConvergenceCurve}
	title := fmt.Sprintf("%s on %s", res.Metadata.Algorithm, problem.Name())
	if err := util.PlotConvergence(curves, title, curvePath); err != nil {
		return err
	}
	if len(res.ParetoFront) == 0 || len(res.ParetoFront[0]) != 2 {
		return nil
	}
	front := make([]framework.ObjectiveSpacePoint, len(res.ParetoFront))
	for i, objs := range res.ParetoFront {
		front[i] = objs
	}
	frontPath := filepath.Join(o.plotDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), res.Metadata.Algorithm))
	return util.PlotFront(front, problem, res.Metadata.Algorithm, frontPath)
}

// parseParams converts --param name=value pairs into algorithm parameters.
func parseParams(raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := make(map[string]float64, len(raw))
	for name, value := range raw {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("param %s: %q is not a number", name, value)
		}
		params[name] = v
	}
	return params, nil
}
