package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/evolab/metabench/pkg/api"
	"github.com/evolab/metabench/pkg/runner"
	"github.com/evolab/metabench/pkg/util"
)

type compareOptions struct {
	experimentFile string
	output         string
	plotDir        string
}

func newCompareCommand(out io.Writer) *cobra.Command {
	o := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run an experiment comparing several algorithms on one function",
		Long: `Compare loads a YAML experiment file, runs every listed algorithm the
configured number of times with derived seeds, and reports per-algorithm
statistics and rankings.`,
		Example: `  metabench compare --experiment experiments/zdt1.yaml
  metabench compare -f exp.yaml -o comparison.json --plot charts/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := api.LoadExperiment(o.experimentFile)
			if err != nil {
				return err
			}
			result, err := runner.Compare(cmd.Context(), exp)
			if err != nil {
				return err
			}
			if o.plotDir != "" {
				if err := o.plot(result); err != nil {
					return err
				}
			}
			return writeJSON(out, o.output, result)
		},
	}

	o.AddFlags(cmd.Flags())
	cobra.CheckErr(cmd.MarkFlagRequired("experiment"))
	return cmd
}

func (o *compareOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.experimentFile, "experiment", "f", "", "path to the experiment YAML file")
	fs.StringVarP(&o.output, "output", "o", "", "write the comparison JSON to this file instead of stdout")
	fs.StringVar(&o.plotDir, "plot", "", "write a convergence chart into this directory")
}

// plot renders the best run's convergence curve of every algorithm into one
// chart.
func (o *compareOptions) plot(result *api.ComparisonResult) error {
	if err := os.MkdirAll(o.plotDir, 0755); err != nil {
		return err
	}
	curves := make(map[string][]float64, len(result.Results))
	for id, res := range result.Results {
		curves[id] = res.ConvergenceCurve
	}
	path := filepath.Join(o.plotDir, fmt.Sprintf("%s_convergence.html", result.FunctionName))
	return util.PlotConvergence(curves, fmt.Sprintf("%s convergence", result.FunctionName), path)
}
