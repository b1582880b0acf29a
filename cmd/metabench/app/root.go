// Package app wires the metabench command line interface.
package app

import (
	"encoding/json"
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// NewMetabenchCommand builds the root command with every subcommand attached.
// Logging verbosity is controlled through the klog flags, e.g. -v=2 for run
// summaries and -v=3 for per-iteration traces.
func NewMetabenchCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metabench",
		Short: "Benchmark and compare metaheuristic optimization algorithms",
		Long: `metabench runs nature-inspired metaheuristics against classical benchmark
functions, compares them across repeated seeded runs, and renders Pareto
fronts and convergence curves as HTML charts.`,
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newListCommand(out),
		newRunCommand(out),
		newCompareCommand(out),
		newSuiteCommand(out),
		newVersionCommand(out),
	)
	return cmd
}

// writeJSON renders v indented, either to path or to out when path is empty.
func writeJSON(out io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
