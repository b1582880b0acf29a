package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/evolab/metabench/pkg/algorithms"
	"github.com/evolab/metabench/pkg/benchmarks"
)

func newListCommand(out io.Writer) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:       "list {algorithms|functions}",
		Short:     "List registered algorithms or benchmark functions",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"algorithms", "functions", "benchmarks"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "algorithms" {
				return listAlgorithms(out, asJSON)
			}
			// "benchmarks" is accepted as an alias for "functions".
			return listFunctions(out, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}

func listAlgorithms(out io.Writer, asJSON bool) error {
	infos := algorithms.List()
	if asJSON {
		return writeJSON(out, "", infos)
	}
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tOBJECTIVES\tYEAR\tFULL NAME")
	for _, info := range infos {
		arity := "single"
		if info.MultiObjective {
			arity = "multi"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			info.ID, info.Category, arity, info.Reference.Year, info.FullName)
	}
	return w.Flush()
}

func listFunctions(out io.Writer, asJSON bool) error {
	infos := benchmarks.List()
	if asJSON {
		return writeJSON(out, "", infos)
	}
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tDIM\tOBJECTIVES\tBOUNDS")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t[%g, %g]\n",
			info.ID, info.Name, info.Kind, info.Dimension, info.Objectives,
			info.LowerBound, info.UpperBound)
	}
	return w.Flush()
}
