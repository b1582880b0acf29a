package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evolab/metabench/pkg/algorithms"
)

func newVersionCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the engine version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "metabench %s\n", algorithms.Version)
		},
	}
}
