package commands

import (
	"fmt"

	"github.com/katalvlaran/sigdiff/nnls"
	"github.com/spf13/cobra"
)

var backendSummaries = map[nnls.Backend]string{
	nnls.ActiveSet:          "Lawson-Hanson active set (alias: scipy)",
	nnls.QuadraticProgram:   "accelerated projected gradient QP (alias: cvxpy)",
	nnls.PositiveRegression: "positive coordinate descent (alias: sklearn)",
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available NNLS backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("BACKENDS"))
			for _, b := range nnls.Backends() {
				fmt.Fprintf(out, "  %-12s %s\n", b, dimStyle.Render(backendSummaries[b]))
			}
		},
	}
}
