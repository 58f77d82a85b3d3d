package commands

import (
	"fmt"

	"github.com/katalvlaran/sigdiff/datagen"
	"github.com/katalvlaran/sigdiff/report"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		n      int
		seed   uint64
		noise  float64
		signed bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a random signal and reconstruct it",
		Long: `Draw X (min-shifted to 0), build D = X[i] - X[j], optionally add
elementwise Gaussian noise of standard deviation --noise, and reconstruct X.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noise < 0 {
				return fmt.Errorf("demo: --noise must be >= 0, got %v", noise)
			}
			data, err := datagen.Generate(n,
				datagen.WithPositive(!signed),
				datagen.WithSeed(seed),
				datagen.WithNoise(noise),
				datagen.WithMinZero())
			if err != nil {
				return fmt.Errorf("demo: %w", err)
			}

			r, err := a.reconstructor()
			if err != nil {
				return err
			}
			sol, err := r.Reconstruct(data.D)
			if err != nil {
				return fmt.Errorf("demo: %w", err)
			}

			cmp, err := report.Comparison(sol.X, data.X, sol.Backend)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("RESULTS"))
			fmt.Fprint(out, report.Results(sol))
			fmt.Fprintln(out, titleStyle.Render("COMPARISON"))
			fmt.Fprint(out, cmp)
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("n=%d seed=%d noise=%g iterations=%d", n, seed, noise, sol.Iterations)))

			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 5, "Signal length")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = default stream)")
	cmd.Flags().Float64Var(&noise, "noise", 0, "Noise standard deviation (e.g. 1e-5)")
	cmd.Flags().BoolVar(&signed, "signed", false, "Draw X from N(0,1) instead of U[0,1)")

	return cmd
}
