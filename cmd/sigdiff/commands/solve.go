package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sigdiff/matrix"
	"github.com/katalvlaran/sigdiff/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// matrixFile is the YAML layout read by solve:
//
//	matrix:
//	  - [0, -2, -1]
//	  - [2, 0, 1]
//	  - [1, -1, 0]
type matrixFile struct {
	Matrix [][]float64 `yaml:"matrix"`
}

func newSolveCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Reconstruct X from a difference matrix in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readMatrix(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			r, err := a.reconstructor()
			if err != nil {
				return err
			}
			sol, err := r.Reconstruct(d)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("RESULTS"))
			fmt.Fprint(out, report.Results(sol))

			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "matrix", "m", "", `YAML file holding "matrix: [[...], ...]" ("-" reads stdin)`)
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}

func readMatrix(path string, stdin io.Reader) (*matrix.Dense, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("solve: read %s: %w", path, err)
	}

	var f matrixFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("solve: parse %s: %w", path, err)
	}
	d, err := matrix.NewDenseFrom(f.Matrix)
	if err != nil {
		return nil, fmt.Errorf("solve: %s: %w", path, err)
	}

	return d, nil
}
