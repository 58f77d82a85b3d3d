// Package commands implements the sigdiff command tree.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sigdiff/design"
	"github.com/katalvlaran/sigdiff/internal/config"
	"github.com/katalvlaran/sigdiff/internal/logging"
	"github.com/katalvlaran/sigdiff/reconstruct"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries state resolved by the root command for its subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	log     *slog.Logger
	cache   *design.Cache
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), cache: design.NewCache()}

	root := &cobra.Command{
		Use:   "sigdiff",
		Short: "Recover a signal from its pairwise differences",
		Long: `sigdiff - Signed Differences solver

Given D[i][j] = X[i] - X[j], estimate a nonnegative X by
non-negative least squares on the half-vectorized differences.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default $HOME/.sigdiff.yaml)")
	flags.String("backend", "active-set", "NNLS backend: active-set, qp, regression")
	flags.Float64("tol", config.Default().Tolerance, "Solver optimality tolerance")
	flags.Int("max-iter", 0, "Solver iteration budget (0 = backend default)")
	flags.Bool("strict-skew", false, "Reject D that is not skew-symmetric")
	flags.Float64("skew-tol", config.Default().SkewTolerance, "Tolerance for --strict-skew")
	flags.Bool("canonical", true, "Shift the solution so that min(x) = 0")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")

	bind(a.v, flags, map[string]string{
		config.KeyBackend:       "backend",
		config.KeyTolerance:     "tol",
		config.KeyMaxIterations: "max-iter",
		config.KeyStrictSkew:    "strict-skew",
		config.KeySkewTolerance: "skew-tol",
		config.KeyCanonical:     "canonical",
		config.KeyLogLevel:      "log-level",
		config.KeyLogFormat:     "log-format",
	})

	root.AddCommand(newDemoCmd(a), newSolveCmd(a), newBackendsCmd())

	return root
}

func bind(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// Lookup cannot fail for flags registered above.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

// init reads the config file, resolves settings and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.readConfigFile(); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config file loaded", "path", used)
	}

	return nil
}

// readConfigFile loads --config, or $HOME/.sigdiff.yaml when it exists.
// An explicitly named file must exist.
func (a *app) readConfigFile() error {
	path := a.cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".sigdiff.yaml")
		if _, err = os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	a.v.SetConfigFile(path)
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

// reconstructor builds a pipeline from the resolved settings.
func (a *app) reconstructor() (*reconstruct.Reconstructor, error) {
	opts := append(a.cfg.ReconstructOptions(),
		reconstruct.WithCache(a.cache),
		reconstruct.WithLogger(a.log))

	return reconstruct.New(opts...)
}
