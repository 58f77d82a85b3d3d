// Package config resolves sigdiff settings from defaults, an optional YAML
// file, SIGDIFF_* environment variables and command-line flags, in
// increasing order of precedence (viper).
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/sigdiff/internal/logging"
	"github.com/katalvlaran/sigdiff/nnls"
	"github.com/katalvlaran/sigdiff/reconstruct"
	"github.com/spf13/viper"
)

// ErrInvalid reports a setting outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix namespaces environment variables: backend → SIGDIFF_BACKEND,
// log.level → SIGDIFF_LOG_LEVEL.
const EnvPrefix = "SIGDIFF"

// Keys, shared with the CLI flag bindings.
const (
	KeyBackend       = "backend"
	KeyTolerance     = "tol"
	KeyMaxIterations = "max_iter"
	KeyStrictSkew    = "strict_skew"
	KeySkewTolerance = "skew_tol"
	KeyCanonical     = "canonical"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
)

// Config is the fully resolved configuration.
type Config struct {
	Backend       nnls.Backend
	Tolerance     float64
	MaxIterations int
	StrictSkew    bool
	SkewTolerance float64
	Canonical     bool
	LogLevel      string
	LogFormat     string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Backend:       nnls.ActiveSet,
		Tolerance:     nnls.DefaultTolerance,
		MaxIterations: nnls.DefaultMaxIterations,
		SkewTolerance: 1e-9,
		Canonical:     true,
		LogLevel:      "info",
		LogFormat:     logging.FormatText,
	}
}

// SetDefaults registers Default() on v and enables SIGDIFF_* lookups.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyBackend, d.Backend.String())
	v.SetDefault(KeyTolerance, d.Tolerance)
	v.SetDefault(KeyMaxIterations, d.MaxIterations)
	v.SetDefault(KeyStrictSkew, d.StrictSkew)
	v.SetDefault(KeySkewTolerance, d.SkewTolerance)
	v.SetDefault(KeyCanonical, d.Canonical)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads every key from v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	backend, err := nnls.ParseBackend(v.GetString(KeyBackend))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyBackend, err)
	}

	c := Config{
		Backend:       backend,
		Tolerance:     v.GetFloat64(KeyTolerance),
		MaxIterations: v.GetInt(KeyMaxIterations),
		StrictSkew:    v.GetBool(KeyStrictSkew),
		SkewTolerance: v.GetFloat64(KeySkewTolerance),
		Canonical:     v.GetBool(KeyCanonical),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if !c.Backend.Valid() {
		return fmt.Errorf("config: %s=%d: %w", KeyBackend, int(c.Backend), nnls.ErrInvalidOption)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("config: %s=%v must be finite and > 0: %w", KeyTolerance, c.Tolerance, ErrInvalid)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("config: %s=%d must be >= 0: %w", KeyMaxIterations, c.MaxIterations, ErrInvalid)
	}
	if !(c.SkewTolerance >= 0) || math.IsInf(c.SkewTolerance, 0) {
		return fmt.Errorf("config: %s=%v must be finite and >= 0: %w", KeySkewTolerance, c.SkewTolerance, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s: %w: %w", KeyLogLevel, ErrInvalid, err)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("config: %s=%q: %w: %w", KeyLogFormat, c.LogFormat, ErrInvalid, logging.ErrFormat)
	}

	return nil
}

// SolverOptions converts the solver settings to nnls options.
func (c Config) SolverOptions() []nnls.Option {
	return []nnls.Option{
		nnls.WithTolerance(c.Tolerance),
		nnls.WithMaxIterations(c.MaxIterations),
	}
}

// ReconstructOptions converts c into pipeline options. Call Validate first
// (Load does): the option constructors panic on out-of-range values.
func (c Config) ReconstructOptions() []reconstruct.Option {
	opts := []reconstruct.Option{
		reconstruct.WithBackend(c.Backend),
		reconstruct.WithSolverOptions(c.SolverOptions()...),
	}
	if c.StrictSkew {
		opts = append(opts, reconstruct.WithStrictSkew(c.SkewTolerance))
	}
	if !c.Canonical {
		opts = append(opts, reconstruct.WithoutCanonicalShift())
	}

	return opts
}
