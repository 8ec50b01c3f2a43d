package config

import (
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/tricalc/internal/errors"
	"github.com/agbru/tricalc/internal/metrics"
	"github.com/agbru/tricalc/internal/triangle"
)

// EnvPrefix is applied to every environment variable read by this package.
const EnvPrefix = "TRICALC_"

// DefaultTimeout bounds a solve that the caller did not budget explicitly.
const DefaultTimeout = 5 * time.Minute

// Config holds the host-level settings for running solvers. It resolves in
// three layers (highest priority first):
//  1. Fields set by the embedding application
//  2. Environment variables (TRICALC_*)
//  3. Static defaults in triangle/constants.go
type Config struct {
	// Algorithm selects the solver, or "all" to run every registered one.
	Algorithm string
	// Timeout is the wall clock budget for a single solve run.
	Timeout time.Duration
	// MaxRows caps the height of admitted triangles. Zero means the
	// solver default, possibly refined by ApplyAdaptiveLimits.
	MaxRows int
	// MaxRecursionRows caps the height accepted by recursive solvers.
	// Zero means the solver default.
	MaxRecursionRows int
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet restricts logging to errors.
	Quiet bool
	// MetricsAddr is the listen address for the observability endpoint.
	// Empty disables it.
	MetricsAddr string
	// GCMode controls garbage collector pausing around comparison runs.
	// One of "auto", "aggressive" or "disabled". Empty means "auto".
	GCMode string
}

// Default returns the configuration before any environment or caller
// overrides.
func Default() Config {
	return Config{
		Algorithm: triangle.DefaultAlgorithm,
		Timeout:   DefaultTimeout,
		GCMode:    string(metrics.GCModeAuto),
	}
}

// FromEnv returns the default configuration with environment variable
// overrides applied.
func FromEnv() Config {
	cfg := Default()
	applyEnvOverrides(&cfg)
	return cfg
}

// Validate checks the configuration for contradictions that no layer can
// resolve.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c Config) Validate() error {
	if c.Algorithm == "" {
		return apperrors.NewConfigError("algorithm must not be empty")
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxRows < 0 {
		return apperrors.NewConfigError("max rows must not be negative, got %d", c.MaxRows)
	}
	if c.MaxRecursionRows < 0 {
		return apperrors.NewConfigError("max recursion rows must not be negative, got %d", c.MaxRecursionRows)
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("verbose and quiet are mutually exclusive")
	}
	switch metrics.GCMode(c.GCMode) {
	case "", metrics.GCModeAuto, metrics.GCModeAggressive, metrics.GCModeDisabled:
	default:
		return apperrors.NewConfigError("unknown gc mode %q", c.GCMode)
	}
	return nil
}

// SolverOptions projects the configuration onto the solver option set.
func (c Config) SolverOptions() triangle.Options {
	return triangle.Options{
		MaxRows:          c.MaxRows,
		MaxRecursionRows: c.MaxRecursionRows,
	}
}

// LogLevel maps the verbosity switches onto a zerolog level.
func (c Config) LogLevel() zerolog.Level {
	switch {
	case c.Quiet:
		return zerolog.ErrorLevel
	case c.Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
