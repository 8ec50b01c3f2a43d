package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/tricalc/internal/metrics"
	"github.com/agbru/tricalc/internal/triangle"
)

// TestDefault verifies the static defaults.
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Algorithm != triangle.DefaultAlgorithm {
		t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, triangle.DefaultAlgorithm)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.MaxRows != 0 {
		t.Errorf("MaxRows = %d, want 0 (solver default)", cfg.MaxRows)
	}
	if cfg.MaxRecursionRows != 0 {
		t.Errorf("MaxRecursionRows = %d, want 0 (solver default)", cfg.MaxRecursionRows)
	}
	if cfg.Verbose || cfg.Quiet {
		t.Error("verbosity switches should default to off")
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
	if cfg.GCMode != string(metrics.GCModeAuto) {
		t.Errorf("GCMode = %q, want %q", cfg.GCMode, metrics.GCModeAuto)
	}
}

// TestFromEnv verifies environment variable overrides.
func TestFromEnv(t *testing.T) {
	t.Setenv("TRICALC_ALGO", "memoized")
	t.Setenv("TRICALC_TIMEOUT", "90s")
	t.Setenv("TRICALC_MAX_ROWS", "5000")
	t.Setenv("TRICALC_MAX_RECURSION_ROWS", "512")
	t.Setenv("TRICALC_VERBOSE", "yes")
	t.Setenv("TRICALC_METRICS_ADDR", "127.0.0.1:9090")
	t.Setenv("TRICALC_GC_MODE", "aggressive")

	cfg := FromEnv()

	if cfg.Algorithm != "memoized" {
		t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "memoized")
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
	if cfg.MaxRows != 5000 {
		t.Errorf("MaxRows = %d, want 5000", cfg.MaxRows)
	}
	if cfg.MaxRecursionRows != 512 {
		t.Errorf("MaxRecursionRows = %d, want 512", cfg.MaxRecursionRows)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
	if cfg.MetricsAddr != "127.0.0.1:9090" {
		t.Errorf("MetricsAddr = %q, want %q", cfg.MetricsAddr, "127.0.0.1:9090")
	}
	if cfg.GCMode != "aggressive" {
		t.Errorf("GCMode = %q, want %q", cfg.GCMode, "aggressive")
	}
}

// TestFromEnvInvalidValues verifies that unparsable values keep defaults.
func TestFromEnvInvalidValues(t *testing.T) {
	t.Setenv("TRICALC_TIMEOUT", "not-a-duration")
	t.Setenv("TRICALC_MAX_ROWS", "many")
	t.Setenv("TRICALC_VERBOSE", "maybe")

	cfg := FromEnv()

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("invalid timeout should keep default, got %v", cfg.Timeout)
	}
	if cfg.MaxRows != 0 {
		t.Errorf("invalid max rows should keep default, got %d", cfg.MaxRows)
	}
	if cfg.Verbose {
		t.Error("unrecognized bool should keep default false")
	}
}

// TestValidate verifies configuration validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty algorithm", func(c *Config) { c.Algorithm = "" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"negative max rows", func(c *Config) { c.MaxRows = -1 }, true},
		{"negative recursion rows", func(c *Config) { c.MaxRecursionRows = -5 }, true},
		{"verbose and quiet", func(c *Config) { c.Verbose = true; c.Quiet = true }, true},
		{"explicit limits are valid", func(c *Config) { c.MaxRows = 100; c.MaxRecursionRows = 50 }, false},
		{"empty gc mode is valid", func(c *Config) { c.GCMode = "" }, false},
		{"unknown gc mode", func(c *Config) { c.GCMode = "mostly" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestSolverOptions verifies the projection onto solver options.
func TestSolverOptions(t *testing.T) {
	cfg := Default()
	cfg.MaxRows = 123
	cfg.MaxRecursionRows = 45

	opts := cfg.SolverOptions()
	if opts.MaxRows != 123 {
		t.Errorf("opts.MaxRows = %d, want 123", opts.MaxRows)
	}
	if opts.MaxRecursionRows != 45 {
		t.Errorf("opts.MaxRecursionRows = %d, want 45", opts.MaxRecursionRows)
	}
}

// TestLogLevel verifies verbosity mapping.
func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    zerolog.Level
	}{
		{"default", false, false, zerolog.InfoLevel},
		{"verbose", true, false, zerolog.DebugLevel},
		{"quiet", false, true, zerolog.ErrorLevel},
		{"quiet wins over verbose", true, true, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Verbose: tt.verbose, Quiet: tt.quiet}
			if got := cfg.LogLevel(); got != tt.want {
				t.Errorf("LogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParseBoolEnv verifies boolean parsing.
func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"banana", false, false},
		{"banana", true, true},
		{"", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
				t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
			}
		})
	}
}
