// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Overrides
// ─────────────────────────────────────────────────────────────────────────────

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the TRICALC_ prefix) to a function
// that applies the env value to the configuration.
type envOverride struct {
	envKey string
	apply  func(*Config, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped by value kind (string, duration, numeric, bool).
var envOverrides = []envOverride{
	// String overrides
	{"ALGO", func(c *Config, v string) {
		c.Algorithm = v
	}},
	{"METRICS_ADDR", func(c *Config, v string) {
		c.MetricsAddr = v
	}},
	{"GC_MODE", func(c *Config, v string) {
		c.GCMode = v
	}},

	// Duration overrides
	{"TIMEOUT", func(c *Config, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// Numeric overrides
	{"MAX_ROWS", func(c *Config, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxRows = parsed
		}
	}},
	{"MAX_RECURSION_ROWS", func(c *Config, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxRecursionRows = parsed
		}
	}},

	// Boolean overrides
	{"VERBOSE", func(c *Config, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", func(c *Config, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration.
// Unset and unparsable variables leave the current value in place.
//
// Supported environment variables (all prefixed with TRICALC_):
//   - ALGO, METRICS_ADDR, GC_MODE, TIMEOUT, MAX_ROWS, MAX_RECURSION_ROWS,
//     VERBOSE, QUIET
func applyEnvOverrides(config *Config) {
	for _, o := range envOverrides {
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
