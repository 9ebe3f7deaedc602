// SPDX-License-Identifier: MIT

// Package config holds the layered configuration of the ecd command:
// built-in defaults, an optional YAML file, ECD_* environment variables
// and command-line flags, later layers winning.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. ECD_SAT_SOLVER.
const EnvPrefix = "ECD"

// Config is the resolved configuration.
type Config struct {
	Input        InputConfig        `mapstructure:"input"`
	Algorithm    string             `mapstructure:"algorithm"`
	Backtracking BacktrackingConfig `mapstructure:"backtracking"`
	SAT          SATConfig          `mapstructure:"sat"`
	Jobs         int                `mapstructure:"jobs"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// InputConfig controls how graphs are read.
type InputConfig struct {
	// Format is auto, graph6 or edges.
	Format string `mapstructure:"format"`
	// LineGraph replaces every input graph by its line graph.
	LineGraph bool `mapstructure:"linegraph"`
}

// BacktrackingConfig tunes the exhaustive search.
type BacktrackingConfig struct {
	Selector string `mapstructure:"selector"`
}

// SATConfig tunes the SAT pipeline.
type SATConfig struct {
	Solver     string   `mapstructure:"solver"`
	SolverPath string   `mapstructure:"solver_path"`
	SolverArgs []string `mapstructure:"solver_args"`
	Simplify   bool     `mapstructure:"simplify"`
	// SymmetryBreaking and ExactDegree toggle optional clause families.
	SymmetryBreaking bool `mapstructure:"symmetry_breaking"`
	ExactDegree      bool `mapstructure:"exact_degree"`
}

// CacheConfig locates the result cache. An empty Dir disables it.
type CacheConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig controls diagnostics on stderr.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Algorithm names.
const (
	AlgorithmBacktracking = "backtracking"
	AlgorithmSAT          = "sat"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:        InputConfig{Format: "auto"},
		Algorithm:    AlgorithmSAT,
		Backtracking: BacktrackingConfig{Selector: "most-constrained"},
		SAT: SATConfig{
			Solver:           "gini",
			SymmetryBreaking: true,
			ExactDegree:      true,
		},
		Jobs:    runtime.NumCPU(),
		Logging: LoggingConfig{Level: "warn"},
	}
}

// SetDefaults registers Default() with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input.format", d.Input.Format)
	v.SetDefault("input.linegraph", d.Input.LineGraph)
	v.SetDefault("algorithm", d.Algorithm)
	v.SetDefault("backtracking.selector", d.Backtracking.Selector)
	v.SetDefault("sat.solver", d.SAT.Solver)
	v.SetDefault("sat.solver_path", d.SAT.SolverPath)
	v.SetDefault("sat.solver_args", d.SAT.SolverArgs)
	v.SetDefault("sat.simplify", d.SAT.Simplify)
	v.SetDefault("sat.symmetry_breaking", d.SAT.SymmetryBreaking)
	v.SetDefault("sat.exact_degree", d.SAT.ExactDegree)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("logging.level", d.Logging.Level)
}

// Init prepares v: defaults, environment binding and, when present, the
// config file. file overrides the search path. A missing file in the
// search path is not an error; a missing explicit file is.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ecd")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "ecd")
}
