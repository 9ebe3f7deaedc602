// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evencycle/internal/config"
)

func load(t *testing.T, file string) *config.Config {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	v := viper.New()
	require.NoError(t, config.Init(v, file))
	cfg, err := config.Load(v)
	require.NoError(t, err)

	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := load(t, "")
	assert.Equal(t, config.AlgorithmSAT, cfg.Algorithm)
	assert.Equal(t, "gini", cfg.SAT.Solver)
	assert.True(t, cfg.SAT.SymmetryBreaking)
	assert.Equal(t, "most-constrained", cfg.Backtracking.Selector)
	assert.GreaterOrEqual(t, cfg.Jobs, 1)
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ECD_SAT_SOLVER", "gophersat")
	t.Setenv("ECD_JOBS", "3")
	t.Setenv("ECD_INPUT_LINEGRAPH", "true")
	cfg := load(t, "")
	assert.Equal(t, "gophersat", cfg.SAT.Solver)
	assert.Equal(t, 3, cfg.Jobs)
	assert.True(t, cfg.Input.LineGraph)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecd.yaml")
	body := "algorithm: backtracking\nbacktracking:\n  selector: first\nsat:\n  solver_args: [\"-q\", \"--sat\"]\ncache:\n  dir: /tmp/ecd-cache\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg := load(t, path)
	assert.Equal(t, config.AlgorithmBacktracking, cfg.Algorithm)
	assert.Equal(t, "first", cfg.Backtracking.Selector)
	assert.Equal(t, []string{"-q", "--sat"}, cfg.SAT.SolverArgs)
	assert.Equal(t, "/tmp/ecd-cache", cfg.Cache.Dir)
	assert.Equal(t, "gini", cfg.SAT.Solver, "unset keys keep defaults")

	v := viper.New()
	assert.Error(t, config.Init(v, filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = "greedy"
	cfg.SAT.Solver = "external"
	cfg.Jobs = 0
	err := cfg.Validate()
	require.Error(t, err)

	var verrs config.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"algorithm", "sat.solver_path", "jobs"}, fields)
	assert.Contains(t, err.Error(), "3 validation errors")

	cfg = config.Default()
	cfg.Logging.Level = "loud"
	assert.EqualError(t, cfg.Validate(), "logging.level: must be one of debug, info, warn, error (got: loud)")
}
