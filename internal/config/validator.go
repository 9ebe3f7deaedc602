// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError is one invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// Valid values of the enumerated settings.
var (
	ValidFormats    = []string{"auto", "graph6", "edges"}
	ValidAlgorithms = []string{AlgorithmBacktracking, AlgorithmSAT}
	ValidSelectors  = []string{"first", "most-constrained"}
	ValidSolvers    = []string{"gini", "gophersat", "external"}
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
)

// Validate returns nil or a ValidationErrors listing every problem.
func (c *Config) Validate() error {
	var errs ValidationErrors
	oneOf := func(field, value string, valid []string) {
		if !slices.Contains(valid, value) {
			errs = append(errs, ValidationError{field, value, "must be one of " + strings.Join(valid, ", ")})
		}
	}
	oneOf("input.format", c.Input.Format, ValidFormats)
	oneOf("algorithm", c.Algorithm, ValidAlgorithms)
	oneOf("backtracking.selector", c.Backtracking.Selector, ValidSelectors)
	oneOf("sat.solver", c.SAT.Solver, ValidSolvers)
	oneOf("logging.level", strings.ToLower(c.Logging.Level), ValidLogLevels)
	if c.SAT.Solver == "external" && c.SAT.SolverPath == "" {
		errs = append(errs, ValidationError{"sat.solver_path", c.SAT.SolverPath, "required by the external solver"})
	}
	if c.Jobs < 1 {
		errs = append(errs, ValidationError{"jobs", c.Jobs, "must be at least 1"})
	}
	if len(errs) == 0 {
		return nil
	}

	return errs
}
