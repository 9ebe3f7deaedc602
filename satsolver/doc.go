// SPDX-License-Identifier: MIT

// Package satsolver adapts SAT solvers to one context-aware interface.
//
// Two adapters run in process: Gini (github.com/go-air/gini) and Gophersat
// (github.com/crillab/gophersat). External drives any solver binary that
// follows the SAT competition conventions: DIMACS input, "s" and "v"
// output lines, exit status 10 for SAT and 20 for UNSAT.
//
// In-process solvers cannot be interrupted mid-call; they observe the
// context before and after solving. External kills the process when the
// context ends.
//
// Preprocessors rewrite a formula before it is solved. They must keep
// variable numbering, so that a model of the rewritten formula is a model
// of the original.
package satsolver
