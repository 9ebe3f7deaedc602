// SPDX-License-Identifier: MIT

// Package cnf is a small data model for propositional formulas in
// conjunctive normal form.
//
// Variables are numbered from 1 and literals use the signed DIMACS
// convention: v is the positive literal of variable v, -v its negation.
// A Formula is a plain clause list; it can be written to and read from
// DIMACS text and handed to any solver in package satsolver.
//
// Models are []bool slices indexed by variable minus one. A variable
// beyond the end of a model reads as false.
//
// Numbering is 1-based, not 0-based, because 0 terminates a DIMACS clause
// and every solver adapter speaks DIMACS. The dense 0-based index of a
// variable is v-1; package ecdsat maps edge e and slot c to variable
// e*2k+c+1, which is model index e*2k+c.
package cnf
