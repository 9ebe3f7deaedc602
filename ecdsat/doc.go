// SPDX-License-Identifier: MIT

// Package ecdsat decides and minimizes even cycle decompositions through
// SAT.
//
// Encode turns "G has an ECD with at most k classes" into CNF. Each edge e
// gets 2k slot variables; slot c of e is true when e lies in class c/2 at
// parity c&1. The clauses say that every edge takes exactly one slot, that
// edges sharing a vertex never share a slot, and that both endpoints of an
// edge in slot c meet exactly one other edge in the partner slot c^1.
// Every class is then a disjoint union of alternating, hence even, cycles.
//
// Classes may stay empty, so satisfiability is monotone in k and the
// Searcher bisects between a lower and an upper bound on the minimum.
// Symmetry breaking orders the classes by their smallest edge and puts
// that edge at even parity; it removes equivalent models without losing
// any decomposition.
package ecdsat
