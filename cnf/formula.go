// SPDX-License-Identifier: MIT

package cnf

import (
	"strconv"
	"strings"
)

// Var is a propositional variable, numbered from 1.
type Var int

// Lit is a signed literal in DIMACS convention. The zero Lit is invalid.
type Lit int

// Pos returns the positive literal of v.
func Pos(v Var) Lit { return Lit(v) }

// Neg returns the negative literal of v.
func Neg(v Var) Lit { return -Lit(v) }

// Var returns the variable of l.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}

	return Var(l)
}

// IsNeg reports whether l is a negative literal.
func (l Lit) IsNeg() bool { return l < 0 }

// Not returns the complement of l.
func (l Lit) Not() Lit { return -l }

// Int returns the DIMACS integer of l.
func (l Lit) Int() int { return int(l) }

// Eval returns the truth value of l under model.
func (l Lit) Eval(model []bool) bool {
	v := int(l.Var()) - 1
	val := v < len(model) && model[v]

	return val != l.IsNeg()
}

// Clause is a disjunction of literals. The empty clause is false.
type Clause []Lit

// String renders c in DIMACS form without the terminating 0.
func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = strconv.Itoa(l.Int())
	}

	return strings.Join(parts, " ")
}

// Formula is a conjunction of clauses over variables 1..NumVars.
type Formula struct {
	NumVars int
	Clauses []Clause
}

// New returns an empty formula that already declares n variables.
func New(n int) *Formula {
	return &Formula{NumVars: n}
}

// NewVar declares a fresh variable.
func (f *Formula) NewVar() Var {
	f.NumVars++

	return Var(f.NumVars)
}

// Add appends the clause made of lits and widens NumVars when a literal
// names a larger variable. Add with no literals appends the empty clause.
func (f *Formula) Add(lits ...Lit) {
	c := make(Clause, len(lits))
	copy(c, lits)
	for _, l := range c {
		if v := int(l.Var()); v > f.NumVars {
			f.NumVars = v
		}
	}
	f.Clauses = append(f.Clauses, c)
}

// Len returns the number of clauses.
func (f *Formula) Len() int { return len(f.Clauses) }

// HasEmptyClause reports whether f contains the empty clause and is
// therefore unsatisfiable.
func (f *Formula) HasEmptyClause() bool {
	for _, c := range f.Clauses {
		if len(c) == 0 {
			return true
		}
	}

	return false
}

// Ints returns the clauses as signed integers, the shape most Go solvers
// accept.
func (f *Formula) Ints() [][]int {
	out := make([][]int, len(f.Clauses))
	for i, c := range f.Clauses {
		row := make([]int, len(c))
		for j, l := range c {
			row[j] = l.Int()
		}
		out[i] = row
	}

	return out
}

// Satisfies reports whether model makes every clause true.
func (f *Formula) Satisfies(model []bool) bool {
	for _, c := range f.Clauses {
		ok := false
		for _, l := range c {
			if l.Eval(model) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of f.
func (f *Formula) Clone() *Formula {
	out := &Formula{NumVars: f.NumVars, Clauses: make([]Clause, len(f.Clauses))}
	for i, c := range f.Clauses {
		out.Clauses[i] = append(Clause(nil), c...)
	}

	return out
}
