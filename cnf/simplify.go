// SPDX-License-Identifier: MIT

package cnf

import (
	"sort"
	"strconv"
	"strings"
)

// Simplifier is a cheap syntactic preprocessor. It removes duplicate
// literals inside a clause, drops tautological clauses and keeps one copy
// of clauses that are equal as literal sets. Variable numbering is left
// alone, so every model of the result is a model of the input.
type Simplifier struct{}

// Preprocess returns a simplified copy of f. f is not modified.
func (Simplifier) Preprocess(f *Formula) (*Formula, error) {
	out := New(f.NumVars)
	seen := make(map[string]struct{}, len(f.Clauses))
	for _, c := range f.Clauses {
		norm, taut := normalize(c)
		if taut {
			continue
		}
		key := clauseKey(norm)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Clauses = append(out.Clauses, norm)
	}

	return out, nil
}

// normalize sorts c by variable, drops repeated literals and reports
// whether c contains a literal and its complement.
func normalize(c Clause) (Clause, bool) {
	s := append(Clause(nil), c...)
	sort.Slice(s, func(i, j int) bool {
		if s[i].Var() != s[j].Var() {
			return s[i].Var() < s[j].Var()
		}
		return s[i] < s[j]
	})
	out := s[:0]
	for i, l := range s {
		if i > 0 && l == s[i-1] {
			continue
		}
		if i > 0 && l == s[i-1].Not() {
			return nil, true
		}
		out = append(out, l)
	}

	return out, false
}

func clauseKey(c Clause) string {
	var b strings.Builder
	for _, l := range c {
		b.WriteString(strconv.Itoa(l.Int()))
		b.WriteByte(',')
	}

	return b.String()
}
