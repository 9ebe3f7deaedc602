// SPDX-License-Identifier: MIT

package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNoHeader is returned when clauses appear before "p cnf".
	ErrNoHeader = errors.New("cnf: missing problem line")

	// ErrBadHeader is returned for a malformed problem line.
	ErrBadHeader = errors.New("cnf: malformed problem line")

	// ErrBadLiteral is returned for a token that is not an integer.
	ErrBadLiteral = errors.New("cnf: malformed literal")

	// ErrVarOutOfRange is returned for a literal beyond the declared variables.
	ErrVarOutOfRange = errors.New("cnf: variable out of range")

	// ErrClauseCount is returned when the clause count differs from the header.
	ErrClauseCount = errors.New("cnf: clause count does not match header")

	// ErrUnterminated is returned when the last clause lacks its 0.
	ErrUnterminated = errors.New("cnf: unterminated clause")
)

// WriteDIMACS writes f in DIMACS CNF form. Each comment is emitted on its
// own "c" line before the problem line.
func (f *Formula) WriteDIMACS(w io.Writer, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			fmt.Fprintf(bw, "c %s\n", line)
		}
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars, len(f.Clauses))
	for _, c := range f.Clauses {
		for _, l := range c {
			bw.WriteString(strconv.Itoa(l.Int()))
			bw.WriteByte(' ')
		}
		bw.WriteString("0\n")
	}

	return errors.Wrap(bw.Flush(), "cnf: write dimacs")
}

// ParseDIMACS reads a DIMACS CNF formula. Comment lines are skipped,
// clauses may span lines, and a "%" line ends the input as in the SATLIB
// benchmark files.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	var (
		f        *Formula
		declared int
		cur      Clause
		lineNo   int
	)
scan:
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line[0] == 'c':
			continue
		case line[0] == '%':
			break scan
		case line[0] == 'p':
			if f != nil {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: duplicate", lineNo)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, errors.Wrapf(ErrBadHeader, "line %d", lineNo)
			}
			nv, err1 := strconv.Atoi(fields[2])
			nc, err2 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || nv < 0 || nc < 0 {
				return nil, errors.Wrapf(ErrBadHeader, "line %d", lineNo)
			}
			f, declared = New(nv), nc
			f.Clauses = make([]Clause, 0, nc)
			continue
		}
		if f == nil {
			return nil, errors.Wrapf(ErrNoHeader, "line %d", lineNo)
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(ErrBadLiteral, "line %d: %q", lineNo, tok)
			}
			if n == 0 {
				f.Clauses = append(f.Clauses, cur)
				cur = nil
				continue
			}
			l := Lit(n)
			if int(l.Var()) > f.NumVars {
				return nil, errors.Wrapf(ErrVarOutOfRange, "line %d: %d > %d", lineNo, n, f.NumVars)
			}
			cur = append(cur, l)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "cnf: read dimacs")
	}
	if f == nil {
		return nil, ErrNoHeader
	}
	if len(cur) > 0 {
		return nil, ErrUnterminated
	}
	if len(f.Clauses) != declared {
		return nil, errors.Wrapf(ErrClauseCount, "got %d, header says %d", len(f.Clauses), declared)
	}

	return f, nil
}
