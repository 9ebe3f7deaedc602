// SPDX-License-Identifier: MIT

package satsolver

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/evencycle/cnf"
)

// Exit statuses of competition-style solvers.
const (
	exitSat   = 10
	exitUnsat = 20
)

// External runs a solver binary on a temporary DIMACS file. The file path
// is appended after Args.
type External struct {
	Path string
	Args []string
}

// NewExternal returns an adapter for the binary at path.
func NewExternal(path string, args ...string) *External {
	return &External{Path: path, Args: args}
}

// Name implements Solver.
func (*External) Name() string { return NameExternal }

// Solve implements Solver.
func (x *External) Solve(ctx context.Context, f *cnf.Formula) (Outcome, error) {
	if out, ok, err := trivial(ctx, f); ok {
		return out, err
	}
	tmp, err := os.CreateTemp("", "ecd-*.cnf")
	if err != nil {
		return Outcome{}, errors.Wrap(err, "satsolver: create formula file")
	}
	defer os.Remove(tmp.Name())
	if err := f.WriteDIMACS(tmp); err != nil {
		tmp.Close()
		return Outcome{}, err
	}
	if err := tmp.Close(); err != nil {
		return Outcome{}, errors.Wrap(err, "satsolver: close formula file")
	}

	args := append(append([]string(nil), x.Args...), tmp.Name())
	cmd := exec.CommandContext(ctx, x.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	runErr := cmd.Run()
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return Outcome{}, errors.Wrapf(runErr, "satsolver: run %s", x.Path)
	}

	out, err := ParseOutput(&stdout, f.NumVars)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "satsolver: %s (stderr: %s)", x.Path, strings.TrimSpace(stderr.String()))
	}
	if code := cmd.ProcessState.ExitCode(); code == exitSat && !out.Satisfiable || code == exitUnsat && out.Satisfiable {
		return Outcome{}, errors.Wrapf(ErrBadOutput, "exit status %d contradicts status line", code)
	}

	return out, nil
}

// ParseOutput reads the "s" and "v" lines of a solver transcript. The
// model has numVars entries; literals beyond numVars are ignored.
func ParseOutput(r io.Reader, numVars int) (Outcome, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	status := ""
	model := make([]bool, numVars)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "s "):
			status = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "v "):
			for _, tok := range strings.Fields(line[2:]) {
				n, err := strconv.Atoi(tok)
				if err != nil {
					return Outcome{}, errors.Wrapf(ErrBadOutput, "literal %q", tok)
				}
				v := n
				if v < 0 {
					v = -v
				}
				if n != 0 && v <= numVars {
					model[v-1] = n > 0
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Outcome{}, errors.Wrap(err, "satsolver: read solver output")
	}

	switch status {
	case "SATISFIABLE":
		return Outcome{Satisfiable: true, Model: model}, nil
	case "UNSATISFIABLE":
		return Outcome{}, nil
	case "UNKNOWN":
		return Outcome{}, ErrIndeterminate
	default:
		return Outcome{}, errors.Wrapf(ErrBadOutput, "status %q", status)
	}
}
