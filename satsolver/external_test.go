// SPDX-License-Identifier: MIT

package satsolver_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evencycle/satsolver"
)

func TestParseOutput(t *testing.T) {
	out, err := satsolver.ParseOutput(strings.NewReader("c kissat\ns SATISFIABLE\nv 1 -2\nv 3 7 0\n"), 4)
	require.NoError(t, err)
	assert.True(t, out.Satisfiable)
	assert.Equal(t, []bool{true, false, true, false}, out.Model)

	out, err = satsolver.ParseOutput(strings.NewReader("s UNSATISFIABLE\n"), 4)
	require.NoError(t, err)
	assert.False(t, out.Satisfiable)

	_, err = satsolver.ParseOutput(strings.NewReader("s UNKNOWN\n"), 1)
	assert.ErrorIs(t, err, satsolver.ErrIndeterminate)

	_, err = satsolver.ParseOutput(strings.NewReader("hello\n"), 1)
	assert.ErrorIs(t, err, satsolver.ErrBadOutput)

	_, err = satsolver.ParseOutput(strings.NewReader("s SATISFIABLE\nv 1 x 0\n"), 1)
	assert.ErrorIs(t, err, satsolver.ErrBadOutput)
}

// fakeSolver writes a shell script that prints body and exits with code.
func fakeSolver(t *testing.T, body string, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "solver.sh")
	script := "#!/bin/sh\ncat <<'OUT'\n" + body + "OUT\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

func TestExternal(t *testing.T) {
	f := chainFormula()

	sat := satsolver.NewExternal(fakeSolver(t, "s SATISFIABLE\nv 1 2 3 -4 0\n", 10))
	out, err := sat.Solve(context.Background(), f)
	require.NoError(t, err)
	assert.True(t, out.Satisfiable)
	assert.True(t, f.Satisfies(out.Model))

	unsat := satsolver.NewExternal(fakeSolver(t, "s UNSATISFIABLE\n", 20))
	ok, err := satsolver.Satisfiable(context.Background(), unsat, f)
	require.NoError(t, err)
	assert.False(t, ok)

	liar := satsolver.NewExternal(fakeSolver(t, "s UNSATISFIABLE\n", 10))
	_, err = liar.Solve(context.Background(), f)
	assert.ErrorIs(t, err, satsolver.ErrBadOutput)

	broken := satsolver.NewExternal(fakeSolver(t, "segfault\n", 1))
	_, err = broken.Solve(context.Background(), f)
	assert.ErrorIs(t, err, satsolver.ErrBadOutput)

	missing := satsolver.NewExternal(filepath.Join(t.TempDir(), "absent"))
	_, err = missing.Solve(context.Background(), f)
	assert.Error(t, err)
}
