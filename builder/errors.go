// SPDX-License-Identifier: MIT
// Package: evencycle/builder
//
// errors.go: sentinel errors for the builder package.
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, copies, times)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadVertexIndex indicates an explicit edge referenced a negative index.
var ErrBadVertexIndex = errors.New("builder: vertex index out of range")

// ErrConstructFailed indicates a constructor could not be applied, for
// example a nil Constructor passed to BuildGraph or a nested constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
