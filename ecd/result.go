// SPDX-License-Identifier: MIT

package ecd

// NoDecomposition is the size reported when G has no ECD.
const NoDecomposition = -1

// Result is the outcome of a minimum-ECD computation.
type Result struct {
	// Size is the minimum number of color classes, or NoDecomposition.
	Size int

	// Coloring maps every edge ID of G to its color in [0, 2*Size).
	// Nil when Size is NoDecomposition.
	Coloring map[string]int

	// Reason is set when a precondition ruled the graph out up front.
	Reason error
}

// Found reports whether a decomposition exists.
func (r *Result) Found() bool {
	return r != nil && r.Size >= 0
}

// Class returns the color class of the edge.
func (r *Result) Class(edgeID string) (int, bool) {
	c, ok := r.Coloring[edgeID]
	if !ok {
		return 0, false
	}

	return c / 2, true
}

func infeasible(reason error) *Result {
	return &Result{Size: NoDecomposition, Reason: reason}
}
