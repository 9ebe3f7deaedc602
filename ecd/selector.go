// SPDX-License-Identifier: MIT

package ecd

import "fmt"

// Candidates is the read-only view of the search state a Selector sees.
// Edges are dense indices in the graph's canonical edge order.
type Candidates interface {
	// Pending lists uncolored edges in ascending order. Never empty when
	// Select is called.
	Pending() []int
	// First returns the smallest pending edge.
	First() int
	// ColoredNeighbors counts colored line-graph neighbors of edge,
	// with multiplicity.
	ColoredNeighbors(edge int) int
}

// Selector picks the pending edge that starts the next cycle. Any choice
// keeps the search complete; the choice only affects how early branches
// die.
type Selector interface {
	Name() string
	Select(c Candidates) int
}

// Selector names accepted by ParseSelector.
const (
	SelectorFirst           = "first"
	SelectorMostConstrained = "most-constrained"
)

// FirstPending starts every cycle at the lowest pending edge.
type FirstPending struct{}

// Name implements Selector.
func (FirstPending) Name() string { return SelectorFirst }

// Select implements Selector.
func (FirstPending) Select(c Candidates) int { return c.First() }

// MostConstrained starts at the pending edge with the most colored
// neighbors, lowest index on ties.
type MostConstrained struct{}

// Name implements Selector.
func (MostConstrained) Name() string { return SelectorMostConstrained }

// Select implements Selector.
func (MostConstrained) Select(c Candidates) int {
	best, bestScore := -1, -1
	for _, e := range c.Pending() {
		if s := c.ColoredNeighbors(e); s > bestScore {
			best, bestScore = e, s
		}
	}

	return best
}

// ParseSelector maps a configuration name to a Selector.
func ParseSelector(name string) (Selector, error) {
	switch name {
	case SelectorFirst:
		return FirstPending{}, nil
	case SelectorMostConstrained, "":
		return MostConstrained{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSelector)
	}
}
