// Package apriori defines core types, options, and sentinel errors
// for the apriori subpackage of github.com/katalvlaran/slotmine.
package apriori

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for mining operations.
var (
	// ErrEmptyScreen indicates the input screen has no rows or no columns.
	ErrEmptyScreen = errors.New("apriori: screen must have at least one row and one column")
	// ErrNonRectangular indicates screen rows of differing lengths.
	ErrNonRectangular = errors.New("apriori: all screen rows must have the same length")
	// ErrSupportRange indicates minSupport below 1 or above the cell count.
	ErrSupportRange = errors.New("apriori: min support must be between 1 and the total cell count")
)

// Node represents a single screen cell with its coordinates and symbol.
// X is the reel (column) index, Y the row index, both 0-based.
// Nodes are value types: comparable, structurally equal, never mutated.
type Node struct {
	X, Y   int
	Symbol rune
}

// Group is an immutable set of Nodes forming one candidate pattern.
// Members are held sorted by (Y, X), so two Groups built from the same
// nodes are identical regardless of construction order; Key exposes that
// canonical form for set-of-sets equality and deduplication.
type Group struct {
	nodes []Node
}

// NewGroup builds a Group from the given nodes, dropping duplicates.
// Complexity: O(n log n).
func NewGroup(nodes ...Node) Group {
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return nodeLess(sorted[i], sorted[j]) })

	return Group{nodes: dedupSorted(sorted)}
}

// Len returns the number of member nodes.
func (g Group) Len() int { return len(g.nodes) }

// Nodes returns a copy of the member nodes in (Y, X) order.
func (g Group) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Contains reports whether n is a member of the group.
// Complexity: O(len).
func (g Group) Contains(n Node) bool {
	for _, m := range g.nodes {
		if m == n {
			return true
		}
	}

	return false
}

// Uniform reports whether every member carries the same symbol.
// Empty groups are vacuously uniform.
func (g Group) Uniform() bool {
	for i := 1; i < len(g.nodes); i++ {
		if g.nodes[i].Symbol != g.nodes[0].Symbol {
			return false
		}
	}

	return true
}

// Symbol returns the shared member symbol; ok is false when the group
// is empty or not symbol-uniform.
func (g Group) Symbol() (sym rune, ok bool) {
	if len(g.nodes) == 0 || !g.Uniform() {
		return 0, false
	}

	return g.nodes[0].Symbol, true
}

// Key returns the canonical string form of the node set, e.g.
// "0,0,A|1,0,A". Two Groups are equal as sets iff their Keys match.
func (g Group) Key() string {
	var b strings.Builder
	for i, n := range g.nodes {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%d,%d,%c", n.X, n.Y, n.Symbol)
	}

	return b.String()
}

// String implements fmt.Stringer using the canonical Key form.
func (g Group) String() string {
	return "{" + g.Key() + "}"
}

// nodeLess orders nodes by (Y, X), with Symbol as a final tiebreaker so
// the order is total even over nodes from unrelated screens.
func nodeLess(a, b Node) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Symbol < b.Symbol
}

// dedupSorted removes consecutive duplicates from a sorted node slice.
func dedupSorted(nodes []Node) []Node {
	if len(nodes) < 2 {
		return nodes
	}
	out := nodes[:1]
	for _, n := range nodes[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}

	return out
}

// union merges two canonical node slices into a new Group, skipping
// shared members. Complexity: O(len(a)+len(b)).
func union(a, b Group) Group {
	merged := make([]Node, 0, len(a.nodes)+len(b.nodes))
	i, j := 0, 0
	for i < len(a.nodes) && j < len(b.nodes) {
		switch {
		case a.nodes[i] == b.nodes[j]:
			merged = append(merged, a.nodes[i])
			i++
			j++
		case nodeLess(a.nodes[i], b.nodes[j]):
			merged = append(merged, a.nodes[i])
			i++
		default:
			merged = append(merged, b.nodes[j])
			j++
		}
	}
	merged = append(merged, a.nodes[i:]...)
	merged = append(merged, b.nodes[j:]...)

	return Group{nodes: merged}
}

// Option configures Mine behavior via functional arguments.
type Option func(*Options)

// Options holds optional observer hooks for Mine.
type Options struct {
	// OnStage is called after each pruned stage with the current group
	// size and the number of surviving groups. Observational only: the
	// callback must not assume the collections outlive the call.
	OnStage func(size, count int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnStage: func(int, int) {},
	}
}

// WithOnStage registers a callback fired after each pruned stage.
func WithOnStage(fn func(size, count int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}
