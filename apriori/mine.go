package apriori

// Mine extracts every connected, symbol-uniform cluster of exactly
// minSupport cells from a rectangular screen of symbols.
//
// Pipeline: flatten the screen into Nodes, drop nodes whose symbol
// occurs fewer than minSupport times anywhere on the screen (necessary,
// not sufficient, for a minSupport-sized cluster), seed 2-node groups
// via AdjacentPairs + Prune, then repeat Grow + Prune until groups
// reach minSupport cells. With minSupport == 1 every surviving node is
// trivially a match and is returned as a singleton Group.
//
// The returned collection is deterministic for a given screen and
// support; group order reflects discovery and carries no meaning. An
// empty collection is a valid outcome, not a failure.
//
// Returns ErrEmptyScreen, ErrNonRectangular, or ErrSupportRange when
// the inputs violate the contract; mining itself raises no errors.
//
// Time: dominated by the Grow stages — see the package doc.
func Mine(screen [][]rune, minSupport int, opts ...Option) ([]Group, error) {
	if len(screen) == 0 || len(screen[0]) == 0 {
		return nil, ErrEmptyScreen
	}
	reels := len(screen[0])
	for _, row := range screen {
		if len(row) != reels {
			return nil, ErrNonRectangular
		}
	}
	if minSupport < 1 || minSupport > len(screen)*reels {
		return nil, ErrSupportRange
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	nodes := frequent(extractNodes(screen), minSupport)

	// Trivial support: every surviving node is a match on its own.
	if minSupport == 1 {
		singles := make([]Group, len(nodes))
		for i, n := range nodes {
			singles[i] = NewGroup(n)
		}

		return singles, nil
	}

	groups := Prune(AdjacentPairs(nodes))
	options.OnStage(2, len(groups))

	for size := 2; size < minSupport; size++ {
		groups = Prune(Grow(groups))
		options.OnStage(size+1, len(groups))
	}

	return groups, nil
}

// extractNodes flattens the screen into Nodes in row-major order.
func extractNodes(screen [][]rune) []Node {
	nodes := make([]Node, 0, len(screen)*len(screen[0]))
	for y, row := range screen {
		for x, sym := range row {
			nodes = append(nodes, Node{X: x, Y: y, Symbol: sym})
		}
	}

	return nodes
}

// frequent keeps only nodes whose symbol occurs at least minSupport
// times across the whole screen, preserving input order.
func frequent(nodes []Node, minSupport int) []Node {
	counts := make(map[rune]int, len(nodes))
	for _, n := range nodes {
		counts[n.Symbol]++
	}

	var kept []Node
	for _, n := range nodes {
		if counts[n.Symbol] >= minSupport {
			kept = append(kept, n)
		}
	}

	return kept
}
