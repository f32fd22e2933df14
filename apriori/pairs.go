package apriori

// AdjacentPairs returns one 2-node Group per unordered pair of nodes
// that are orthogonal neighbors: same reel and adjacent rows, or same
// row and adjacent reels. Every unordered pair is examined exactly
// once, so each adjacent pair appears exactly once in the output no
// matter how the input is ordered. Fewer than two nodes yield an empty
// list.
//
// Time: O(n²) over n nodes. Memory: O(p) for p emitted pairs.
func AdjacentPairs(nodes []Node) []Group {
	var pairs []Group
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if !adjacent(nodes[i], nodes[j]) {
				continue
			}
			pairs = append(pairs, NewGroup(nodes[i], nodes[j]))
		}
	}

	return pairs
}

// adjacent reports orthogonal adjacency: the cells differ by exactly
// one step along exactly one axis.
func adjacent(a, b Node) bool {
	return abs(a.X-b.X)+abs(a.Y-b.Y) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
