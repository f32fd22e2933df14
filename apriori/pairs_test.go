package apriori_test

import (
	"testing"

	"github.com/katalvlaran/slotmine/apriori"
)

// nodesOf flattens a screen into row-major Nodes, mirroring the order
// Mine extracts them in.
func nodesOf(screen [][]rune) []apriori.Node {
	var nodes []apriori.Node
	for y, row := range screen {
		for x, sym := range row {
			nodes = append(nodes, apriori.Node{X: x, Y: y, Symbol: sym})
		}
	}

	return nodes
}

// TestAdjacentPairs_Counts verifies pair counts on small screens: a
// W×H grid has W·(H−1) vertical plus H·(W−1) horizontal adjacent pairs.
func TestAdjacentPairs_Counts(t *testing.T) {
	cases := []struct {
		name   string
		screen [][]rune
		want   int
	}{
		{"Empty", nil, 0},
		{"Single", [][]rune{{'A'}}, 0},
		{"Row", [][]rune{{'A', 'B', 'C'}}, 2},
		{"Column", [][]rune{{'A'}, {'B'}, {'C'}}, 2},
		{"TwoByTwo", [][]rune{{'A', 'B'}, {'C', 'D'}}, 4},
		{"ThreeByFive", [][]rune{
			{'A', 'A', 'A', 'A', 'F'},
			{'B', 'B', 'A', 'F', 'F'},
			{'A', 'B', 'F', 'F', 'B'},
		}, 22}, // 5·2 vertical + 3·4 horizontal
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pairs := apriori.AdjacentPairs(nodesOf(tc.screen))
			if len(pairs) != tc.want {
				t.Errorf("got %d pairs; want %d", len(pairs), tc.want)
			}
		})
	}
}

// TestAdjacentPairs_ExactlyOnce checks that no adjacent pair is emitted
// twice and that every pair has exactly two members.
func TestAdjacentPairs_ExactlyOnce(t *testing.T) {
	screen := [][]rune{
		{'A', 'A', 'A'},
		{'A', 'A', 'A'},
	}
	pairs := apriori.AdjacentPairs(nodesOf(screen))

	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if p.Len() != 2 {
			t.Fatalf("pair %v has %d members; want 2", p, p.Len())
		}
		if seen[p.Key()] {
			t.Errorf("pair %v emitted twice", p)
		}
		seen[p.Key()] = true
	}
}

// TestAdjacentPairs_OrderIndependent ensures the emitted pair set does
// not depend on the order of the input node list.
func TestAdjacentPairs_OrderIndependent(t *testing.T) {
	nodes := nodesOf([][]rune{
		{'A', 'B'},
		{'C', 'D'},
	})
	reversed := make([]apriori.Node, len(nodes))
	for i, n := range nodes {
		reversed[len(nodes)-1-i] = n
	}

	keys := func(gs []apriori.Group) map[string]bool {
		m := make(map[string]bool, len(gs))
		for _, g := range gs {
			m[g.Key()] = true
		}
		return m
	}

	forward := keys(apriori.AdjacentPairs(nodes))
	backward := keys(apriori.AdjacentPairs(reversed))
	if len(forward) != len(backward) {
		t.Fatalf("pair sets differ in size: %d vs %d", len(forward), len(backward))
	}
	for k := range forward {
		if !backward[k] {
			t.Errorf("pair %q missing from reversed-input run", k)
		}
	}
}

// TestAdjacentPairs_NoDiagonals confirms diagonal neighbors never pair.
func TestAdjacentPairs_NoDiagonals(t *testing.T) {
	nodes := []apriori.Node{
		{X: 0, Y: 0, Symbol: 'A'},
		{X: 1, Y: 1, Symbol: 'A'},
	}
	if pairs := apriori.AdjacentPairs(nodes); len(pairs) != 0 {
		t.Errorf("diagonal nodes produced %d pairs; want 0", len(pairs))
	}
}
