// Package apriori mines spatial co-occurrence patterns on a slot-machine
// screen: connected, symbol-uniform clusters grown apriori-style from
// adjacent pairs up to a target size.
//
// What:
//
//   - Node: one screen cell — reel X, row Y, symbol.
//   - Group: an immutable node set with canonical set equality.
//   - AdjacentPairs: every orthogonally adjacent node pair, each exactly once.
//   - Prune: keeps only groups whose members share one symbol.
//   - Grow: size-k groups → size-k+1 groups via unions differing by one node.
//   - Mine: frequency bootstrap, seed pairs, then iterated Grow + Prune.
//
// Why:
//
//   - Slot-game analysis: enumerate every connected same-symbol cluster
//     of a given size on a screen.
//   - Frequent-pattern study: a compact apriori driver over a geometric
//     adjacency relation instead of transaction itemsets.
//
// Complexity:
//
//   - AdjacentPairs: O(n²) over n nodes.
//   - Prune: O(total member count).
//   - Grow: O(m²·k) for m input groups of size k — pairwise-combinatorial,
//     an accepted cost for screen-sized inputs (tens of nodes).
//   - Mine: minSupport−2 Grow/Prune stages over the above.
//
// Options:
//
//   - WithOnStage: observer hook fired after each pruned stage.
//
// Errors:
//
//   - ErrEmptyScreen: screen has no rows or no columns.
//   - ErrNonRectangular: screen rows differ in length.
//   - ErrSupportRange: minSupport below 1 or above the cell count.
package apriori
