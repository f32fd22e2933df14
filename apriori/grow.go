package apriori

// Grow combines size-k groups into size-k+1 groups. For every unordered
// pair of distinct input groups it forms the union and accepts it only
// when the union holds exactly one node more than its sources — the two
// groups differ by a single node — and an equal node-set has not been
// accepted already. Growth is symmetric and deduplication is set-based:
// any permutation of the same nodes is the same group, and no accepted
// union is ever smaller than k+1.
//
// Fewer than two input groups yield an empty list.
//
// Time: O(m²·k) for m input groups of size k. The seen-key index keeps
// each dedup probe at O(k) without changing the accepted set relative
// to a linear membership scan.
func Grow(groups []Group) []Group {
	var grown []Group
	seen := make(map[string]struct{})

	for i := 0; i < len(groups); i++ {
		target := groups[i].Len() + 1
		for j := i + 1; j < len(groups); j++ {
			u := union(groups[i], groups[j])
			if u.Len() != target {
				continue
			}
			key := u.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			grown = append(grown, u)
		}
	}

	return grown
}
