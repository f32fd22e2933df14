package apriori

// Prune filters groups down to those whose members all carry the same
// symbol. Survivor order matches input order; the input slice is left
// untouched. Pruning is idempotent: a pruned collection passes through
// unchanged, and an empty input yields an empty output.
//
// Time: O(total member count). Memory: O(survivors).
func Prune(groups []Group) []Group {
	var kept []Group
	for _, g := range groups {
		if g.Uniform() {
			kept = append(kept, g)
		}
	}

	return kept
}
