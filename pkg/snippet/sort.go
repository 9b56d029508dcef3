package snippet

import "sort"

// SortByPriority orders compiled snippets with higher priority first. The
// sort is stable: snippets with equal priority keep their declaration
// order, and that ordering is part of the contract.
func SortByPriority(snippets []CompiledSnippet) {
	sort.SliceStable(snippets, func(i, j int) bool {
		return snippets[i].Priority > snippets[j].Priority
	})
}
