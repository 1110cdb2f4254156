package types

import "sort"

// Group is one group of item indices within a round.
type Group []int

// Pairs enumerates every 2-combination of the group's members as canonical
// pairs.
//
// Returns:
//   - []Pair: All C(len, 2) pairs formed by the group
func (g Group) Pairs() []Pair {
	if len(g) < 2 {
		return nil
	}

	pairs := make([]Pair, 0, len(g)*(len(g)-1)/2)
	for i := 0; i < len(g); i++ {
		for j := i + 1; j < len(g); j++ {
			pairs = append(pairs, NewPair(g[i], g[j]))
		}
	}

	return pairs
}

// Round is the complete partition of all items into groups for one session.
// Every item index appears in exactly one group.
type Round []Group

// PairSet collects every pair present in any group of the round.
//
// Returns:
//   - PairSet: Set of all pairs formed in this round
func (r Round) PairSet() PairSet {
	set := NewPairSet()
	for _, g := range r {
		for _, p := range g.Pairs() {
			set.Add(p)
		}
	}

	return set
}

// GroupSizes returns the group sizes in descending order.
//
// Returns:
//   - []int: Sorted-descending sizes of the round's groups
func (r Round) GroupSizes() []int {
	sizes := make([]int, len(r))
	for i, g := range r {
		sizes[i] = len(g)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// GroupOf returns the group index containing the item, or -1 if the item is
// not present in the round.
//
// Parameters:
//   - item: Item index to look up
//
// Returns:
//   - int: Group index, or -1 when absent
func (r Round) GroupOf(item int) int {
	for gi, g := range r {
		for _, member := range g {
			if member == item {
				return gi
			}
		}
	}

	return -1
}

// Schedule is the ordered sequence of rounds produced by one generation run.
type Schedule []Round
