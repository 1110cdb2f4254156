package types

// Stats summarizes cross-round pairing behavior for a full schedule.
//
// Stats is a pure derivation of the schedule it was computed from: it is
// recomputed by walking the round sequence rather than read from engine
// state, so it stays correct no matter what happened during the search.
type Stats struct {
	// TotalUniquePairs is the number of distinct pairs formed at least once.
	TotalUniquePairs int `json:"totalUniquePairs"`

	// RepeatedPairs is the number of distinct pairs formed more than once
	// across the whole schedule.
	RepeatedPairs int `json:"repeatedPairs"`

	// ConsecutiveRepeats counts pairs that appear in two adjacent rounds,
	// summed over all adjacent round boundaries.
	ConsecutiveRepeats int `json:"consecutiveRepeats"`

	// MaxRepetitions is the highest occurrence count of any single pair.
	MaxRepetitions int `json:"maxRepetitions"`

	// RepeatedPairDetails maps each repeated pair to its occurrence count.
	RepeatedPairDetails PairCounts `json:"repeatedPairDetails"`

	// AllPairsCount maps every pair ever formed to its occurrence count.
	AllPairsCount PairCounts `json:"allPairsCount"`
}
