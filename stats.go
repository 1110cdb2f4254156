package regroup

import "github.com/classmix/regroup/types"

// ComputeStatistics derives pairing statistics from a full schedule.
//
// The computation walks the round sequence from scratch rather than reusing
// any engine state, so it is a pure function of its input: calling it twice
// on the same schedule yields identical results, and it stays correct even
// for schedules that were modified after generation.
//
// Parameters:
//   - schedule: Ordered round sequence to analyze
//
// Returns:
//   - types.Stats: Aggregate pairing statistics
func ComputeStatistics(schedule types.Schedule) types.Stats {
	all := make(types.PairCounts)
	consecutive := 0

	var previous types.PairSet

	for i, round := range schedule {
		current := round.PairSet()

		for p := range current {
			all[p]++
		}

		if i > 0 {
			for p := range current {
				if previous.Contains(p) {
					consecutive++
				}
			}
		}

		previous = current
	}

	repeated := make(types.PairCounts)
	maxRepetitions := 0

	for p, count := range all {
		if count > maxRepetitions {
			maxRepetitions = count
		}

		if count > 1 {
			repeated[p] = count
		}
	}

	return types.Stats{
		TotalUniquePairs:    len(all),
		RepeatedPairs:       len(repeated),
		ConsecutiveRepeats:  consecutive,
		MaxRepetitions:      maxRepetitions,
		RepeatedPairDetails: repeated,
		AllPairsCount:       all,
	}
}
