package regroup

import "github.com/classmix/regroup/types"

// Re-exported types from the types package for API convenience, so callers
// only need the root import for common usage.

// Pair is an unordered 2-combination of item indices. See types.Pair.
type Pair = types.Pair

// PairSet is a membership set of canonical pairs. See types.PairSet.
type PairSet = types.PairSet

// PairCounts maps pairs to occurrence counts. See types.PairCounts.
type PairCounts = types.PairCounts

// Group is one group of item indices within a round. See types.Group.
type Group = types.Group

// Round is the complete partition of all items for one session. See
// types.Round.
type Round = types.Round

// Schedule is the ordered sequence of rounds produced by one generation
// run. See types.Schedule.
type Schedule = types.Schedule

// Stats summarizes cross-round pairing behavior. See types.Stats.
type Stats = types.Stats

// Logger defines methods for structured logging. See types.Logger.
type Logger = types.Logger

// Collector defines methods for recording metrics. See types.Collector.
type Collector = types.Collector

// NewPair builds a canonical pair from two item indices in any order.
func NewPair(a, b int) Pair {
	return types.NewPair(a, b)
}
