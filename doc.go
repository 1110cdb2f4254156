// Package regroup assigns a fixed population of items into groups across
// successive rounds, avoiding pairings that repeat from the immediately
// previous round.
//
// Regroup is built for session planning (classroom groupings, standup
// pods, workshop tables) where back-to-back repetition is undesirable but
// long-range repetition is acceptable. Each round's partition is found by
// bounded randomized search: shuffle, slice into properly sized groups,
// score against the previous round's pairs, retry until conflict-free or
// the budget runs out.
//
// # Quick Start
//
//	cfg := regroup.Config{
//	    ItemCount: 12,
//	    GroupSize: 4,
//	    Rounds:    6,
//	}
//
//	eng, err := regroup.NewEngine(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schedule := eng.Generate()
//	stats := regroup.ComputeStatistics(schedule)
//	fmt.Println(stats.ConsecutiveRepeats) // 0 unless unavoidable
//
// # Key Properties
//
//   - Exact cover: every item appears in exactly one group per round
//   - Stable sizing: every round has the same group-size multiset, with
//     ItemCount mod GroupSize groups carrying one extra member
//   - Bounded search: generation always terminates and always returns a
//     schedule, degrading to a minimal-conflict partition when a
//     conflict-free one cannot be found within the budget
//   - Reproducibility: a non-zero Config.Seed makes runs deterministic
//
// # Supporting Packages
//
//   - roster: display labels for item indices
//   - planner: concurrency-safe facade with plan caching
//   - export: spreadsheet and CSV artifacts for a schedule
//   - httpapi: JSON API over the planner
//
// See the examples/ directory for complete working examples.
package regroup
