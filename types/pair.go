package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Pair is an unordered 2-combination of item indices, canonicalized so that
// A < B. Pairs are the unit of conflict tracking: two items that share a
// group in a round form a pair for that round.
type Pair struct {
	// A is the smaller item index.
	A int `json:"a"`

	// B is the larger item index.
	B int `json:"b"`
}

// NewPair builds a canonical pair from two item indices in any order.
//
// Parameters:
//   - a: First item index
//   - b: Second item index
//
// Returns:
//   - Pair: Canonical pair with the smaller index first
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// String returns the canonical "a-b" form of the pair.
func (p Pair) String() string {
	return strconv.Itoa(p.A) + "-" + strconv.Itoa(p.B)
}

// Compare orders pairs by first index, then by second index.
//
// Returns:
//   - int: -1 if p < q, 0 if equal, +1 if p > q
func (p Pair) Compare(q Pair) int {
	switch {
	case p.A != q.A:
		if p.A < q.A {
			return -1
		}

		return 1
	case p.B != q.B:
		if p.B < q.B {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// ParsePair parses the canonical "a-b" form produced by Pair.String.
//
// Parameters:
//   - s: String in "a-b" form
//
// Returns:
//   - Pair: Parsed canonical pair
//   - error: Parse error for malformed input
func ParsePair(s string) (Pair, error) {
	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return Pair{}, fmt.Errorf("malformed pair %q", s)
	}

	a, err := strconv.Atoi(left)
	if err != nil {
		return Pair{}, fmt.Errorf("malformed pair %q: %w", s, err)
	}

	b, err := strconv.Atoi(right)
	if err != nil {
		return Pair{}, fmt.Errorf("malformed pair %q: %w", s, err)
	}

	return NewPair(a, b), nil
}

// PairSet is a membership set of canonical pairs.
type PairSet map[Pair]struct{}

// NewPairSet creates an empty pair set.
func NewPairSet() PairSet {
	return make(PairSet)
}

// Add inserts a pair into the set.
func (s PairSet) Add(p Pair) {
	s[p] = struct{}{}
}

// Contains reports whether the pair is in the set.
func (s PairSet) Contains(p Pair) bool {
	_, ok := s[p]

	return ok
}

// PairCounts maps canonical pairs to occurrence counts.
//
// JSON encoding uses the pair's "a-b" string form as the object key, since
// JSON objects cannot be keyed by structs.
type PairCounts map[Pair]int

// Clone returns a shallow copy of the counts map.
//
// Returns:
//   - PairCounts: Independent copy (nil input yields nil)
func (c PairCounts) Clone() PairCounts {
	if c == nil {
		return nil
	}

	out := make(PairCounts, len(c))
	for p, n := range c {
		out[p] = n
	}

	return out
}

// SortedPairs returns the pairs in canonical ascending order.
//
// Returns:
//   - []Pair: Pairs sorted by Pair.Compare
func (c PairCounts) SortedPairs() []Pair {
	pairs := make([]Pair, 0, len(c))
	for p := range c {
		pairs = append(pairs, p)
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Compare(pairs[j]) < 0 })

	return pairs
}

// MarshalJSON encodes the counts as an object keyed by "a-b" pair strings.
func (c PairCounts) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(c))
	for p, n := range c {
		out[p.String()] = n
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes an object keyed by "a-b" pair strings.
func (c *PairCounts) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(PairCounts, len(raw))

	for s, n := range raw {
		p, err := ParsePair(s)
		if err != nil {
			return err
		}

		out[p] = n
	}

	*c = out

	return nil
}
