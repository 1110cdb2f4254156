package regroup

import "fmt"

// SearchConfig controls the bounded partition search.
//
// The search loop tries random partitions until it finds one with zero
// conflicts against the previous round, gives up early once a good-enough
// candidate exists, or exhausts the attempt budget. The thresholds are
// deliberate performance/quality tradeoffs, not correctness knobs: changing
// them never changes which partitions are valid, only how hard the search
// works to avoid repeats.
type SearchConfig struct {
	// MaxAttemptsPerRound is the hard cap on candidate partitions tried per
	// round. The search always terminates within this budget.
	// Default: 1000.
	MaxAttemptsPerRound int `yaml:"maxAttemptsPerRound"`

	// EarlyExitAttempts is the attempt count after which a good-enough
	// candidate is accepted instead of continuing to search for a perfect
	// one. Default: 200.
	EarlyExitAttempts int `yaml:"earlyExitAttempts"`

	// EarlyExitScore is the conflict score considered good enough for the
	// early exit. An explicit zero is indistinguishable from unset and is
	// replaced by the default; a zero-conflict candidate is always returned
	// immediately regardless of this threshold. Default: 3.
	EarlyExitScore int `yaml:"earlyExitScore"`
}

// Config describes one generation run.
//
// A Config is validated once, before any group math occurs, and is not
// mutated afterward. All fields round-trip through YAML for file-based
// configuration.
type Config struct {
	// ItemCount is the number of items to partition. Must be at least 2.
	ItemCount int `yaml:"itemCount"`

	// GroupSize is the target group size. Every group in every round has
	// either GroupSize or GroupSize+1 members. Must be at least 2 and no
	// larger than ItemCount.
	GroupSize int `yaml:"groupSize"`

	// Rounds is the number of successive rounds to generate. Must be at
	// least 1.
	Rounds int `yaml:"rounds"`

	// Labels optionally maps item indices to display names. When provided,
	// its length must equal ItemCount exactly; order corresponds 1:1 to
	// item index.
	Labels []string `yaml:"labels,omitempty"`

	// Seed seeds the random source for reproducible schedules. Zero means
	// a fresh nondeterministic seed per engine.
	Seed int64 `yaml:"seed,omitempty"`

	// Search controls the bounded per-round partition search.
	Search SearchConfig `yaml:"search"`
}

// DefaultSearchConfig returns the default search budget.
//
// Returns:
//   - SearchConfig: Search configuration with default thresholds
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MaxAttemptsPerRound: 1000,
		EarlyExitAttempts:   200,
		EarlyExitScore:      3,
	}
}

// SetDefaults fills in missing search thresholds with their defaults.
//
// Only the search budget has defaults; ItemCount, GroupSize and Rounds are
// required inputs and are left untouched for Validate to reject.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultSearchConfig()

	if cfg.Search.MaxAttemptsPerRound == 0 {
		cfg.Search.MaxAttemptsPerRound = defaults.MaxAttemptsPerRound
	}
	if cfg.Search.EarlyExitAttempts == 0 {
		cfg.Search.EarlyExitAttempts = defaults.EarlyExitAttempts
	}
	if cfg.Search.EarlyExitScore == 0 {
		cfg.Search.EarlyExitScore = defaults.EarlyExitScore
	}
}

// Validate checks configuration constraints and returns an error for
// invalid values.
//
// Rules are checked in order and fail independently, each wrapping
// ErrInvalidConfig with a message naming the violated constraint and the
// offending value(s):
//  1. ItemCount >= 2
//  2. GroupSize >= 2
//  3. GroupSize <= ItemCount
//  4. Rounds >= 1
//  5. len(Labels) == ItemCount when labels are provided
//  6. ItemCount mod GroupSize <= ItemCount div GroupSize, so remainder
//     items can be absorbed one per group
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.ItemCount < 2 {
		return fmt.Errorf("%w: need at least 2 items, got %d", ErrInvalidConfig, cfg.ItemCount)
	}

	if cfg.GroupSize < 2 {
		return fmt.Errorf("%w: group size must be at least 2, got %d", ErrInvalidConfig, cfg.GroupSize)
	}

	if cfg.GroupSize > cfg.ItemCount {
		return fmt.Errorf(
			"%w: group size cannot exceed item count (%d > %d)",
			ErrInvalidConfig, cfg.GroupSize, cfg.ItemCount,
		)
	}

	if cfg.Rounds < 1 {
		return fmt.Errorf("%w: need at least 1 round, got %d", ErrInvalidConfig, cfg.Rounds)
	}

	if len(cfg.Labels) > 0 && len(cfg.Labels) != cfg.ItemCount {
		return fmt.Errorf(
			"%w: label count (%d) must match item count (%d)",
			ErrInvalidConfig, len(cfg.Labels), cfg.ItemCount,
		)
	}

	// Remainder items are absorbed one per group; more remainder items than
	// groups would leave items unassigned.
	if cfg.ItemCount%cfg.GroupSize > cfg.ItemCount/cfg.GroupSize {
		return fmt.Errorf(
			"%w: %d items cannot be split into groups of size %d or %d",
			ErrInvalidConfig, cfg.ItemCount, cfg.GroupSize, cfg.GroupSize+1,
		)
	}

	if cfg.Search.MaxAttemptsPerRound < 0 || cfg.Search.EarlyExitAttempts < 0 || cfg.Search.EarlyExitScore < 0 {
		return fmt.Errorf("%w: search thresholds must not be negative", ErrInvalidConfig)
	}

	return nil
}

// ExpectedGroupSizes returns the group sizes every round of this
// configuration will exhibit, sorted descending.
//
// The size multiset is a deterministic function of ItemCount and GroupSize:
// floor(ItemCount/GroupSize) groups, of which ItemCount mod GroupSize
// receive one extra member. Which physical groups receive the extra member
// is randomized per round; the multiset never changes.
//
// Returns:
//   - []int: Descending group sizes (e.g. [4 3] for 7 items in groups of 3)
func (cfg *Config) ExpectedGroupSizes() []int {
	base := cfg.ItemCount / cfg.GroupSize
	remainder := cfg.ItemCount % cfg.GroupSize

	sizes := make([]int, base)
	for i := range sizes {
		sizes[i] = cfg.GroupSize
		if i < remainder {
			sizes[i]++
		}
	}

	return sizes
}
