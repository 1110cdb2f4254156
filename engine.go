package regroup

import (
	"math"
	"math/rand"
	"time"

	"github.com/classmix/regroup/internal/logger"
	"github.com/classmix/regroup/internal/metrics"
	"github.com/classmix/regroup/types"
)

// Engine produces a multi-round schedule for one validated configuration.
//
// Each round's partition is found by randomized search: shuffle the items,
// slice them into properly sized groups, score the result against the
// immediately previous round's pairs, and retry within a bounded budget
// until the score is zero or the budget runs out. Only the previous round
// constrains the search; older rounds are remembered solely for statistics.
//
// Lifecycle:
//   - Create with NewEngine (validates the configuration, fails fast)
//   - Call Generate exactly once per schedule
//   - Create a fresh Engine for a new configuration or a new draw
//
// An Engine is not safe for concurrent use: the random source and the
// rolling pair history are unsynchronized by design, since generation is a
// single synchronous computation.
type Engine struct {
	cfg     Config
	rng     *rand.Rand
	logger  types.Logger
	metrics types.Collector
	hooks   *Hooks
}

// history is the rolling state threaded through the round loop.
//
// previous holds only the immediately preceding round's pairs and is
// rebuilt from scratch on every commit; counts accumulates across all
// rounds and feeds statistics only, never the conflict decision.
type history struct {
	previous types.PairSet
	counts   types.PairCounts
}

func newHistory() *history {
	return &history{
		previous: types.NewPairSet(),
		counts:   make(types.PairCounts),
	}
}

// commit replaces the previous-round pair set with the given round's pairs
// and folds them into the cumulative counts. Called exactly once per round,
// after the round is finalized and before the next search begins.
func (h *history) commit(r types.Round) {
	h.previous = types.NewPairSet()

	for _, g := range r {
		for _, p := range g.Pairs() {
			h.previous.Add(p)
			h.counts[p]++
		}
	}
}

// NewEngine creates an Engine bound to the given configuration.
//
// Missing search thresholds are filled with defaults, then the
// configuration is validated; any rule violation fails here, before any
// group math occurs. The random source derives from cfg.Seed (zero seeds
// from the clock) unless WithRand overrides it.
//
// Parameters:
//   - cfg: Run configuration (copied; the caller's value is not retained)
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks, WithRand)
//
// Returns:
//   - *Engine: Engine ready for one Generate call
//   - error: Validation error wrapping ErrInvalidConfig
//
// Example:
//
//	cfg := regroup.Config{ItemCount: 12, GroupSize: 4, Rounds: 6}
//	eng, err := regroup.NewEngine(cfg)
//	if err != nil {
//	    return err
//	}
//	schedule := eng.Generate()
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}
	if options.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		options.rng = rand.New(rand.NewSource(seed))
	}

	return &Engine{
		cfg:     cfg,
		rng:     options.rng,
		logger:  options.logger,
		metrics: options.metrics,
		hooks:   options.hooks,
	}, nil
}

// Config returns the engine's validated configuration, with defaults
// applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// Generate produces the full ordered schedule for the configured number of
// rounds.
//
// Generate is total: the bounded search always commits some partition for
// every round, silently degrading to a higher conflict count when the
// attempt budget runs out without a conflict-free candidate (which is
// unavoidable for configurations with few valid partitions, e.g. two items
// in one group of two).
//
// Returns:
//   - types.Schedule: One partition per round, in round order
func (e *Engine) Generate() types.Schedule {
	start := time.Now()
	schedule := make(types.Schedule, 0, e.cfg.Rounds)
	hist := newHistory()

	for round := 0; round < e.cfg.Rounds; round++ {
		partition, attempts, conflicts := e.searchRound(hist.previous)

		schedule = append(schedule, partition)
		hist.commit(partition)

		e.metrics.RecordRoundGenerated(attempts, conflicts)
		e.logger.Debug("round committed",
			"round", round+1,
			"attempts", attempts,
			"conflicts", conflicts,
		)

		if conflicts > 0 {
			e.logger.Warn("round carries conflicts with previous round",
				"round", round+1,
				"conflicts", conflicts,
			)
		}

		if e.hooks != nil && e.hooks.OnRoundGenerated != nil {
			e.hooks.OnRoundGenerated(round, attempts, conflicts)
		}
	}

	e.metrics.RecordGenerateDuration(time.Since(start).Seconds())

	return schedule
}

// searchRound runs the bounded retry loop for one round.
//
// Exit conditions, in priority order:
//  1. A candidate scores zero: return it immediately.
//  2. More than EarlyExitAttempts tried and the best score so far is at
//     most EarlyExitScore: accept the best candidate.
//  3. Budget exhausted: return the best candidate seen (first-seen wins
//     ties, via strictly-less-than replacement).
//
// The final fallback generates one fresh partition unconditionally, so the
// search always returns a valid partition.
func (e *Engine) searchRound(previous types.PairSet) (types.Round, int, int) {
	var best types.Round
	bestScore := math.MaxInt

	for attempt := 1; attempt <= e.cfg.Search.MaxAttemptsPerRound; attempt++ {
		candidate := e.createPartition()

		score := scoreRound(candidate, previous)
		if score == 0 {
			return candidate, attempt, 0
		}

		if score < bestScore {
			bestScore = score
			best = candidate
		}

		if attempt > e.cfg.Search.EarlyExitAttempts && bestScore <= e.cfg.Search.EarlyExitScore {
			return best, attempt, bestScore
		}
	}

	if best == nil {
		best = e.createPartition()
		bestScore = scoreRound(best, previous)
	}

	return best, e.cfg.Search.MaxAttemptsPerRound, bestScore
}

// createPartition shuffles the item indices uniformly and slices them into
// groups. The first (ItemCount mod GroupSize) groups absorb one extra item
// each, so every round carries the same size multiset.
func (e *Engine) createPartition() types.Round {
	items := make([]int, e.cfg.ItemCount)
	for i := range items {
		items[i] = i
	}

	e.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	base := e.cfg.ItemCount / e.cfg.GroupSize
	remainder := e.cfg.ItemCount % e.cfg.GroupSize

	round := make(types.Round, 0, base)
	start := 0

	for g := 0; g < base; g++ {
		size := e.cfg.GroupSize
		if g < remainder {
			size++
		}

		group := make(types.Group, size)
		copy(group, items[start:start+size])
		round = append(round, group)
		start += size
	}

	return round
}

// scoreRound counts the candidate's pairs that also appear in the previous
// round's pair set. Zero for the first round, where the set is empty.
func scoreRound(candidate types.Round, previous types.PairSet) int {
	if len(previous) == 0 {
		return 0
	}

	conflicts := 0

	for _, g := range candidate {
		for _, p := range g.Pairs() {
			if previous.Contains(p) {
				conflicts++
			}
		}
	}

	return conflicts
}
