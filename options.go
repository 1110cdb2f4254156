package regroup

import (
	"math/rand"

	"github.com/classmix/regroup/types"
)

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger  types.Logger
	metrics types.Collector
	hooks   *Hooks
	rng     *rand.Rand
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	eng, err := regroup.NewEngine(cfg, regroup.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: Collector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "regroup")
//	eng, err := regroup.NewEngine(cfg, regroup.WithMetrics(collector))
func WithMetrics(metrics types.Collector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	hooks := &regroup.Hooks{
//	    OnRoundGenerated: func(round, attempts, conflicts int) {
//	        progress.Update(round)
//	    },
//	}
//	eng, err := regroup.NewEngine(cfg, regroup.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithRand injects the random source used for partition shuffles.
//
// Overrides the Config.Seed-derived source. Intended for deterministic
// tests that need full control over the shuffle sequence.
//
// Parameters:
//   - rng: Random source for the engine's shuffles
//
// Returns:
//   - Option: Functional option for NewEngine
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

// Hooks defines callbacks for generation events.
//
// All hooks are optional. Unlike long-running coordinators, generation is
// synchronous and single-threaded, so hooks are invoked inline from
// Generate; a slow hook slows the run.
type Hooks struct {
	// OnRoundGenerated is called after each round's partition is committed.
	// round is zero-based; attempts and conflicts describe the search
	// outcome for that round.
	OnRoundGenerated func(round, attempts, conflicts int)
}
