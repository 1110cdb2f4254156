// Package planner provides a concurrency-safe facade over the engine for
// presentation layers.
//
// A Planner validates requests, runs a fresh engine per generation, and
// caches completed plans by configuration fingerprint so that concurrent
// callers asking for the same plan share one result.
package planner

import (
	"encoding/binary"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/zeebo/xxh3"

	"github.com/classmix/regroup"
	"github.com/classmix/regroup/internal/logger"
	"github.com/classmix/regroup/internal/metrics"
	"github.com/classmix/regroup/roster"
	"github.com/classmix/regroup/types"
)

// Plan is one completed generation: the configuration it was produced
// from, the schedule, derived statistics, and the display roster.
//
// A Plan is read-only once returned; a new generation request produces a
// new Plan.
type Plan struct {
	// Config is the validated configuration, with defaults applied.
	Config regroup.Config

	// Schedule is the full ordered round sequence.
	Schedule types.Schedule

	// Stats is the pairing statistics derived from Schedule.
	Stats types.Stats

	// Roster resolves item indices to display names.
	Roster *roster.Roster
}

// Planner validates, generates and caches plans.
//
// All methods are safe for concurrent use. Each generation uses a fresh
// engine instance; only the finished, immutable Plan is shared.
type Planner struct {
	cache   *xsync.Map[uint64, *Plan]
	logger  types.Logger
	metrics types.Collector
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets a logger.
//
// Parameters:
//   - log: Logger implementation
//
// Returns:
//   - Option: Functional option for New
func WithLogger(log types.Logger) Option {
	return func(p *Planner) {
		p.logger = log
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - collector: Collector implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(collector types.Collector) Option {
	return func(p *Planner) {
		p.metrics = collector
	}
}

// New creates a Planner with an empty plan cache.
//
// Parameters:
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *Planner: Initialized planner
//
// Example:
//
//	p := planner.New(planner.WithLogger(logging.NewSlogDefault()))
//	plan, err := p.Plan(regroup.Config{ItemCount: 12, GroupSize: 4, Rounds: 6})
func New(opts ...Option) *Planner {
	p := &Planner{
		cache:   xsync.NewMap[uint64, *Plan](),
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Plan returns the plan for a configuration, generating it on first
// request.
//
// Identical configurations (same fingerprint) share one committed plan, so
// a repeated request is idempotent even when the configuration is
// unseeded. Use Regenerate to force a fresh draw.
//
// Parameters:
//   - cfg: Run configuration (validated here; fails fast)
//
// Returns:
//   - *Plan: The cached or freshly generated plan
//   - error: Validation error wrapping regroup.ErrInvalidConfig
func (p *Planner) Plan(cfg regroup.Config) (*Plan, error) {
	regroup.SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := Fingerprint(cfg)

	if plan, ok := p.cache.Load(key); ok {
		p.metrics.RecordPlanCacheLookup(true)

		return plan, nil
	}

	p.metrics.RecordPlanCacheLookup(false)

	plan, err := p.generate(cfg)
	if err != nil {
		return nil, err
	}

	// First writer wins; concurrent generations of the same config settle
	// on a single shared plan.
	actual, _ := p.cache.LoadOrStore(key, plan)

	return actual, nil
}

// Regenerate discards any cached plan for the configuration and generates
// a fresh one.
//
// Parameters:
//   - cfg: Run configuration (validated here; fails fast)
//
// Returns:
//   - *Plan: The freshly generated plan, now cached
//   - error: Validation error wrapping regroup.ErrInvalidConfig
func (p *Planner) Regenerate(cfg regroup.Config) (*Plan, error) {
	regroup.SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plan, err := p.generate(cfg)
	if err != nil {
		return nil, err
	}

	p.cache.Store(Fingerprint(cfg), plan)

	return plan, nil
}

// Reset drops every cached plan.
func (p *Planner) Reset() {
	p.cache.Clear()
}

func (p *Planner) generate(cfg regroup.Config) (*Plan, error) {
	eng, err := regroup.NewEngine(cfg,
		regroup.WithLogger(p.logger),
		regroup.WithMetrics(p.metrics),
	)
	if err != nil {
		return nil, err
	}

	schedule := eng.Generate()
	stats := regroup.ComputeStatistics(schedule)

	p.logger.Info("plan generated",
		"items", cfg.ItemCount,
		"groupSize", cfg.GroupSize,
		"rounds", cfg.Rounds,
		"consecutiveRepeats", stats.ConsecutiveRepeats,
	)

	return &Plan{
		Config:   eng.Config(),
		Schedule: schedule,
		Stats:    stats,
		Roster:   roster.New(cfg.Labels),
	}, nil
}

// Fingerprint computes a stable 64-bit fingerprint of a configuration.
//
// Two configurations produce the same fingerprint exactly when every
// field that influences generation is equal: counts, search thresholds,
// seed, and the ordered label sequence. Labels are length-prefixed so that
// concatenation ambiguity cannot collide.
//
// Parameters:
//   - cfg: Configuration to fingerprint
//
// Returns:
//   - uint64: xxh3 hash of the canonical encoding
func Fingerprint(cfg regroup.Config) uint64 {
	buf := make([]byte, 0, 64+len(cfg.Labels)*16)

	appendInt := func(v int64) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}

	appendInt(int64(cfg.ItemCount))
	appendInt(int64(cfg.GroupSize))
	appendInt(int64(cfg.Rounds))
	appendInt(cfg.Seed)
	appendInt(int64(cfg.Search.MaxAttemptsPerRound))
	appendInt(int64(cfg.Search.EarlyExitAttempts))
	appendInt(int64(cfg.Search.EarlyExitScore))

	appendInt(int64(len(cfg.Labels)))
	for _, label := range cfg.Labels {
		appendInt(int64(len(label)))
		buf = append(buf, label...)
	}

	return xxh3.Hash(buf)
}
