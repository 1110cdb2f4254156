package planner

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classmix/regroup"
)

func testConfig() regroup.Config {
	return regroup.Config{ItemCount: 9, GroupSize: 3, Rounds: 4, Seed: 11}
}

func TestPlanner_Plan(t *testing.T) {
	t.Run("rejects invalid config", func(t *testing.T) {
		p := New()

		_, err := p.Plan(regroup.Config{ItemCount: 1, GroupSize: 2, Rounds: 1})
		require.ErrorIs(t, err, regroup.ErrInvalidConfig)
	})

	t.Run("generates a complete plan", func(t *testing.T) {
		p := New()

		plan, err := p.Plan(testConfig())
		require.NoError(t, err)

		require.Len(t, plan.Schedule, 4)
		require.Equal(t, 1000, plan.Config.Search.MaxAttemptsPerRound, "defaults applied")
		require.NotNil(t, plan.Roster)
		require.Positive(t, plan.Stats.TotalUniquePairs)
	})

	t.Run("identical configs share one cached plan", func(t *testing.T) {
		p := New()

		first, err := p.Plan(testConfig())
		require.NoError(t, err)

		second, err := p.Plan(testConfig())
		require.NoError(t, err)

		require.Same(t, first, second)
	})

	t.Run("different configs get different plans", func(t *testing.T) {
		p := New()

		first, err := p.Plan(testConfig())
		require.NoError(t, err)

		other := testConfig()
		other.Rounds = 5

		second, err := p.Plan(other)
		require.NoError(t, err)

		require.NotSame(t, first, second)
		require.Len(t, second.Schedule, 5)
	})

	t.Run("concurrent requests settle on one plan", func(t *testing.T) {
		p := New()
		plans := make([]*Plan, 8)

		var wg sync.WaitGroup
		for i := range plans {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()

				plan, err := p.Plan(testConfig())
				require.NoError(t, err)
				plans[i] = plan
			}(i)
		}
		wg.Wait()

		for _, plan := range plans[1:] {
			require.Same(t, plans[0], plan)
		}
	})
}

func TestPlanner_Regenerate(t *testing.T) {
	p := New()

	first, err := p.Plan(testConfig())
	require.NoError(t, err)

	fresh, err := p.Regenerate(testConfig())
	require.NoError(t, err)

	require.NotSame(t, first, fresh, "regenerate must run a fresh engine")

	// The fresh plan replaces the cache entry.
	cached, err := p.Plan(testConfig())
	require.NoError(t, err)
	require.Same(t, fresh, cached)
}

func TestPlanner_Reset(t *testing.T) {
	p := New()

	first, err := p.Plan(testConfig())
	require.NoError(t, err)

	p.Reset()

	second, err := p.Plan(testConfig())
	require.NoError(t, err)

	require.NotSame(t, first, second)
}

func TestFingerprint(t *testing.T) {
	t.Run("stable for equal configs", func(t *testing.T) {
		require.Equal(t, Fingerprint(testConfig()), Fingerprint(testConfig()))
	})

	t.Run("sensitive to every generation field", func(t *testing.T) {
		base := testConfig()
		baseKey := Fingerprint(base)

		variants := map[string]regroup.Config{}

		v := base
		v.ItemCount = 10
		variants["itemCount"] = v

		v = base
		v.GroupSize = 4
		variants["groupSize"] = v

		v = base
		v.Rounds = 5
		variants["rounds"] = v

		v = base
		v.Seed = 12
		variants["seed"] = v

		v = base
		v.Labels = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
		variants["labels"] = v

		v = base
		v.Search.MaxAttemptsPerRound = 500
		variants["search budget"] = v

		for name, cfg := range variants {
			require.NotEqual(t, baseKey, Fingerprint(cfg), "field %s must affect the fingerprint", name)
		}
	})

	t.Run("label boundaries cannot collide", func(t *testing.T) {
		first := regroup.Config{ItemCount: 2, GroupSize: 2, Rounds: 1, Labels: []string{"ab", "c"}}
		second := regroup.Config{ItemCount: 2, GroupSize: 2, Rounds: 1, Labels: []string{"a", "bc"}}

		require.NotEqual(t, Fingerprint(first), Fingerprint(second))
	})
}
