package regroup

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultSearchConfig(t *testing.T) {
	cfg := DefaultSearchConfig()

	require.Equal(t, 1000, cfg.MaxAttemptsPerRound)
	require.Equal(t, 200, cfg.EarlyExitAttempts)
	require.Equal(t, 3, cfg.EarlyExitScore)
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills empty search thresholds", func(t *testing.T) {
		cfg := Config{ItemCount: 10, GroupSize: 3, Rounds: 4}
		SetDefaults(&cfg)

		require.Equal(t, 1000, cfg.Search.MaxAttemptsPerRound)
		require.Equal(t, 200, cfg.Search.EarlyExitAttempts)
		require.Equal(t, 3, cfg.Search.EarlyExitScore)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			ItemCount: 10,
			GroupSize: 3,
			Rounds:    4,
			Search: SearchConfig{
				MaxAttemptsPerRound: 50,
				EarlyExitAttempts:   10,
				EarlyExitScore:      1,
			},
		}
		SetDefaults(&cfg)

		require.Equal(t, 50, cfg.Search.MaxAttemptsPerRound)
		require.Equal(t, 10, cfg.Search.EarlyExitAttempts)
		require.Equal(t, 1, cfg.Search.EarlyExitScore)
	})

	t.Run("explicit zero score is treated as unset", func(t *testing.T) {
		cfg := Config{
			ItemCount: 10,
			GroupSize: 3,
			Rounds:    4,
			Search: SearchConfig{
				MaxAttemptsPerRound: 50,
				EarlyExitAttempts:   10,
			},
		}
		SetDefaults(&cfg)

		require.Equal(t, 3, cfg.Search.EarlyExitScore)
	})

	t.Run("does not invent required fields", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Zero(t, cfg.ItemCount)
		require.Zero(t, cfg.GroupSize)
		require.Zero(t, cfg.Rounds)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{ItemCount: 10, GroupSize: 3, Rounds: 4}

	t.Run("accepts valid config", func(t *testing.T) {
		cfg := valid
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects fewer than 2 items", func(t *testing.T) {
		cfg := valid
		cfg.ItemCount = 1

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "need at least 2 items")
	})

	t.Run("rejects group size below 2", func(t *testing.T) {
		cfg := valid
		cfg.GroupSize = 1

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "group size must be at least 2")
	})

	t.Run("rejects group size above item count", func(t *testing.T) {
		cfg := valid
		cfg.ItemCount = 4
		cfg.GroupSize = 5

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "group size cannot exceed item count")
	})

	t.Run("rejects zero rounds", func(t *testing.T) {
		cfg := valid
		cfg.Rounds = 0

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "need at least 1 round")
	})

	t.Run("rejects label count mismatch naming both counts", func(t *testing.T) {
		cfg := Config{
			ItemCount: 4,
			GroupSize: 2,
			Rounds:    1,
			Labels:    []string{"A", "B", "C"},
		}

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "3")
		require.ErrorContains(t, err, "4")
	})

	t.Run("accepts matching labels", func(t *testing.T) {
		cfg := Config{
			ItemCount: 4,
			GroupSize: 2,
			Rounds:    1,
			Labels:    []string{"A", "B", "C", "D"},
		}

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects remainder larger than group count", func(t *testing.T) {
		// 10 items in groups of 6: one base group plus 4 leftover items that
		// no group of size 6 or 7 can absorb.
		cfg := Config{ItemCount: 10, GroupSize: 6, Rounds: 1}

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "cannot be split into groups of size 6 or 7")
	})

	t.Run("rejects negative search thresholds", func(t *testing.T) {
		cfg := valid
		cfg.Search.MaxAttemptsPerRound = -1

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("checks rules in order", func(t *testing.T) {
		// Multiple violations: the item-count rule fires first.
		cfg := Config{ItemCount: 0, GroupSize: 0, Rounds: 0}

		err := cfg.Validate()
		require.ErrorContains(t, err, "need at least 2 items")
	})
}

func TestConfig_ExpectedGroupSizes(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		groupSize int
		want      []int
	}{
		{"even split", 6, 3, []int{3, 3}},
		{"one remainder group", 7, 3, []int{4, 3}},
		{"two remainder groups", 11, 3, []int{4, 4, 3}},
		{"single group", 5, 5, []int{5}},
		{"pairs", 8, 2, []int{2, 2, 2, 2}},
		{"minimum", 2, 2, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ItemCount: tt.itemCount, GroupSize: tt.groupSize, Rounds: 1}

			require.Equal(t, tt.want, cfg.ExpectedGroupSizes())
		})
	}
}

// TestConfig_YAML demonstrates that Config round-trips through YAML for
// file-based configuration.
func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
itemCount: 12
groupSize: 4
rounds: 6
labels:
  - Ada
  - Ben
seed: 7
search:
  maxAttemptsPerRound: 500
  earlyExitAttempts: 100
  earlyExitScore: 2
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, 12, cfg.ItemCount)
	require.Equal(t, 4, cfg.GroupSize)
	require.Equal(t, 6, cfg.Rounds)
	require.Equal(t, []string{"Ada", "Ben"}, cfg.Labels)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 500, cfg.Search.MaxAttemptsPerRound)
	require.Equal(t, 100, cfg.Search.EarlyExitAttempts)
	require.Equal(t, 2, cfg.Search.EarlyExitScore)
}
