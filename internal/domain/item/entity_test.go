//go:build unit

package item_test

import (
	"testing"
	"time"

	"dartshop/internal/domain/item"
	"dartshop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ItemBuilder)
	errIs  error
}

func TestItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, item.StatusAvailable, actual.Status())
		assert.Nil(t, actual.PendingSince())
		assert.Nil(t, actual.ClaimedBy())
		assert.Equal(t, "Target", actual.Brand())
		assert.Equal(t, 22.0, actual.WeightGrams())
	})

	t.Run("type validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "barrel",
				mutate: func(b *builder.ItemBuilder) { b.Type = "barrel" },
			},
			{
				name:   "other",
				mutate: func(b *builder.ItemBuilder) { b.Type = "other" },
			},
			{
				name:   "unknown type",
				mutate: func(b *builder.ItemBuilder) { b.Type = "scoreboard" },
				errIs:  item.ErrInvalidType,
			},
			{
				name:   "empty type",
				mutate: func(b *builder.ItemBuilder) { b.Type = "" },
				errIs:  item.ErrInvalidType,
			},
		})
	})

	t.Run("condition validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "like new with space",
				mutate: func(b *builder.ItemBuilder) { b.Condition = "like new" },
			},
			{
				name:   "poor",
				mutate: func(b *builder.ItemBuilder) { b.Condition = "poor" },
			},
			{
				name:   "unknown condition",
				mutate: func(b *builder.ItemBuilder) { b.Condition = "mint" },
				errIs:  item.ErrInvalidCondition,
			},
		})
	})

	t.Run("required fields", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty brand",
				mutate: func(b *builder.ItemBuilder) { b.Brand = "" },
				errIs:  item.ErrBrandRequired,
			},
			{
				name:   "empty player",
				mutate: func(b *builder.ItemBuilder) { b.Player = "" },
				errIs:  item.ErrPlayerRequired,
			},
		})
	})

	t.Run("numeric bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.ItemBuilder) { b.Price = 0 },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ItemBuilder) { b.Price = -1 },
				errIs:  item.ErrNegativePrice,
			},
			{
				name:   "zero weight",
				mutate: func(b *builder.ItemBuilder) { b.WeightGrams = 0 },
			},
			{
				name:   "negative weight",
				mutate: func(b *builder.ItemBuilder) { b.WeightGrams = -18 },
				errIs:  item.ErrNegativeWeight,
			},
		})
	})
}

func TestReconstructItem(t *testing.T) {
	now := time.Now()
	id := uuid.New()
	orderID := uuid.New()

	t.Run("pending requires pending_since", func(t *testing.T) {
		_, err := item.ReconstructItem(
			id, item.TypeBarrel, "Target", "Phil Taylor", 22.0, item.ConditionGood,
			59.99, nil, "", nil, item.StatusPending, nil, &orderID, now, now,
		)
		require.ErrorIs(t, err, item.ErrStatusInvariant)
	})

	t.Run("available rejects pending_since", func(t *testing.T) {
		_, err := item.ReconstructItem(
			id, item.TypeBarrel, "Target", "Phil Taylor", 22.0, item.ConditionGood,
			59.99, nil, "", nil, item.StatusAvailable, &now, nil, now, now,
		)
		require.ErrorIs(t, err, item.ErrStatusInvariant)
	})

	t.Run("pending round trip", func(t *testing.T) {
		since := now.Add(-2 * time.Hour)
		it, err := item.ReconstructItem(
			id, item.TypeBarrel, "Target", "Phil Taylor", 22.0, item.ConditionGood,
			59.99, nil, "", nil, item.StatusPending, &since, &orderID, now, now,
		)
		require.NoError(t, err)
		assert.True(t, it.IsPending())
		require.NotNil(t, it.ClaimedBy())
		assert.Equal(t, orderID, *it.ClaimedBy())
	})
}

func TestHoldExpired(t *testing.T) {
	now := time.Now()
	id := uuid.New()
	orderID := uuid.New()
	ttl := 24 * time.Hour

	build := func(since time.Time) *item.Item {
		it, err := item.ReconstructItem(
			id, item.TypeBarrel, "Target", "Phil Taylor", 22.0, item.ConditionGood,
			59.99, nil, "", nil, item.StatusPending, &since, &orderID, now, now,
		)
		require.NoError(t, err)
		return it
	}

	t.Run("hold older than ttl is expired", func(t *testing.T) {
		it := build(now.Add(-25 * time.Hour))
		assert.True(t, it.HoldExpired(now, ttl))
	})

	t.Run("hold younger than ttl is not expired", func(t *testing.T) {
		it := build(now.Add(-23 * time.Hour))
		assert.False(t, it.HoldExpired(now, ttl))
	})

	t.Run("available item never expires", func(t *testing.T) {
		it, err := item.ReconstructItem(
			id, item.TypeBarrel, "Target", "Phil Taylor", 22.0, item.ConditionGood,
			59.99, nil, "", nil, item.StatusAvailable, nil, nil, now, now,
		)
		require.NoError(t, err)
		assert.False(t, it.HoldExpired(now, ttl))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
