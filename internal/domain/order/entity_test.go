//go:build unit

package order_test

import (
	"testing"

	"dartshop/internal/domain/order"
	"dartshop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, order.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.Equal(t, order.DefaultPaymentHandle, actual.PaymentHandle())
		assert.Len(t, actual.ItemIDs(), 2)
	})

	t.Run("item set validation", func(t *testing.T) {
		dup := uuid.New()
		runCases(t, []testCase{
			{
				name:   "single item",
				mutate: func(b *builder.OrderBuilder) { b.ItemIDs = []uuid.UUID{uuid.New()} },
			},
			{
				name:   "empty item set",
				mutate: func(b *builder.OrderBuilder) { b.ItemIDs = nil },
				errIs:  order.ErrEmptyItems,
			},
			{
				name:   "duplicate items",
				mutate: func(b *builder.OrderBuilder) { b.ItemIDs = []uuid.UUID{dup, dup} },
				errIs:  order.ErrDuplicateItems,
			},
		})
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty buyer name",
				mutate: func(b *builder.OrderBuilder) { b.BuyerName = "" },
				errIs:  order.ErrBuyerNameRequired,
			},
			{
				name:   "empty shipping address",
				mutate: func(b *builder.OrderBuilder) { b.ShippingAddress = "" },
				errIs:  order.ErrShippingRequired,
			},
		})
	})

	t.Run("payment method validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "paypal",
				mutate: func(b *builder.OrderBuilder) { b.PaymentMethod = "paypal" },
			},
			{
				name:   "cashapp",
				mutate: func(b *builder.OrderBuilder) { b.PaymentMethod = "cashapp" },
			},
			{
				name:   "unsupported method",
				mutate: func(b *builder.OrderBuilder) { b.PaymentMethod = "zelle" },
				errIs:  order.ErrInvalidPaymentMethod,
			},
		})
	})

	t.Run("custom payment handle", func(t *testing.T) {
		handle := "@alex-darts"
		actual, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.PaymentHandle = &handle
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, handle, actual.PaymentHandle())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()

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
