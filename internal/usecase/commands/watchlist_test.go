//go:build unit

package commands_test

import (
	"context"
	"testing"

	reqdto "dartshop/internal/handler/dto/request"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchlistFixture() (*fakeUoW, commands.WatchlistCommands) {
	uow := newFakeUoW()
	uc := commands.NewWatchlistUseCase(uow, &fakeInventoryQueries{uow: uow})
	return uow, uc
}

func TestWatch_AddsEntry(t *testing.T) {
	uow, uc := newWatchlistFixture()
	itemID := uuid.New()
	uow.state.addAvailableItem(itemID)

	err := uc.Watch(context.Background(), reqdto.AddWatchRequest{
		BuyerName:       "Alex Johnson",
		ShippingAddress: "123 Oche Lane",
		ItemID:          itemID,
	})
	require.NoError(t, err)
	require.Len(t, uow.state.watches, 1)
	assert.Equal(t, "Alex Johnson", uow.state.watches[0].buyerName)
}

func TestWatch_SameBuyerUpdatesAddress(t *testing.T) {
	uow, uc := newWatchlistFixture()
	itemID := uuid.New()
	uow.state.addAvailableItem(itemID)

	for _, addr := range []string{"old address", "new address"} {
		err := uc.Watch(context.Background(), reqdto.AddWatchRequest{
			BuyerName:       "Alex Johnson",
			ShippingAddress: addr,
			ItemID:          itemID,
		})
		require.NoError(t, err)
	}

	require.Len(t, uow.state.watches, 1)
	assert.Equal(t, "new address", uow.state.watches[0].shippingAddress)
}

func TestWatch_UnknownItem(t *testing.T) {
	_, uc := newWatchlistFixture()

	err := uc.Watch(context.Background(), reqdto.AddWatchRequest{
		BuyerName:       "Alex Johnson",
		ShippingAddress: "123 Oche Lane",
		ItemID:          uuid.New(),
	})
	require.ErrorIs(t, err, errs.ErrItemNotFound)
}

func TestUnwatch(t *testing.T) {
	uow, uc := newWatchlistFixture()
	itemID := uuid.New()
	uow.state.addAvailableItem(itemID)

	req := reqdto.AddWatchRequest{
		BuyerName:       "Alex Johnson",
		ShippingAddress: "123 Oche Lane",
		ItemID:          itemID,
	}
	require.NoError(t, uc.Watch(context.Background(), req))

	err := uc.Unwatch(context.Background(), reqdto.RemoveWatchRequest{
		BuyerName: req.BuyerName,
		ItemID:    itemID,
	})
	require.NoError(t, err)
	assert.Empty(t, uow.state.watches)

	err = uc.Unwatch(context.Background(), reqdto.RemoveWatchRequest{
		BuyerName: req.BuyerName,
		ItemID:    itemID,
	})
	require.ErrorIs(t, err, errs.ErrWatchlistEntryNotFound)
}
