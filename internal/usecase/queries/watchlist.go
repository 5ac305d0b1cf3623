package queries

import (
	"context"
	"time"

	"dartshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type WatchlistEntryView struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	BuyerName string    `json:"buyer_name"`
	// denormalized copy taken when the entry was created
	ShippingAddress string    `json:"shipping_address"`
	ItemBrand       string    `json:"item_brand"`
	ItemPlayer      string    `json:"item_player"`
	ItemPrice       float64   `json:"item_price"`
	ItemStatus      string    `json:"item_status"`
	CreatedAt       time.Time `json:"created_at"`
}

type WatchlistReadStore interface {
	ListByBuyer(ctx context.Context, buyerName string) ([]*WatchlistEntryView, error)
}

type WatchlistQueries interface {
	ListWatchlist(ctx context.Context, buyerName string) ([]*WatchlistEntryView, error)
}

type watchlistQueriesImpl struct {
	store WatchlistReadStore
}

func NewWatchlistQueries(store WatchlistReadStore) WatchlistQueries {
	return &watchlistQueriesImpl{store: store}
}

func (q *watchlistQueriesImpl) ListWatchlist(ctx context.Context, buyerName string) ([]*WatchlistEntryView, error) {
	entries, err := q.store.ListByBuyer(ctx, buyerName)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list watchlist")
	}
	return entries, nil
}
