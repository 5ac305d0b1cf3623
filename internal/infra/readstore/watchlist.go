package readstore

import (
	"context"

	"dartshop/internal/infra"
	"dartshop/internal/infra/db"
	"dartshop/internal/usecase/queries"
)

type WatchlistReadStore struct {
	db db.DBTX
}

func NewWatchlistReadStore(dbtx db.DBTX) *WatchlistReadStore {
	return &WatchlistReadStore{db: dbtx}
}

func (r *WatchlistReadStore) ListByBuyer(ctx context.Context, buyerName string) ([]*queries.WatchlistEntryView, error) {
	const query = `
SELECT w.id, w.item_id, w.buyer_name, w.shipping_address,
       i.brand, i.player, i.price, i.status,
       w.created_at
FROM watchlist w
JOIN inventory i ON i.id = w.item_id
WHERE w.buyer_name = $1
ORDER BY w.created_at DESC, w.id`

	rows, err := r.db.Query(ctx, query, buyerName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list watchlist entries", err)
	}
	defer rows.Close()

	var entries []*queries.WatchlistEntryView
	for rows.Next() {
		var v queries.WatchlistEntryView
		err := rows.Scan(
			&v.ID,
			&v.ItemID,
			&v.BuyerName,
			&v.ShippingAddress,
			&v.ItemBrand,
			&v.ItemPlayer,
			&v.ItemPrice,
			&v.ItemStatus,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan watchlist row", err)
		}
		entries = append(entries, &v)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read watchlist rows", rows.Err())
	}

	return entries, nil
}
