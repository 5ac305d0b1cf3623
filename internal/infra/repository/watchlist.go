package repository

import (
	"context"
	"errors"

	"dartshop/internal/infra"
	"dartshop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type WatchlistRepository struct {
	db db.DBTX
}

func NewWatchlistRepository(dbtx db.DBTX) *WatchlistRepository {
	return &WatchlistRepository{db: dbtx}
}

// Add is idempotent per (buyer, item): re-watching an item refreshes the
// denormalized shipping address instead of erroring.
func (r *WatchlistRepository) Add(ctx context.Context, buyerName, shippingAddress string, itemID uuid.UUID) error {
	const stmt = `
INSERT INTO watchlist (id, buyer_name, item_id, shipping_address)
VALUES ($1, $2, $3, $4)
ON CONFLICT (buyer_name, item_id)
DO UPDATE SET shipping_address = EXCLUDED.shipping_address`

	_, err := r.db.Exec(ctx, stmt, uuid.New(), buyerName, itemID, shippingAddress)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("watchlist entry already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to add watchlist entry", err)
	}
	return nil
}

func (r *WatchlistRepository) Remove(ctx context.Context, buyerName string, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM watchlist WHERE buyer_name = $1 AND item_id = $2`, buyerName, itemID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove watchlist entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("watchlist entry not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Watchers returns the buyers watching any of the given items, for event
// relevance filtering in the notification relay.
func (r *WatchlistRepository) Watchers(ctx context.Context, itemIDs []uuid.UUID) ([]string, error) {
	const query = `
SELECT DISTINCT buyer_name FROM watchlist
WHERE item_id = ANY($1)
ORDER BY buyer_name`

	rows, err := r.db.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list watchers", err)
	}
	defer rows.Close()

	var buyers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan watcher", err)
		}
		buyers = append(buyers, name)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read watchers", rows.Err())
	}

	return buyers, nil
}
