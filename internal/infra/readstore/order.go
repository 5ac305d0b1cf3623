package readstore

import (
	"context"
	"errors"

	"dartshop/internal/infra"
	"dartshop/internal/infra/db"
	"dartshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// orderColumns includes the derived expired flag: a pending order whose
// items have all been released back to inventory is stale, even though the
// row itself stays until an admin cancels it.
const orderColumns = `
    o.id, o.items, o.buyer_name, o.shipping_address, o.payment_method, o.payment_handle, o.status,
    (o.status = 'pending' AND NOT EXISTS (
        SELECT 1 FROM inventory i WHERE i.claimed_by = o.id AND i.status = 'pending'
    )) AS expired,
    o.created_at`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	query := `SELECT` + orderColumns + ` FROM orders o WHERE o.id = $1`

	view, err := scanOrderView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by id", err)
	}

	return view, nil
}

func (r *OrderReadStore) ListAll(ctx context.Context) ([]*queries.OrderView, error) {
	query := `SELECT` + orderColumns + ` FROM orders o ORDER BY o.created_at DESC, o.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", rows.Err())
	}

	return views, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var v queries.OrderView
	err := row.Scan(
		&v.ID,
		&v.ItemIDs,
		&v.BuyerName,
		&v.ShippingAddress,
		&v.PaymentMethod,
		&v.PaymentHandle,
		&v.Status,
		&v.Expired,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
