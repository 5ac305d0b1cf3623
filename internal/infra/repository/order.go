package repository

import (
	"context"
	"errors"
	"time"

	"dartshop/internal/domain/order"
	"dartshop/internal/infra"
	"dartshop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	const stmt = `
INSERT INTO orders (id, items, buyer_name, shipping_address, payment_method, payment_handle, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, stmt,
		o.ID(),
		o.ItemIDs(),
		o.BuyerName(),
		o.ShippingAddress(),
		o.PaymentMethod().String(),
		o.PaymentHandle(),
		o.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	return id, nil
}

// FindPendingForUpdate locks the order row so concurrent confirm and cancel
// serialize on it. An absent, deleted, or already-completed order reads as
// not found; whichever of the two racers runs second fails here.
func (r *OrderRepository) FindPendingForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	const query = `
SELECT id, items, buyer_name, shipping_address, payment_method, payment_handle, status, created_at
FROM orders
WHERE id = $1 AND status = 'pending'
FOR UPDATE`

	var (
		orderID         uuid.UUID
		itemIDs         []uuid.UUID
		buyerName       string
		shippingAddress string
		paymentMethod   string
		paymentHandle   string
		status          string
		createdAt       time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&orderID, &itemIDs, &buyerName, &shippingAddress, &paymentMethod, &paymentHandle, &status, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("pending order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	return order.ReconstructOrder(
		orderID,
		itemIDs,
		buyerName,
		shippingAddress,
		order.PaymentMethod(paymentMethod),
		paymentHandle,
		order.Status(status),
		createdAt,
	), nil
}

func (r *OrderRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = 'completed' WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to complete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
