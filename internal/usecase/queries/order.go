package queries

import (
	"context"
	"time"

	"dartshop/internal/infra"
	"dartshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderView struct {
	ID              uuid.UUID   `json:"id"`
	ItemIDs         []uuid.UUID `json:"items"`
	BuyerName       string      `json:"buyer_name"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentHandle   string      `json:"payment_handle"`
	Status          string      `json:"status"`
	// Expired is derived: the order is still pending but the sweeper has
	// already released every item it claimed. The row itself is only ever
	// removed by an explicit admin cancel.
	Expired   bool      `json:"expired"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return view, nil
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context) ([]*OrderView, error) {
	views, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return views, nil
}
