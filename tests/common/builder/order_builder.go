//go:build unit || e2e

package builder

import (
	"time"

	domorder "dartshop/internal/domain/order"
	reqdto "dartshop/internal/handler/dto/request"
	"dartshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID              uuid.UUID
	ItemIDs         []uuid.UUID
	BuyerName       string
	ShippingAddress string
	PaymentMethod   string
	PaymentHandle   *string
	Status          string
	Expired         bool
	CreatedAt       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:              uuid.New(),
		ItemIDs:         []uuid.UUID{uuid.New(), uuid.New()},
		BuyerName:       "Alex Johnson",
		ShippingAddress: "123 Oche Lane, Dartford",
		PaymentMethod:   "venmo",
		Status:          "pending",
		CreatedAt:       time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	handle := domorder.DefaultPaymentHandle
	if b.PaymentHandle != nil {
		handle = *b.PaymentHandle
	}
	return domorder.NewOrder(
		b.ItemIDs,
		b.BuyerName,
		b.ShippingAddress,
		domorder.PaymentMethod(b.PaymentMethod),
		handle,
	)
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ItemIDs:         b.ItemIDs,
		BuyerName:       b.BuyerName,
		ShippingAddress: b.ShippingAddress,
		PaymentMethod:   b.PaymentMethod,
		PaymentHandle:   b.PaymentHandle,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	handle := domorder.DefaultPaymentHandle
	if b.PaymentHandle != nil {
		handle = *b.PaymentHandle
	}
	return &queries.OrderView{
		ID:              b.ID,
		ItemIDs:         b.ItemIDs,
		BuyerName:       b.BuyerName,
		ShippingAddress: b.ShippingAddress,
		PaymentMethod:   b.PaymentMethod,
		PaymentHandle:   handle,
		Status:          b.Status,
		Expired:         b.Expired,
		CreatedAt:       b.CreatedAt,
	}
}
