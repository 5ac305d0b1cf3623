package request

import (
	"strings"

	"dartshop/internal/domain/order"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ItemIDs         []uuid.UUID `json:"items" binding:"required"`
	BuyerName       string      `json:"buyer_name" binding:"required"`
	ShippingAddress string      `json:"shipping_address" binding:"required"`
	PaymentMethod   string      `json:"payment_method" binding:"required"`
	PaymentHandle   *string     `json:"payment_handle,omitempty"`
}

func (r CreateReservationRequest) ToDomain() (*order.Order, error) {
	handle := order.DefaultPaymentHandle
	if r.PaymentHandle != nil {
		if trimmed := strings.TrimSpace(*r.PaymentHandle); trimmed != "" {
			handle = trimmed
		}
	}

	return order.NewOrder(
		r.ItemIDs,
		strings.TrimSpace(r.BuyerName),
		strings.TrimSpace(r.ShippingAddress),
		order.PaymentMethod(r.PaymentMethod),
		handle,
	)
}
