package response

import (
	"time"

	"dartshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID              uuid.UUID   `json:"id"`
	ItemIDs         []uuid.UUID `json:"items"`
	BuyerName       string      `json:"buyerName"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentHandle   string      `json:"paymentHandle"`
	Status          string      `json:"status"`
	Expired         bool        `json:"expired"`
	CreatedAt       time.Time   `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:              v.ID,
		ItemIDs:         v.ItemIDs,
		BuyerName:       v.BuyerName,
		ShippingAddress: v.ShippingAddress,
		PaymentMethod:   v.PaymentMethod,
		PaymentHandle:   v.PaymentHandle,
		Status:          v.Status,
		Expired:         v.Expired,
		CreatedAt:       v.CreatedAt,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	orders := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		orders = append(orders, FromOrderView(v))
	}
	return orders
}

// ConflictResponse reports the items that blocked a reservation.
type ConflictResponse struct {
	TakenItemIDs []uuid.UUID `json:"takenItems"`
}
