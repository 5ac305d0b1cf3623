package request

import (
	"github.com/google/uuid"
)

type AddWatchRequest struct {
	BuyerName       string    `json:"buyer_name" binding:"required"`
	ShippingAddress string    `json:"shipping_address" binding:"required"`
	ItemID          uuid.UUID `json:"item_id" binding:"required"`
}

type RemoveWatchRequest struct {
	BuyerName string    `json:"buyer_name" binding:"required"`
	ItemID    uuid.UUID `json:"item_id" binding:"required"`
}
