package response

import (
	"time"

	"dartshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type WatchlistEntryResponse struct {
	ID              uuid.UUID `json:"id"`
	ItemID          uuid.UUID `json:"itemId"`
	BuyerName       string    `json:"buyerName"`
	ShippingAddress string    `json:"shippingAddress"`
	ItemBrand       string    `json:"itemBrand"`
	ItemPlayer      string    `json:"itemPlayer"`
	ItemPrice       float64   `json:"itemPrice"`
	ItemStatus      string    `json:"itemStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromWatchlistEntryView(v *queries.WatchlistEntryView) *WatchlistEntryResponse {
	return &WatchlistEntryResponse{
		ID:              v.ID,
		ItemID:          v.ItemID,
		BuyerName:       v.BuyerName,
		ShippingAddress: v.ShippingAddress,
		ItemBrand:       v.ItemBrand,
		ItemPlayer:      v.ItemPlayer,
		ItemPrice:       v.ItemPrice,
		ItemStatus:      v.ItemStatus,
		CreatedAt:       v.CreatedAt,
	}
}

func FromWatchlistEntryViews(views []*queries.WatchlistEntryView) []*WatchlistEntryResponse {
	entries := make([]*WatchlistEntryResponse, 0, len(views))
	for _, v := range views {
		entries = append(entries, FromWatchlistEntryView(v))
	}
	return entries
}
