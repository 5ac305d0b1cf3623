package response

import (
	"time"

	"dartshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Brand        string     `json:"brand"`
	Player       string     `json:"player"`
	WeightGrams  float64    `json:"weightGrams"`
	Condition    string     `json:"condition"`
	Price        float64    `json:"price"`
	RetailPrice  *float64   `json:"retailPrice,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	PhotoURLs    []string   `json:"photoUrls,omitempty"`
	Status       string     `json:"status"`
	PendingSince *time.Time `json:"pendingSince,omitempty"`
	ClaimedBy    *uuid.UUID `json:"claimedBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:           v.ID,
		Type:         v.Type,
		Brand:        v.Brand,
		Player:       v.Player,
		WeightGrams:  v.WeightGrams,
		Condition:    v.Condition,
		Price:        v.Price,
		RetailPrice:  v.RetailPrice,
		Notes:        v.Notes,
		PhotoURLs:    v.PhotoURLs,
		Status:       v.Status,
		PendingSince: v.PendingSince,
		ClaimedBy:    v.ClaimedBy,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	items := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromItemView(v))
	}
	return items
}
