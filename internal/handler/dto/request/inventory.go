package request

import (
	"strings"

	"dartshop/internal/domain/item"
	"dartshop/internal/usecase/queries"
)

type CreateItemRequest struct {
	Type        string   `json:"type" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	Player      string   `json:"player" binding:"required"`
	WeightGrams float64  `json:"weight_grams"`
	Condition   string   `json:"condition" binding:"required"`
	Price       float64  `json:"price"`
	RetailPrice *float64 `json:"retail_price,omitempty"`
	Notes       string   `json:"notes"`
	PhotoURLs   []string `json:"photo_urls"`
}

func (r CreateItemRequest) ToDomain() (*item.Item, error) {
	return item.NewItem(
		item.Type(r.Type),
		strings.TrimSpace(r.Brand),
		strings.TrimSpace(r.Player),
		r.WeightGrams,
		item.Condition(r.Condition),
		r.Price,
		r.RetailPrice,
		strings.TrimSpace(r.Notes),
		r.PhotoURLs,
	)
}

// UpdateItemRequest is the admin escape hatch: every field is optional and
// omitted fields stay untouched. Setting Status overrides the normal claim
// lifecycle.
type UpdateItemRequest struct {
	Type        *string   `json:"type,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	Player      *string   `json:"player,omitempty"`
	WeightGrams *float64  `json:"weight_grams,omitempty"`
	Condition   *string   `json:"condition,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	RetailPrice *float64  `json:"retail_price,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	PhotoURLs   *[]string `json:"photo_urls,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

type ListItemsRequest struct {
	Types      []string `form:"type"`
	Conditions []string `form:"condition"`
	Statuses   []string `form:"status"`
	Brand      string   `form:"brand"`
	MinWeight  *float64 `form:"min_weight"`
	MaxWeight  *float64 `form:"max_weight"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	SortBy     string   `form:"sort_by"`
	SortDir    string   `form:"sort_dir"`
}

func (r ListItemsRequest) ToFilter() queries.ItemFilter {
	return queries.ItemFilter{
		Types:      r.Types,
		Conditions: r.Conditions,
		Statuses:   r.Statuses,
		Brand:      strings.TrimSpace(r.Brand),
		MinWeight:  r.MinWeight,
		MaxWeight:  r.MaxWeight,
		MinPrice:   r.MinPrice,
		MaxPrice:   r.MaxPrice,
		SortBy:     r.SortBy,
		SortDir:    queries.SortDirection(r.SortDir),
	}
}
