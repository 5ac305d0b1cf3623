//go:build unit || e2e

package builder

import (
	"time"

	domitem "dartshop/internal/domain/item"
	reqdto "dartshop/internal/handler/dto/request"
	"dartshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	Type        string
	Brand       string
	Player      string
	WeightGrams float64
	Condition   string
	Price       float64
	RetailPrice *float64
	Notes       string
	PhotoURLs   []string
	Status      string
	CreatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	retail := 89.99
	return &ItemBuilder{
		ID:          uuid.New(),
		Type:        "barrel",
		Brand:       "Target",
		Player:      "Phil Taylor",
		WeightGrams: 22.0,
		Condition:   "like new",
		Price:       59.99,
		RetailPrice: &retail,
		Notes:       "Power 9Five G7, barely thrown",
		PhotoURLs:   []string{"https://example.com/photo1.jpg"},
		Status:      "available",
		CreatedAt:   time.Now(),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(
		domitem.Type(b.Type),
		b.Brand,
		b.Player,
		b.WeightGrams,
		domitem.Condition(b.Condition),
		b.Price,
		b.RetailPrice,
		b.Notes,
		b.PhotoURLs,
	)
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	return reqdto.CreateItemRequest{
		Type:        b.Type,
		Brand:       b.Brand,
		Player:      b.Player,
		WeightGrams: b.WeightGrams,
		Condition:   b.Condition,
		Price:       b.Price,
		RetailPrice: b.RetailPrice,
		Notes:       b.Notes,
		PhotoURLs:   b.PhotoURLs,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		Type:        b.Type,
		Brand:       b.Brand,
		Player:      b.Player,
		WeightGrams: b.WeightGrams,
		Condition:   b.Condition,
		Price:       b.Price,
		RetailPrice: b.RetailPrice,
		Notes:       b.Notes,
		PhotoURLs:   b.PhotoURLs,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
