package queries

import (
	"context"
	"time"

	"dartshop/internal/infra"
	"dartshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemView struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Brand        string     `json:"brand"`
	Player       string     `json:"player"`
	WeightGrams  float64    `json:"weight_grams"`
	Condition    string     `json:"condition"`
	Price        float64    `json:"price"`
	RetailPrice  *float64   `json:"retail_price,omitempty"`
	Notes        string     `json:"notes"`
	PhotoURLs    []string   `json:"photo_urls"`
	Status       string     `json:"status"`
	PendingSince *time.Time `json:"pending_since,omitempty"`
	ClaimedBy    *uuid.UUID `json:"claimed_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ItemFilter predicates are conjunctive; every field is independently
// optional. Zero value means "everything, newest first".
type ItemFilter struct {
	Types      []string
	Conditions []string
	Statuses   []string
	Brand      string
	MinWeight  *float64
	MaxWeight  *float64
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
	SortDir    SortDirection
}

var sortColumns = map[string]struct{}{
	"created_at": {},
	"price":      {},
	"weight":     {},
	"brand":      {},
	"player":     {},
	"type":       {},
	"condition":  {},
	"status":     {},
}

// SortColumn maps the requested sort key onto a whitelisted column, never
// raw user input.
func (f ItemFilter) SortColumn() (string, error) {
	if f.SortBy == "" {
		return "created_at", nil
	}
	if _, ok := sortColumns[f.SortBy]; !ok {
		return "", errs.ErrUnknownSortKey
	}
	return f.SortBy, nil
}

func (f ItemFilter) SortDescending() bool {
	if f.SortBy == "" && f.SortDir == "" {
		return true // default newest-created-first
	}
	return f.SortDir == SortDesc
}

type InventoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	Search(ctx context.Context, filter ItemFilter) ([]*ItemView, error)
}

type InventoryQueries interface {
	GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]*ItemView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	return view, nil
}

func (q *inventoryQueriesImpl) ListItems(ctx context.Context, filter ItemFilter) ([]*ItemView, error) {
	if _, err := filter.SortColumn(); err != nil {
		return nil, err
	}

	views, err := q.store.Search(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search items")
	}
	return views, nil
}
