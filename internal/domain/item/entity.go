package item

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid item status")
	ErrInvalidType      = errors.New("invalid item type")
	ErrInvalidCondition = errors.New("invalid item condition")
	ErrBrandRequired    = errors.New("brand is required")
	ErrPlayerRequired   = errors.New("player is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeWeight   = errors.New("weight cannot be negative")
	ErrStatusInvariant  = errors.New("pending_since must be set exactly when status is pending")
)

// Item is a single physical piece of darts equipment. Quantity is always one;
// claiming an item is claiming that exact unit.
type Item struct {
	id           uuid.UUID
	itemType     Type
	brand        string
	player       string
	weightGrams  float64
	condition    Condition
	price        float64
	retailPrice  *float64
	notes        string
	photoURLs    []string
	status       Status
	pendingSince *time.Time
	claimedBy    *uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewItem(
	itemType Type,
	brand, player string,
	weightGrams float64,
	condition Condition,
	price float64,
	retailPrice *float64,
	notes string,
	photoURLs []string,
) (*Item, error) {
	if !itemType.IsValid() {
		return nil, ErrInvalidType
	}
	if brand == "" {
		return nil, ErrBrandRequired
	}
	if player == "" {
		return nil, ErrPlayerRequired
	}
	if !condition.IsValid() {
		return nil, ErrInvalidCondition
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if weightGrams < 0 {
		return nil, ErrNegativeWeight
	}
	if retailPrice != nil && *retailPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Item{
		id:          uuid.New(),
		itemType:    itemType,
		brand:       brand,
		player:      player,
		weightGrams: weightGrams,
		condition:   condition,
		price:       price,
		retailPrice: retailPrice,
		notes:       notes,
		photoURLs:   photoURLs,
		status:      StatusAvailable,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	itemType Type,
	brand, player string,
	weightGrams float64,
	condition Condition,
	price float64,
	retailPrice *float64,
	notes string,
	photoURLs []string,
	status Status,
	pendingSince *time.Time,
	claimedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if err := validateStatusInvariant(status, pendingSince); err != nil {
		return nil, err
	}
	return &Item{
		id:           id,
		itemType:     itemType,
		brand:        brand,
		player:       player,
		weightGrams:  weightGrams,
		condition:    condition,
		price:        price,
		retailPrice:  retailPrice,
		notes:        notes,
		photoURLs:    photoURLs,
		status:       status,
		pendingSince: pendingSince,
		claimedBy:    claimedBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// pendingSince is non-nil iff the item is pending
func validateStatusInvariant(status Status, pendingSince *time.Time) error {
	if (status == StatusPending) != (pendingSince != nil) {
		return ErrStatusInvariant
	}
	return nil
}

func (i *Item) IsAvailable() bool {
	return i.status == StatusAvailable
}

func (i *Item) IsPending() bool {
	return i.status == StatusPending
}

func (i *Item) IsSold() bool {
	return i.status == StatusSold
}

// HoldExpired reports whether a pending claim has outlived ttl.
func (i *Item) HoldExpired(now time.Time, ttl time.Duration) bool {
	if i.status != StatusPending || i.pendingSince == nil {
		return false
	}
	return now.Sub(*i.pendingSince) > ttl
}

// PriceDrop returns the display-only discount against the retail price.
// It has no behavioral effect anywhere in the reservation flow.
func (i *Item) PriceDrop() *float64 {
	if i.retailPrice == nil || *i.retailPrice <= i.price {
		return nil
	}
	drop := *i.retailPrice - i.price
	return &drop
}

func (i *Item) ID() uuid.UUID            { return i.id }
func (i *Item) Type() Type               { return i.itemType }
func (i *Item) Brand() string            { return i.brand }
func (i *Item) Player() string           { return i.player }
func (i *Item) WeightGrams() float64     { return i.weightGrams }
func (i *Item) Condition() Condition     { return i.condition }
func (i *Item) Price() float64           { return i.price }
func (i *Item) RetailPrice() *float64    { return i.retailPrice }
func (i *Item) Notes() string            { return i.notes }
func (i *Item) PhotoURLs() []string      { return i.photoURLs }
func (i *Item) Status() Status           { return i.status }
func (i *Item) PendingSince() *time.Time { return i.pendingSince }
func (i *Item) ClaimedBy() *uuid.UUID    { return i.claimedBy }
func (i *Item) CreatedAt() time.Time     { return i.createdAt }
func (i *Item) UpdatedAt() time.Time     { return i.updatedAt }
