package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItems           = errors.New("order must claim at least one item")
	ErrDuplicateItems       = errors.New("order item set contains duplicates")
	ErrBuyerNameRequired    = errors.New("buyer name is required")
	ErrShippingRequired     = errors.New("shipping address is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Payment is exchanged manually off-platform; the handle starts out as a
// placeholder until the seller and buyer settle it.
const DefaultPaymentHandle = "TBD via Facebook"

// Order holds the item ids it claimed plus the buyer contact details the
// seller needs to follow up. The item set is immutable after creation.
type Order struct {
	id              uuid.UUID
	itemIDs         []uuid.UUID
	buyerName       string
	shippingAddress string
	paymentMethod   PaymentMethod
	paymentHandle   string
	status          Status
	createdAt       time.Time
}

func NewOrder(
	itemIDs []uuid.UUID,
	buyerName, shippingAddress string,
	paymentMethod PaymentMethod,
	paymentHandle string,
) (*Order, error) {
	if len(itemIDs) == 0 {
		return nil, ErrEmptyItems
	}
	seen := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateItems
		}
		seen[id] = struct{}{}
	}
	if buyerName == "" {
		return nil, ErrBuyerNameRequired
	}
	if shippingAddress == "" {
		return nil, ErrShippingRequired
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if paymentHandle == "" {
		paymentHandle = DefaultPaymentHandle
	}

	ids := make([]uuid.UUID, len(itemIDs))
	copy(ids, itemIDs)

	return &Order{
		id:              uuid.New(),
		itemIDs:         ids,
		buyerName:       buyerName,
		shippingAddress: shippingAddress,
		paymentMethod:   paymentMethod,
		paymentHandle:   paymentHandle,
		status:          StatusPending,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	itemIDs []uuid.UUID,
	buyerName, shippingAddress string,
	paymentMethod PaymentMethod,
	paymentHandle string,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:              id,
		itemIDs:         itemIDs,
		buyerName:       buyerName,
		shippingAddress: shippingAddress,
		paymentMethod:   paymentMethod,
		paymentHandle:   paymentHandle,
		status:          status,
		createdAt:       createdAt,
	}
}

func (o *Order) IsPending() bool {
	return o.status == StatusPending
}

func (o *Order) IsCompleted() bool {
	return o.status == StatusCompleted
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) ItemIDs() []uuid.UUID         { return o.itemIDs }
func (o *Order) BuyerName() string            { return o.buyerName }
func (o *Order) ShippingAddress() string      { return o.shippingAddress }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentHandle() string        { return o.paymentHandle }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
