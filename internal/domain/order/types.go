package order

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentVenmo   PaymentMethod = "venmo"
	PaymentPaypal  PaymentMethod = "paypal"
	PaymentCashapp PaymentMethod = "cashapp"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentVenmo, PaymentPaypal, PaymentCashapp:
		return true
	default:
		return false
	}
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	pm := PaymentMethod(s)
	if !pm.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return pm, nil
}
