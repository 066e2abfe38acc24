package entities

import "time"

type Payment struct {
	ID          string
	OrderID     string
	ProviderRef string
	Amount      float64
	Status      PaymentStatus
	Instant     bool

	// filled once the transfer to the vendor succeeds
	ApplicationCharge float64
	VendorReceivable  float64
	TransferredAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentEventType string

const (
	PaymentSucceeded  PaymentEventType = "payment.succeeded"
	PaymentDeposit    PaymentEventType = "payment.deposit"
	TransferSucceeded PaymentEventType = "transfer.succeeded"
)

// PaymentEvent is relayed from the payment provider.
type PaymentEvent struct {
	ID          string
	Type        PaymentEventType
	OrderID     string
	ProviderRef string
	Amount      float64
	Instant     bool
}
