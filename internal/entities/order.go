package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/SergeyBogomolovv/booking-service/pkg/geo"
)

type Order struct {
	ID         string
	CustomerID string
	VendorID   string
	ServiceID  string
	PackageID  string

	ServiceStart time.Time
	DeliveryAt   time.Time
	// nil when the package has no setup phase
	SetupStart *time.Time

	OfferedAmount float64
	Amount        float64
	DeliveryFee   float64
	SetupFee      float64

	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentID     string

	Address        string
	Location       geo.Point
	Declined       bool
	DeclineMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSetup reports whether the order includes a setup phase before delivery.
func (o Order) HasSetup() bool {
	return o.SetupStart != nil
}

// Window is the interval the order occupies on the vendor's calendar.
func (o Order) Window() Window {
	start := o.DeliveryAt
	switch {
	case o.SetupStart != nil:
		start = *o.SetupStart
	case !o.ServiceStart.IsZero():
		start = o.ServiceStart
	}
	return Window{Start: start, End: o.DeliveryAt}
}

// IsParticipant reports whether the user is the order's customer or vendor.
func (o Order) IsParticipant(userID string) bool {
	return userID != "" && (o.CustomerID == userID || o.VendorID == userID)
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

// OrderFilter narrows order lookups. Empty fields are ignored.
type OrderFilter struct {
	ID         string
	CustomerID string
	VendorID   string
	Statuses   []OrderStatus
	Limit      uint64
	Offset     uint64
}

// StatusUpdate is a compare-and-swap on an order's status: it only applies
// when the stored order still matches From and the ownership fields.
type StatusUpdate struct {
	OrderID    string
	CustomerID string
	VendorID   string
	From       []OrderStatus
	To         OrderStatus

	// optional guard on the stored payment status
	PaymentFrom []PaymentStatus

	Amount         *float64
	PaymentStatus  *PaymentStatus
	PaymentID      *string
	DeclineMessage *string
}

func init() {
	gob.Register(Order{})
}
