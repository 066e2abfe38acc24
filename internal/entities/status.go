package entities

import "fmt"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderRejected  OrderStatus = "rejected"
	OrderDeclined  OrderStatus = "declined"
	OrderCancelled OrderStatus = "cancelled"
	OrderOngoing   OrderStatus = "ongoing"
	OrderCompleted OrderStatus = "completed"
)

// ActiveStatuses occupy a vendor's calendar.
var ActiveStatuses = []OrderStatus{OrderAccepted, OrderOngoing}

// PendingOrActiveStatuses block a customer from double-booking one vendor.
var PendingOrActiveStatuses = []OrderStatus{OrderPending, OrderAccepted, OrderOngoing}

var transitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderAccepted, OrderRejected, OrderCancelled},
	OrderAccepted: {OrderDeclined, OrderOngoing, OrderCancelled},
	OrderOngoing:  {OrderCompleted},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SourcesOf returns every status that may transition to the given one.
func SourcesOf(to OrderStatus) []OrderStatus {
	var from []OrderStatus
	for _, s := range AllOrderStatuses() {
		if CanTransition(s, to) {
			from = append(from, s)
		}
	}
	return from
}

func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected, OrderDeclined,
		OrderCancelled, OrderOngoing, OrderCompleted:
		return true
	}
	return false
}

func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderPending, OrderAccepted, OrderRejected, OrderDeclined,
		OrderCancelled, OrderOngoing, OrderCompleted,
	}
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", Validation("unknown order status %q", s)
	}
	return status, nil
}

func (s *OrderStatus) Scan(src any) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	status := OrderStatus(v)
	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", v)
	}
	*s = status
	return nil
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentHalf    PaymentStatus = "half"
	PaymentFull    PaymentStatus = "full"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentHalf, PaymentFull:
		return true
	}
	return false
}

func (s *PaymentStatus) Scan(src any) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	status := PaymentStatus(v)
	if !status.Valid() {
		return fmt.Errorf("unknown payment status %q", v)
	}
	*s = status
	return nil
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported status type %T", src)
	}
}
