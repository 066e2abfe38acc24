package handler

import (
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/internal/pricing"
	"github.com/SergeyBogomolovv/booking-service/internal/service"
	"github.com/SergeyBogomolovv/booking-service/pkg/geo"
)

// Location is a point in decimal degrees
type Location struct {
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
}

// CreateOrderRequest is a customer's booking request
type CreateOrderRequest struct {
	VendorID      string     `json:"vendor_id" validate:"required"`
	PackageID     string     `json:"package_id" validate:"required"`
	ServiceStart  *time.Time `json:"service_start,omitempty"`
	DeliveryAt    time.Time  `json:"delivery_at" validate:"required"`
	OfferedAmount float64    `json:"offered_amount" validate:"gte=0"`
	Address       string     `json:"address,omitempty" validate:"max=512"`
	Location      *Location  `json:"location,omitempty"`
}

func (r CreateOrderRequest) ToInput(customerID string) service.CreateOrderInput {
	in := service.CreateOrderInput{
		CustomerID:    customerID,
		VendorID:      r.VendorID,
		PackageID:     r.PackageID,
		DeliveryAt:    r.DeliveryAt,
		OfferedAmount: r.OfferedAmount,
		Address:       r.Address,
	}
	if r.ServiceStart != nil {
		in.ServiceStart = *r.ServiceStart
	}
	if r.Location != nil {
		in.Location = geo.Point{Lng: r.Location.Lng, Lat: r.Location.Lat}
	}
	return in
}

// AcceptOrderRequest carries the price the vendor agrees to
type AcceptOrderRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

// DeclineOrderRequest carries the customer's reason
type DeclineOrderRequest struct {
	Message string `json:"message" validate:"required,max=1024"`
}

// Order is an order as returned by the API
type Order struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	VendorID       string     `json:"vendor_id"`
	ServiceID      string     `json:"service_id"`
	PackageID      string     `json:"package_id"`
	ServiceStart   *time.Time `json:"service_start,omitempty"`
	SetupStart     *time.Time `json:"setup_start,omitempty"`
	DeliveryAt     time.Time  `json:"delivery_at"`
	OfferedAmount  float64    `json:"offered_amount"`
	Amount         float64    `json:"amount"`
	DeliveryFee    float64    `json:"delivery_fee"`
	SetupFee       float64    `json:"setup_fee"`
	Status         string     `json:"status"`
	PaymentStatus  string     `json:"payment_status"`
	PaymentID      string     `json:"payment_id,omitempty"`
	Address        string     `json:"address,omitempty"`
	Location       *Location  `json:"location,omitempty"`
	Declined       bool       `json:"declined"`
	DeclineMessage string     `json:"decline_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		VendorID:       o.VendorID,
		ServiceID:      o.ServiceID,
		PackageID:      o.PackageID,
		SetupStart:     o.SetupStart,
		DeliveryAt:     o.DeliveryAt,
		OfferedAmount:  o.OfferedAmount,
		Amount:         o.Amount,
		DeliveryFee:    o.DeliveryFee,
		SetupFee:       o.SetupFee,
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		PaymentID:      o.PaymentID,
		Address:        o.Address,
		Declined:       o.Declined,
		DeclineMessage: o.DeclineMessage,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if !o.ServiceStart.IsZero() {
		start := o.ServiceStart
		res.ServiceStart = &start
	}
	if !o.Location.IsZero() {
		res.Location = &Location{Lng: o.Location.Lng, Lat: o.Location.Lat}
	}
	return res
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

// Fees is the fee breakdown visible to the caller
type Fees struct {
	OrderID  string                `json:"order_id"`
	Vendor   *pricing.VendorFees   `json:"vendor,omitempty"`
	Customer *pricing.CustomerFees `json:"customer,omitempty"`
}

func QuoteToJSON(q service.Quote) Fees {
	return Fees{OrderID: q.OrderID, Vendor: q.Vendor, Customer: q.Customer}
}

// Notification is an in-app notification
type Notification struct {
	ID        string     `json:"id"`
	Event     string     `json:"event"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type,omitempty"`
	OrderID   string     `json:"order_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

func NotificationsEntityToJSON(list []entities.Notification) []Notification {
	res := make([]Notification, 0, len(list))
	for _, n := range list {
		res = append(res, Notification{
			ID:        n.ID,
			Event:     n.Event,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			OrderID:   n.OrderID,
			CreatedAt: n.CreatedAt,
			ReadAt:    n.ReadAt,
		})
	}
	return res
}

// PaymentEvent is a payment provider callback relayed onto Kafka
type PaymentEvent struct {
	EventID     string  `json:"event_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=payment.succeeded payment.deposit transfer.succeeded"`
	OrderID     string  `json:"order_id" validate:"required"`
	ProviderRef string  `json:"provider_ref" validate:"required_unless=Type transfer.succeeded"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Instant     bool    `json:"instant"`
}

func PaymentEventJSONToEntity(e PaymentEvent) entities.PaymentEvent {
	return entities.PaymentEvent{
		ID:          e.EventID,
		Type:        entities.PaymentEventType(e.Type),
		OrderID:     e.OrderID,
		ProviderRef: e.ProviderRef,
		Amount:      e.Amount,
		Instant:     e.Instant,
	}
}
