package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/SergeyBogomolovv/booking-service/pkg/geo"

	"github.com/lib/pq"
)

var orderColumns = []string{
	"id", "customer_id", "vendor_id", "service_id", "package_id",
	"service_start", "delivery_at", "setup_start",
	"offered_amount", "amount", "delivery_fee", "setup_fee",
	"status", "payment_status", "payment_id",
	"address", "lng", "lat", "declined", "decline_message",
	"created_at", "updated_at",
}

type Order struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	VendorID   string `db:"vendor_id"`
	ServiceID  string `db:"service_id"`
	PackageID  string `db:"package_id"`

	ServiceStart sql.NullTime `db:"service_start"`
	DeliveryAt   time.Time    `db:"delivery_at"`
	SetupStart   sql.NullTime `db:"setup_start"`

	OfferedAmount float64 `db:"offered_amount"`
	Amount        float64 `db:"amount"`
	DeliveryFee   float64 `db:"delivery_fee"`
	SetupFee      float64 `db:"setup_fee"`

	Status        entities.OrderStatus   `db:"status"`
	PaymentStatus entities.PaymentStatus `db:"payment_status"`
	PaymentID     string                 `db:"payment_id"`

	Address        string          `db:"address"`
	Lng            sql.NullFloat64 `db:"lng"`
	Lat            sql.NullFloat64 `db:"lat"`
	Declined       bool            `db:"declined"`
	DeclineMessage string          `db:"decline_message"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Customer struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Status string `db:"status"`
}

type Vendor struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	Status        string          `db:"status"`
	OpenTime      string          `db:"open_time"`
	CloseTime     string          `db:"close_time"`
	AvailableDays pq.Int64Array   `db:"available_days"`
	Timezone      string          `db:"timezone"`
	Lng           sql.NullFloat64 `db:"lng"`
	Lat           sql.NullFloat64 `db:"lat"`
}

type Package struct {
	ID            string  `db:"id"`
	VendorID      string  `db:"vendor_id"`
	ServiceID     string  `db:"service_id"`
	Price         float64 `db:"price"`
	HasSetup      bool    `db:"has_setup"`
	SetupDuration string  `db:"setup_duration"`
	SetupFee      float64 `db:"setup_fee"`
}

var paymentColumns = []string{
	"id", "order_id", "provider_ref", "amount", "status", "instant",
	"application_charge", "vendor_receivable", "transferred_at",
	"created_at", "updated_at",
}

type Payment struct {
	ID                string                 `db:"id"`
	OrderID           string                 `db:"order_id"`
	ProviderRef       string                 `db:"provider_ref"`
	Amount            float64                `db:"amount"`
	Status            entities.PaymentStatus `db:"status"`
	Instant           bool                   `db:"instant"`
	ApplicationCharge float64                `db:"application_charge"`
	VendorReceivable  float64                `db:"vendor_receivable"`
	TransferredAt     sql.NullTime           `db:"transferred_at"`
	CreatedAt         time.Time              `db:"created_at"`
	UpdatedAt         time.Time              `db:"updated_at"`
}

var notificationColumns = []string{
	"id", "recipient_id", "event", "title", "message", "type", "order_id", "created_at", "read_at",
}

type Notification struct {
	ID          string       `db:"id"`
	RecipientID string       `db:"recipient_id"`
	Event       string       `db:"event"`
	Title       string       `db:"title"`
	Message     string       `db:"message"`
	Type        string       `db:"type"`
	OrderID     string       `db:"order_id"`
	CreatedAt   time.Time    `db:"created_at"`
	ReadAt      sql.NullTime `db:"read_at"`
}

func OrderToEntity(o Order) entities.Order {
	order := entities.Order{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		VendorID:       o.VendorID,
		ServiceID:      o.ServiceID,
		PackageID:      o.PackageID,
		ServiceStart:   nullTimeToTime(o.ServiceStart),
		DeliveryAt:     o.DeliveryAt.UTC(),
		SetupStart:     nullTimeToPtr(o.SetupStart),
		OfferedAmount:  o.OfferedAmount,
		Amount:         o.Amount,
		DeliveryFee:    o.DeliveryFee,
		SetupFee:       o.SetupFee,
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		PaymentID:      o.PaymentID,
		Address:        o.Address,
		Location:       pointFromNull(o.Lng, o.Lat),
		Declined:       o.Declined,
		DeclineMessage: o.DeclineMessage,
		CreatedAt:      o.CreatedAt.UTC(),
		UpdatedAt:      o.UpdatedAt.UTC(),
	}
	return order
}

func OrderFromEntity(o entities.Order) Order {
	lng, lat := pointToNull(o.Location)
	return Order{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		VendorID:       o.VendorID,
		ServiceID:      o.ServiceID,
		PackageID:      o.PackageID,
		ServiceStart:   timeToNull(o.ServiceStart),
		DeliveryAt:     o.DeliveryAt.UTC(),
		SetupStart:     ptrToNull(o.SetupStart),
		OfferedAmount:  o.OfferedAmount,
		Amount:         o.Amount,
		DeliveryFee:    o.DeliveryFee,
		SetupFee:       o.SetupFee,
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		PaymentID:      o.PaymentID,
		Address:        o.Address,
		Lng:            lng,
		Lat:            lat,
		Declined:       o.Declined,
		DeclineMessage: o.DeclineMessage,
		CreatedAt:      o.CreatedAt.UTC(),
		UpdatedAt:      o.UpdatedAt.UTC(),
	}
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Status: c.Status,
	}
}

func VendorToEntity(v Vendor) entities.Vendor {
	days := make([]time.Weekday, 0, len(v.AvailableDays))
	for _, d := range v.AvailableDays {
		days = append(days, time.Weekday(d))
	}
	return entities.Vendor{
		ID:            v.ID,
		Name:          v.Name,
		Email:         v.Email,
		Status:        v.Status,
		OpenTime:      v.OpenTime,
		CloseTime:     v.CloseTime,
		AvailableDays: days,
		Timezone:      v.Timezone,
		Location:      pointFromNull(v.Lng, v.Lat),
	}
}

func PackageToEntity(p Package) entities.Package {
	return entities.Package{
		ID:            p.ID,
		VendorID:      p.VendorID,
		ServiceID:     p.ServiceID,
		Price:         p.Price,
		HasSetup:      p.HasSetup,
		SetupDuration: p.SetupDuration,
		SetupFee:      p.SetupFee,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ID:                p.ID,
		OrderID:           p.OrderID,
		ProviderRef:       p.ProviderRef,
		Amount:            p.Amount,
		Status:            p.Status,
		Instant:           p.Instant,
		ApplicationCharge: p.ApplicationCharge,
		VendorReceivable:  p.VendorReceivable,
		TransferredAt:     nullTimeToPtr(p.TransferredAt),
		CreatedAt:         p.CreatedAt.UTC(),
		UpdatedAt:         p.UpdatedAt.UTC(),
	}
}

func NotificationToEntity(n Notification) entities.Notification {
	return entities.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Event:       n.Event,
		Title:       n.Title,
		Message:     n.Message,
		Type:        n.Type,
		OrderID:     n.OrderID,
		CreatedAt:   n.CreatedAt.UTC(),
		ReadAt:      nullTimeToPtr(n.ReadAt),
	}
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time.UTC()
	}
	return time.Time{}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func timeToNull(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func ptrToNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return timeToNull(*t)
}

func pointFromNull(lng, lat sql.NullFloat64) geo.Point {
	if !lng.Valid || !lat.Valid {
		return geo.Point{}
	}
	return geo.Point{Lng: lng.Float64, Lat: lat.Float64}
}

func pointToNull(p geo.Point) (sql.NullFloat64, sql.NullFloat64) {
	if p.IsZero() {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: p.Lng, Valid: true}, sql.NullFloat64{Float64: p.Lat, Valid: true}
}

func statusStrings(statuses []entities.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
