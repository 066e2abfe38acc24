package entities

import (
	"time"

	"github.com/SergeyBogomolovv/booking-service/pkg/geo"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID   string
	Role Role
}

// CanSee reports whether the actor may read the order.
func (a Actor) CanSee(o Order) bool {
	return a.Role == RoleAdmin || o.IsParticipant(a.ID)
}

const StatusActive = "active"

type Customer struct {
	ID     string
	Name   string
	Email  string
	Status string
}

func (c Customer) Active() bool {
	return c.Status == StatusActive
}

type Vendor struct {
	ID     string
	Name   string
	Email  string
	Status string

	// "hh:mm AM|PM" in the vendor's timezone
	OpenTime      string
	CloseTime     string
	AvailableDays []time.Weekday
	Timezone      string
	Location      geo.Point
}

func (v Vendor) Active() bool {
	return v.Status == StatusActive
}

func (v Vendor) AvailableOn(day time.Weekday) bool {
	for _, d := range v.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

type Package struct {
	ID        string
	VendorID  string
	ServiceID string
	Price     float64

	HasSetup bool
	// "<n>min", "<n>hr" or "<n>d"
	SetupDuration string
	SetupFee      float64
}
