package entities

import "time"

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses the half-open test, so windows that only touch do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// OverlapQuery asks whether any order of a vendor (and optionally a single
// customer) in one of Statuses intersects Window.
type OverlapQuery struct {
	VendorID       string
	CustomerID     string
	Statuses       []OrderStatus
	Window         Window
	ExcludeOrderID string
}
