package schedule

import (
	"time"
	_ "time/tzdata"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
)

// Location resolves the vendor's timezone, falling back to UTC when unset.
func Location(v entities.Vendor) (*time.Location, error) {
	if v.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, entities.Validation("vendor %s has invalid timezone %q", v.ID, v.Timezone)
	}
	return loc, nil
}

// CheckAvailability admits a booking window against the vendor's available
// days and, for orders without a setup phase, its operating hours.
func CheckAvailability(v entities.Vendor, w entities.Window, hasSetup bool) error {
	loc, err := Location(v)
	if err != nil {
		return err
	}

	start := w.Start.In(loc)
	if !v.AvailableOn(start.Weekday()) {
		return entities.Validation("vendor is not available on %s", start.Weekday())
	}
	if hasSetup {
		return nil
	}
	return ValidateOrderTime(v, w)
}

// ValidateOrderTime rejects windows that start before opening or end after
// closing on the window's local calendar day. A close time earlier than the
// open time means the vendor closes on the following day.
func ValidateOrderTime(v entities.Vendor, w entities.Window) error {
	if v.OpenTime == "" || v.CloseTime == "" {
		return nil
	}
	loc, err := Location(v)
	if err != nil {
		return err
	}
	open, err := ParseClock(v.OpenTime)
	if err != nil {
		return err
	}
	closing, err := ParseClock(v.CloseTime)
	if err != nil {
		return err
	}

	start := w.Start.In(loc)
	end := w.End.In(loc)

	opensAt := open.On(start)
	closesAt := closing.On(start)
	if closing.Before(open) {
		if start.Before(closesAt) {
			// after midnight, inside the shift that opened the day before
			opensAt = opensAt.AddDate(0, 0, -1)
		} else {
			closesAt = closesAt.AddDate(0, 0, 1)
		}
	}

	if start.Before(opensAt) {
		return entities.Validation("vendor opens at %s", v.OpenTime)
	}
	if end.After(closesAt) {
		return entities.Validation("vendor closes at %s", v.CloseTime)
	}
	return nil
}
