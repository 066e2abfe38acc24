package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
)

// Clock is a wall-clock time of day in 24-hour form.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.minutes() < other.minutes()
}

// On places the clock time on the calendar day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, t.Location())
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// ParseClock parses a 12-hour "hh:mm AM|PM" string.
func ParseClock(s string) (Clock, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Clock{}, entities.Validation("invalid time %q, expected hh:mm AM|PM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return Clock{}, entities.Validation("invalid time %q", s)
	}

	pm := strings.EqualFold(m[3], "PM")
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}
	return Clock{Hour: hour, Minute: minute}, nil
}
