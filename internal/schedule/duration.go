package schedule

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
)

const day = 24 * time.Hour

var (
	durationRe = regexp.MustCompile(`^(\d+)(min|hr|d)$`)
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
)

// ParseDuration parses "<n>min", "<n>hr" or "<n>d".
func ParseDuration(s string) (time.Duration, error) {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, entities.Validation("invalid duration %q, expected <number><min|hr|d>", s)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, entities.Validation("invalid duration %q", s)
	}

	unit := time.Minute
	switch m[2] {
	case "hr":
		unit = time.Hour
	case "d":
		unit = day
	}
	if n > math.MaxInt64/int64(unit) {
		return 0, entities.Validation("invalid duration %q: too long", s)
	}
	return time.Duration(n) * unit, nil
}

// GetDuration parses the numeric "dd:hh:mm" and "hh:mm" forms.
func GetDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, entities.Validation("invalid duration %q, expected dd:hh:mm or hh:mm", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, entities.Validation("invalid duration %q", s)
		}
		nums[i] = n
	}

	var days int
	if len(nums) == 3 {
		days, nums = nums[0], nums[1:]
	}
	hours, minutes := nums[0], nums[1]
	if hours > 23 {
		return 0, entities.Validation("invalid duration %q: hours must be within 0-23", s)
	}
	if minutes > 59 {
		return 0, entities.Validation("invalid duration %q: minutes must be within 0-59", s)
	}

	if int64(days) > (math.MaxInt64-int64(day))/int64(day) {
		return 0, entities.Validation("invalid duration %q: too long", s)
	}

	return time.Duration(days)*day + time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}
