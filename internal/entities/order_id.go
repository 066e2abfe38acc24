package entities

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	orderIDPrefix = "ORD-"
	orderIDDigits = 6
)

// FirstOrderID is issued when no order exists yet.
var FirstOrderID = FormatOrderID(1)

func FormatOrderID(n int64) string {
	return fmt.Sprintf("%s%0*d", orderIDPrefix, orderIDDigits, n)
}

// ParseOrderID returns the sequence number of a formatted order id.
func ParseOrderID(id string) (int64, error) {
	digits, ok := strings.CutPrefix(id, orderIDPrefix)
	if !ok || len(digits) < orderIDDigits {
		return 0, ErrInvalidOrderID
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidOrderID
	}
	return n, nil
}

// NextOrderID increments the last issued id. An empty last id starts the sequence.
func NextOrderID(last string) (string, error) {
	if last == "" {
		return FirstOrderID, nil
	}
	n, err := ParseOrderID(last)
	if err != nil {
		return "", fmt.Errorf("last order id %q: %w", last, err)
	}
	return FormatOrderID(n + 1), nil
}
