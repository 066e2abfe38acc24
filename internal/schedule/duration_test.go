package schedule

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		in     string
		wantMs int64
		ok     bool
	}{
		{"2hr", 7200000, true},
		{"1d", 86400000, true},
		{"30min", 1800000, true},
		{"0min", 0, true},
		{" 3hr ", 10800000, true},
		{"5x", 0, false},
		{"hr", 0, false},
		{"2 hr", 0, false},
		{"-1d", 0, false},
		{"106751d", 106751 * 86400000, true},
		{"200000d", 0, false},
		{"9223372036854775807min", 0, false},
		{"99999999999999999999hr", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDuration(tc.in)
			if !tc.ok {
				assert.True(t, entities.IsKind(err, entities.KindValidation), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMs, got.Milliseconds())
		})
	}
}

func TestGetDuration(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"01:30", 90 * time.Minute, true},
		{"00:00", 0, true},
		{"2:03:15", 2*24*time.Hour + 3*time.Hour + 15*time.Minute, true},
		{"23:59", 23*time.Hour + 59*time.Minute, true},
		{"24:00", 0, false},
		{"10:60", 0, false},
		{"1:2:3:4", 0, false},
		{"ab:10", 0, false},
		{"5", 0, false},
		{"200000:00:00", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := GetDuration(tc.in)
			if !tc.ok {
				assert.True(t, entities.IsKind(err, entities.KindValidation), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseClock(t *testing.T) {
	testCases := []struct {
		in   string
		want Clock
		ok   bool
	}{
		{"09:00 AM", Clock{9, 0}, true},
		{"9:05 pm", Clock{21, 5}, true},
		{"12:00 AM", Clock{0, 0}, true},
		{"12:30 PM", Clock{12, 30}, true},
		{"11:59PM", Clock{23, 59}, true},
		{"13:00 PM", Clock{}, false},
		{"00:10 AM", Clock{}, false},
		{"10:75 AM", Clock{}, false},
		{"10:00", Clock{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			if !tc.ok {
				assert.True(t, entities.IsKind(err, entities.KindValidation), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
