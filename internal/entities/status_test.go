package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderAccepted, true},
		{OrderPending, OrderRejected, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderOngoing, false},
		{OrderAccepted, OrderDeclined, true},
		{OrderAccepted, OrderOngoing, true},
		{OrderAccepted, OrderCancelled, true},
		{OrderAccepted, OrderAccepted, false},
		{OrderOngoing, OrderCompleted, true},
		{OrderOngoing, OrderCancelled, false},
		{OrderCompleted, OrderPending, false},
		{OrderRejected, OrderAccepted, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderRejected:  true,
		OrderDeclined:  true,
		OrderCancelled: true,
		OrderCompleted: true,
	}
	for _, s := range AllOrderStatuses() {
		assert.Equal(t, terminal[s], s.IsTerminal(), s)
	}
}

func TestSourcesOf(t *testing.T) {
	assert.ElementsMatch(t, []OrderStatus{OrderPending, OrderAccepted}, SourcesOf(OrderCancelled))
	assert.ElementsMatch(t, []OrderStatus{OrderOngoing}, SourcesOf(OrderCompleted))
	assert.Empty(t, SourcesOf(OrderPending))
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("ongoing")
	require.NoError(t, err)
	assert.Equal(t, OrderOngoing, s)

	_, err = ParseOrderStatus("on the way")
	assert.True(t, IsKind(err, KindValidation))
}

func TestOrderStatus_Scan(t *testing.T) {
	var s OrderStatus
	require.NoError(t, s.Scan([]byte("accepted")))
	assert.Equal(t, OrderAccepted, s)

	assert.Error(t, s.Scan("confirmed"))
	assert.Error(t, s.Scan(42))

	var p PaymentStatus
	require.NoError(t, p.Scan("half"))
	assert.Equal(t, PaymentHalf, p)
}
