package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRates_VendorView(t *testing.T) {
	rates := Rates{
		ApplicationFeeRate:     0.1,
		InstantTransferFeeRate: 0.15,
		CustomerCCRate:         0.03,
	}

	testCases := []struct {
		name string
		in   FeeInput
		want VendorFees
	}{
		{
			name: "standard transfer",
			in:   FeeInput{Amount: 100, SetupFee: 20, DeliveryFee: 7.5},
			want: VendorFees{
				ApplicationCharge: 10,
				CustomerCCCharge:  3,
				VendorReceivable:  math.Floor(100 + 20 + 7.5 - 10 - 3),
			},
		},
		{
			name: "instant transfer",
			in:   FeeInput{Amount: 100, Instant: true},
			want: VendorFees{
				ApplicationCharge: 15,
				CustomerCCCharge:  3,
				VendorReceivable:  82,
				Instant:           true,
			},
		},
		{
			name: "charge is floored",
			in:   FeeInput{Amount: 99},
			want: VendorFees{
				ApplicationCharge: 9,
				CustomerCCCharge:  99 * 0.03,
				VendorReceivable:  math.Floor(99 - 9 - 99*0.03),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rates.VendorView(tc.in)
			assert.Equal(t, tc.want.ApplicationCharge, got.ApplicationCharge)
			assert.InDelta(t, tc.want.CustomerCCCharge, got.CustomerCCCharge, 1e-9)
			assert.Equal(t, tc.want.VendorReceivable, got.VendorReceivable)
			assert.Equal(t, tc.want.Instant, got.Instant)
		})
	}
}

func TestRates_VendorView_NoCardRate(t *testing.T) {
	rates := Rates{ApplicationFeeRate: 0.1}

	got := rates.VendorView(FeeInput{Amount: 100, SetupFee: 5, DeliveryFee: 2.99})

	assert.Equal(t, 10.0, got.ApplicationCharge)
	assert.Equal(t, 97.0, got.VendorReceivable)
}

func TestRates_CustomerView(t *testing.T) {
	rates := Rates{CustomerCCRate: 0.029}

	got := rates.CustomerView(FeeInput{Amount: 100, SetupFee: 10, DeliveryFee: 4.5})

	assert.InDelta(t, 2.9, got.CustomerCCCharge, 1e-9)
	assert.Equal(t, 117.0, got.SubTotal)
}

func TestRates_DeliveryFee(t *testing.T) {
	rates := Rates{DeliveryFeePerMile: 1.5}

	assert.Equal(t, 15.0, rates.DeliveryFee(10))
	assert.Equal(t, 3.69, rates.DeliveryFee(2.46))
	assert.Equal(t, 0.0, rates.DeliveryFee(0))
}
