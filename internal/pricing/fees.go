package pricing

import "math"

// Rates are the platform's fee rates, supplied by configuration.
type Rates struct {
	DeliveryFeePerMile     float64
	ApplicationFeeRate     float64
	InstantTransferFeeRate float64
	CustomerCCRate         float64
}

type FeeInput struct {
	Amount      float64
	SetupFee    float64
	DeliveryFee float64
	Instant     bool
}

type VendorFees struct {
	ApplicationCharge float64 `json:"application_charge"`
	CustomerCCCharge  float64 `json:"customer_cc_charge"`
	VendorReceivable  float64 `json:"vendor_receivable"`
	Instant           bool    `json:"instant"`
}

type CustomerFees struct {
	CustomerCCCharge float64 `json:"customer_cc_charge"`
	SubTotal         float64 `json:"sub_total"`
}

// VendorView computes what the platform keeps and what the vendor receives.
// Totals are floored, never rounded.
func (r Rates) VendorView(in FeeInput) VendorFees {
	rate := r.ApplicationFeeRate
	if in.Instant {
		rate = r.InstantTransferFeeRate
	}
	applicationCharge := math.Floor(in.Amount * rate)
	ccCharge := in.Amount * r.CustomerCCRate

	return VendorFees{
		ApplicationCharge: applicationCharge,
		CustomerCCCharge:  ccCharge,
		VendorReceivable:  math.Floor(in.Amount + in.SetupFee + in.DeliveryFee - applicationCharge - ccCharge),
		Instant:           in.Instant,
	}
}

// CustomerView computes what the customer is charged.
func (r Rates) CustomerView(in FeeInput) CustomerFees {
	ccCharge := in.Amount * r.CustomerCCRate
	return CustomerFees{
		CustomerCCCharge: ccCharge,
		SubTotal:         math.Floor(in.Amount + in.SetupFee + in.DeliveryFee + ccCharge),
	}
}

// DeliveryFee prices a delivery distance in miles.
func (r Rates) DeliveryFee(miles float64) float64 {
	return math.Round(miles*r.DeliveryFeePerMile*100) / 100
}
