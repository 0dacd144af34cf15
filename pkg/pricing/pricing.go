package pricing

// All amounts are integer cents. Rounding is half-up via bias-then-floor
// integer division so results are reproducible across platforms.

const serviceFeePercent = 5

type Breakdown struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	ServiceFee  int64 `json:"serviceFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// ServiceFee is 5% of the subtotal, rounded half-up to the nearest cent.
func ServiceFee(subtotal int64) int64 {
	return roundHalfUpPercent(subtotal, serviceFeePercent)
}

// Compute builds the full breakdown. The discount must already be capped by
// the caller (see EvaluateDiscount), so the total never goes negative.
func Compute(subtotal, deliveryFee, discount int64) Breakdown {
	fee := ServiceFee(subtotal)
	return Breakdown{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		ServiceFee:  fee,
		Discount:    discount,
		Total:       subtotal + deliveryFee + fee - discount,
	}
}

func roundHalfUpPercent(amount, percent int64) int64 {
	return (amount*percent + 50) / 100
}
