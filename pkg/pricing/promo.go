package pricing

// DiscountTerms is the plain-value view of a promo rule. Services map their
// stored promotion rows onto it so evaluation stays free of storage concerns.
type DiscountTerms struct {
	Percent     bool  // false = fixed amount
	Value       int64 // percent points, or cents when fixed
	MinSubtotal int64 // cents
	MaxDiscount int64 // cents, 0 = uncapped
	Active      bool
}

// EvaluateDiscount returns the discount in cents for the given fresh subtotal.
// It fails closed: an inactive rule, a missing rule, or a subtotal below the
// minimum all yield 0. The result is capped at the rule's max and the subtotal.
func EvaluateDiscount(terms *DiscountTerms, subtotal int64) int64 {
	if terms == nil || !terms.Active || subtotal < terms.MinSubtotal {
		return 0
	}

	var raw int64
	if terms.Percent {
		raw = roundHalfUpPercent(subtotal, terms.Value)
	} else {
		raw = terms.Value
	}

	if terms.MaxDiscount > 0 && raw > terms.MaxDiscount {
		raw = terms.MaxDiscount
	}
	if raw > subtotal {
		raw = subtotal
	}
	if raw < 0 {
		raw = 0
	}
	return raw
}
