package calculator

// DiscountRequest supports three modes. "simple" applies a single percent,
// "multiple" applies successive discounts in order, "bulk" picks a tier by
// quantity. Mode defaults to simple.
type DiscountRequest struct {
	Mode            string       `json:"mode"`
	OriginalPrice   float64      `json:"original_price"`
	DiscountPercent float64      `json:"discount_percent"`
	Discounts       []float64    `json:"discounts"`
	Quantity        int          `json:"quantity"`
	UnitPrice       float64      `json:"unit_price"`
	Tiers           []BulkTier   `json:"tiers"`
}

type BulkTier struct {
	MinQuantity int     `json:"min_quantity"`
	Percent     float64 `json:"percent"`
}

type AppliedDiscount struct {
	Percent    float64 `json:"percent"`
	AmountOff  float64 `json:"amount_off"`
	PriceAfter float64 `json:"price_after"`
}

type DiscountResult struct {
	OriginalPrice    float64           `json:"original_price"`
	DiscountPercent  float64           `json:"discount_percent"`
	DiscountAmount   float64           `json:"discount_amount"`
	FinalPrice       float64           `json:"final_price"`
	YouSave          float64           `json:"you_save"`
	SavingsPercent   float64           `json:"savings_percent"`
	AppliedDiscounts []AppliedDiscount `json:"applied_discounts,omitempty"`
	Quantity         int               `json:"quantity,omitempty"`
	TierPercent      float64           `json:"tier_percent,omitempty"`
}

var defaultBulkTiers = []BulkTier{
	{MinQuantity: 100, Percent: 15},
	{MinQuantity: 50, Percent: 10},
	{MinQuantity: 10, Percent: 5},
}

func ComputeDiscount(req DiscountRequest) (DiscountResult, error) {
	switch req.Mode {
	case "", "simple":
		return simpleDiscount(req)
	case "multiple":
		return multipleDiscount(req)
	case "bulk":
		return bulkDiscount(req)
	default:
		return DiscountResult{}, invalidf("mode", "must be simple, multiple or bulk")
	}
}

func simpleDiscount(req DiscountRequest) (DiscountResult, error) {
	if req.OriginalPrice <= 0 {
		return DiscountResult{}, invalidf("original_price", "must be positive")
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return DiscountResult{}, invalidf("discount_percent", "must be between 0 and 100")
	}

	amount := req.OriginalPrice * req.DiscountPercent / 100

	return DiscountResult{
		OriginalPrice:   req.OriginalPrice,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  round2(amount),
		FinalPrice:      round2(req.OriginalPrice - amount),
		YouSave:         round2(amount),
		SavingsPercent:  req.DiscountPercent,
	}, nil
}

func multipleDiscount(req DiscountRequest) (DiscountResult, error) {
	if req.OriginalPrice <= 0 {
		return DiscountResult{}, invalidf("original_price", "must be positive")
	}
	if len(req.Discounts) == 0 {
		return DiscountResult{}, invalidf("discounts", "at least one discount is required")
	}

	price := req.OriginalPrice
	applied := make([]AppliedDiscount, 0, len(req.Discounts))
	for _, pct := range req.Discounts {
		if pct < 0 || pct > 100 {
			return DiscountResult{}, invalidf("discounts", "each discount must be between 0 and 100")
		}
		off := price * pct / 100
		price -= off
		applied = append(applied, AppliedDiscount{
			Percent:    pct,
			AmountOff:  round2(off),
			PriceAfter: round2(price),
		})
	}

	saved := req.OriginalPrice - price

	return DiscountResult{
		OriginalPrice:    req.OriginalPrice,
		DiscountAmount:   round2(saved),
		FinalPrice:       round2(price),
		YouSave:          round2(saved),
		SavingsPercent:   round2(saved / req.OriginalPrice * 100),
		AppliedDiscounts: applied,
	}, nil
}

func bulkDiscount(req DiscountRequest) (DiscountResult, error) {
	if req.Quantity <= 0 {
		return DiscountResult{}, invalidf("quantity", "must be positive")
	}
	if req.UnitPrice <= 0 {
		return DiscountResult{}, invalidf("unit_price", "must be positive")
	}

	tiers := req.Tiers
	if len(tiers) == 0 {
		tiers = defaultBulkTiers
	}

	var tierPercent float64
	for _, tier := range tiers {
		if req.Quantity >= tier.MinQuantity && tier.Percent > tierPercent {
			tierPercent = tier.Percent
		}
	}

	original := req.UnitPrice * float64(req.Quantity)
	amount := original * tierPercent / 100

	return DiscountResult{
		OriginalPrice:   round2(original),
		DiscountPercent: tierPercent,
		DiscountAmount:  round2(amount),
		FinalPrice:      round2(original - amount),
		YouSave:         round2(amount),
		SavingsPercent:  tierPercent,
		Quantity:        req.Quantity,
		TierPercent:     tierPercent,
	}, nil
}
