package calculator

import "math"

type CompoundInterestRequest struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Time      float64 `json:"time"`
	Frequency int     `json:"frequency"`
}

type CompoundYearRow struct {
	Year     int     `json:"year"`
	Amount   float64 `json:"amount"`
	Interest float64 `json:"interest"`
}

type CompoundInterestResult struct {
	Principal        float64           `json:"principal"`
	Rate             float64           `json:"rate"`
	Time             float64           `json:"time"`
	Frequency        int               `json:"frequency"`
	CompoundInterest float64           `json:"compound_interest"`
	TotalAmount      float64           `json:"total_amount"`
	Breakdown        []CompoundYearRow `json:"breakdown"`
}

var validFrequencies = map[int]bool{1: true, 2: true, 4: true, 12: true, 52: true, 365: true}

func ComputeCompoundInterest(req CompoundInterestRequest) (CompoundInterestResult, error) {
	if req.Principal <= 0 || req.Principal > 100_000_000 {
		return CompoundInterestResult{}, invalidf("principal", "must be between 0 and 100,000,000")
	}
	if req.Rate <= 0 || req.Rate > 50 {
		return CompoundInterestResult{}, invalidf("rate", "must be between 0 and 50 percent")
	}
	if req.Time <= 0 || req.Time > 100 {
		return CompoundInterestResult{}, invalidf("time", "must be between 0 and 100 years")
	}
	if !validFrequencies[req.Frequency] {
		return CompoundInterestResult{}, invalidf("frequency", "must be one of 1, 2, 4, 12, 52, 365")
	}

	n := float64(req.Frequency)
	r := req.Rate / 100
	total := req.Principal * math.Pow(1+r/n, n*req.Time)

	years := int(math.Ceil(req.Time))
	breakdown := make([]CompoundYearRow, 0, years)
	for year := 1; year <= years; year++ {
		t := math.Min(float64(year), req.Time)
		amount := req.Principal * math.Pow(1+r/n, n*t)
		breakdown = append(breakdown, CompoundYearRow{
			Year:     year,
			Amount:   round2(amount),
			Interest: round2(amount - req.Principal),
		})
	}

	return CompoundInterestResult{
		Principal:        req.Principal,
		Rate:             req.Rate,
		Time:             req.Time,
		Frequency:        req.Frequency,
		CompoundInterest: round2(total - req.Principal),
		TotalAmount:      round2(total),
		Breakdown:        breakdown,
	}, nil
}
