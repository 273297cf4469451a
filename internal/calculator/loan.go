package calculator

import "math"

// LoanRequest carries the principal, annual interest rate in percent and
// the duration in years.
type LoanRequest struct {
	Amount   float64 `json:"amount"`
	Rate     float64 `json:"rate"`
	Duration float64 `json:"duration"`
}

type LoanResult struct {
	EMI           float64 `json:"emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayment  float64 `json:"total_payment"`
	Principal     float64 `json:"principal"`
}

func ComputeLoan(req LoanRequest) (LoanResult, error) {
	if req.Amount <= 0 || req.Amount > 100_000_000 {
		return LoanResult{}, invalidf("amount", "must be between 0 and 100,000,000")
	}
	if req.Rate < 0 || req.Rate > 50 {
		return LoanResult{}, invalidf("rate", "must be between 0 and 50 percent")
	}
	if req.Duration <= 0 || req.Duration > 40 {
		return LoanResult{}, invalidf("duration", "must be between 0 and 40 years")
	}

	emi := monthlyPayment(req.Amount, req.Rate, req.Duration)
	months := req.Duration * 12
	total := emi * months

	return LoanResult{
		EMI:           round2(emi),
		TotalInterest: round2(total - req.Amount),
		TotalPayment:  round2(total),
		Principal:     req.Amount,
	}, nil
}

// monthlyPayment computes the fixed monthly installment for an amortized
// loan. A zero rate degenerates to straight division.
func monthlyPayment(principal, annualRate, years float64) float64 {
	months := years * 12
	if annualRate == 0 {
		return principal / months
	}

	r := annualRate / 1200
	factor := math.Pow(1+r, months)
	return principal * r * factor / (factor - 1)
}
