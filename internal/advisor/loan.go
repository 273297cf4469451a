package advisor

import (
	"fmt"

	"calcsuite/internal/calculator"
)

// TenureOption is one candidate loan duration with its cost.
type TenureOption struct {
	Years         int     `json:"years"`
	EMI           float64 `json:"emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalPayment  float64 `json:"total_payment"`
}

// LoanRecommendation compares tenures and suggests a repayment strategy.
type LoanRecommendation struct {
	Options            []TenureOption `json:"options"`
	BestTenure         TenureOption   `json:"best_tenure"`
	PrepaymentStrategy []string       `json:"prepayment_strategy"`
	Explanation        string         `json:"explanation"`
}

var candidateTenures = []int{5, 10, 15, 20, 30}

func RecommendForLoan(amount, rate float64) (LoanRecommendation, error) {
	options := make([]TenureOption, 0, len(candidateTenures))

	for _, years := range candidateTenures {
		result, err := calculator.ComputeLoan(calculator.LoanRequest{
			Amount:   amount,
			Rate:     rate,
			Duration: float64(years),
		})
		if err != nil {
			return LoanRecommendation{}, err
		}
		options = append(options, TenureOption{
			Years:         years,
			EMI:           result.EMI,
			TotalInterest: result.TotalInterest,
			TotalPayment:  result.TotalPayment,
		})
	}

	// Shortest tenure always minimizes total interest. It is the best
	// choice whenever the EMI is affordable.
	best := options[0]
	for _, option := range options {
		if option.TotalInterest < best.TotalInterest {
			best = option
		}
	}

	return LoanRecommendation{
		Options:    options,
		BestTenure: best,
		PrepaymentStrategy: []string{
			"Pay one extra EMI per year to cut years off the tenure.",
			"Direct bonuses and windfalls at the principal early in the loan.",
			"Refinance if rates drop more than 0.5% below your current rate.",
		},
		Explanation: fmt.Sprintf(
			"A %d-year tenure minimizes total interest at %.2f, with a monthly EMI of %.2f. Longer tenures lower the EMI but raise the overall cost of the loan.",
			best.Years, best.TotalInterest, best.EMI),
	}, nil
}
