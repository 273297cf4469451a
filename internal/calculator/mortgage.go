package calculator

type MortgageRequest struct {
	HomePrice        float64 `json:"home_price"`
	DownPayment      float64 `json:"down_payment"`
	Rate             float64 `json:"rate"`
	Duration         float64 `json:"duration"`
	PropertyTax      float64 `json:"property_tax"`
	HomeInsurance    float64 `json:"home_insurance"`
	PMIRate          float64 `json:"pmi_rate"`
	HOAFees          float64 `json:"hoa_fees"`
}

type AmortizationRow struct {
	Month     int     `json:"month"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type MortgageResult struct {
	LoanAmount               float64           `json:"loan_amount"`
	DownPaymentPercent       float64           `json:"down_payment_percent"`
	MonthlyPrincipalInterest float64           `json:"monthly_principal_interest"`
	MonthlyPropertyTax       float64           `json:"monthly_property_tax"`
	MonthlyInsurance         float64           `json:"monthly_insurance"`
	MonthlyPMI               float64           `json:"monthly_pmi"`
	MonthlyHOA               float64           `json:"monthly_hoa"`
	TotalMonthlyPayment      float64           `json:"total_monthly_payment"`
	TotalInterest            float64           `json:"total_interest"`
	TotalPaid                float64           `json:"total_paid"`
	TotalCost                float64           `json:"total_cost"`
	LTVRatio                 float64           `json:"ltv_ratio"`
	RecommendedIncome        float64           `json:"recommended_income"`
	AmortizationSchedule     []AmortizationRow `json:"amortization_schedule"`
}

func ComputeMortgage(req MortgageRequest) (MortgageResult, error) {
	if req.HomePrice <= 0 || req.HomePrice > 100_000_000 {
		return MortgageResult{}, invalidf("home_price", "must be between 0 and 100,000,000")
	}
	if req.DownPayment < 0 || req.DownPayment >= req.HomePrice {
		return MortgageResult{}, invalidf("down_payment", "must be less than the home price")
	}
	if req.Rate < 0 || req.Rate > 50 {
		return MortgageResult{}, invalidf("rate", "must be between 0 and 50 percent")
	}
	if req.Duration <= 0 || req.Duration > 40 {
		return MortgageResult{}, invalidf("duration", "must be between 0 and 40 years")
	}

	loanAmount := req.HomePrice - req.DownPayment
	months := int(req.Duration * 12)
	pi := monthlyPayment(loanAmount, req.Rate, req.Duration)

	monthlyTax := req.PropertyTax / 12
	monthlyInsurance := req.HomeInsurance / 12
	monthlyHOA := req.HOAFees

	ltv := loanAmount / req.HomePrice * 100

	// PMI applies while the loan-to-value ratio exceeds 80 percent.
	var monthlyPMI float64
	if ltv > 80 && req.PMIRate > 0 {
		monthlyPMI = loanAmount * req.PMIRate / 100 / 12
	}

	totalMonthly := pi + monthlyTax + monthlyInsurance + monthlyPMI + monthlyHOA
	totalPaid := pi * float64(months)

	return MortgageResult{
		LoanAmount:               round2(loanAmount),
		DownPaymentPercent:       round2(req.DownPayment / req.HomePrice * 100),
		MonthlyPrincipalInterest: round2(pi),
		MonthlyPropertyTax:       round2(monthlyTax),
		MonthlyInsurance:         round2(monthlyInsurance),
		MonthlyPMI:               round2(monthlyPMI),
		MonthlyHOA:               round2(monthlyHOA),
		TotalMonthlyPayment:      round2(totalMonthly),
		TotalInterest:            round2(totalPaid - loanAmount),
		TotalPaid:                round2(totalPaid),
		TotalCost:                round2(totalPaid + req.DownPayment),
		LTVRatio:                 round2(ltv),
		RecommendedIncome:        round2(totalMonthly / 0.28),
		AmortizationSchedule:     amortize(loanAmount, req.Rate, pi, 12),
	}, nil
}

// amortize returns the first n rows of the amortization schedule.
func amortize(balance, annualRate, payment float64, n int) []AmortizationRow {
	rows := make([]AmortizationRow, 0, n)
	r := annualRate / 1200

	for month := 1; month <= n && balance > 0; month++ {
		interest := balance * r
		principal := payment - interest
		if principal > balance {
			principal = balance
		}
		balance -= principal

		rows = append(rows, AmortizationRow{
			Month:     month,
			Principal: round2(principal),
			Interest:  round2(interest),
			Balance:   round2(balance),
		})
	}

	return rows
}
