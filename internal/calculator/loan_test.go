package calculator

import (
	"math"
	"testing"
)

func TestComputeLoan(t *testing.T) {
	result, err := ComputeLoan(LoanRequest{Amount: 100000, Rate: 12, Duration: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 100k at 12% over 12 months has a known EMI of 8884.88.
	if math.Abs(result.EMI-8884.88) > 0.01 {
		t.Errorf("expected EMI 8884.88, got %v", result.EMI)
	}
	if result.Principal != 100000 {
		t.Errorf("expected principal 100000, got %v", result.Principal)
	}
	if math.Abs(result.TotalPayment-result.EMI*12) > 0.5 {
		t.Errorf("total payment %v does not match EMI * 12", result.TotalPayment)
	}
	if math.Abs(result.TotalInterest-(result.TotalPayment-100000)) > 0.01 {
		t.Errorf("total interest %v does not match payment minus principal", result.TotalInterest)
	}
}

func TestComputeLoanZeroRate(t *testing.T) {
	result, err := ComputeLoan(LoanRequest{Amount: 12000, Rate: 0, Duration: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.EMI != 1000 {
		t.Errorf("expected EMI 1000 for zero rate, got %v", result.EMI)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %v", result.TotalInterest)
	}
}

func TestComputeLoanValidation(t *testing.T) {
	tests := []struct {
		name string
		req  LoanRequest
	}{
		{"zero amount", LoanRequest{Amount: 0, Rate: 10, Duration: 5}},
		{"amount too large", LoanRequest{Amount: 200_000_000, Rate: 10, Duration: 5}},
		{"rate too high", LoanRequest{Amount: 10000, Rate: 60, Duration: 5}},
		{"duration too long", LoanRequest{Amount: 10000, Rate: 10, Duration: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeLoan(tt.req); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestComputeMortgage(t *testing.T) {
	result, err := ComputeMortgage(MortgageRequest{
		HomePrice:     300000,
		DownPayment:   60000,
		Rate:          6,
		Duration:      30,
		PropertyTax:   3600,
		HomeInsurance: 1200,
		PMIRate:       0.5,
		HOAFees:       100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.LoanAmount != 240000 {
		t.Errorf("expected loan amount 240000, got %v", result.LoanAmount)
	}
	if result.DownPaymentPercent != 20 {
		t.Errorf("expected 20%% down, got %v", result.DownPaymentPercent)
	}
	if result.LTVRatio != 80 {
		t.Errorf("expected LTV 80, got %v", result.LTVRatio)
	}
	// LTV is exactly 80 so no PMI applies.
	if result.MonthlyPMI != 0 {
		t.Errorf("expected no PMI at 80%% LTV, got %v", result.MonthlyPMI)
	}
	if result.MonthlyPropertyTax != 300 {
		t.Errorf("expected monthly tax 300, got %v", result.MonthlyPropertyTax)
	}
	if len(result.AmortizationSchedule) != 12 {
		t.Errorf("expected 12 amortization rows, got %d", len(result.AmortizationSchedule))
	}
}

func TestComputeMortgagePMIApplies(t *testing.T) {
	result, err := ComputeMortgage(MortgageRequest{
		HomePrice:   300000,
		DownPayment: 30000,
		Rate:        6,
		Duration:    30,
		PMIRate:     0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPMI <= 0 {
		t.Errorf("expected PMI above 80%% LTV, got %v", result.MonthlyPMI)
	}
}

func TestAmortizationBalanceDecreases(t *testing.T) {
	pi := monthlyPayment(240000, 6, 30)
	rows := amortize(240000, 6, pi, 12)

	prev := 240000.0
	for _, row := range rows {
		if row.Balance >= prev {
			t.Fatalf("balance did not decrease at month %d: %v >= %v", row.Month, row.Balance, prev)
		}
		prev = row.Balance
	}
}
