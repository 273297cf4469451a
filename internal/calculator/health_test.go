package calculator

import (
	"math"
	"testing"
)

func TestComputeBMRMifflin(t *testing.T) {
	result, err := ComputeBMR(BMRRequest{
		Age: 30, Gender: "male", Height: 175, Weight: 70,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	if math.Abs(result.BMR-1648.8) > 0.1 {
		t.Errorf("expected BMR 1648.8, got %v", result.BMR)
	}
	if result.Sedentary <= result.BMR {
		t.Errorf("sedentary %v should exceed BMR %v", result.Sedentary, result.BMR)
	}
	if result.VeryActive <= result.Active {
		t.Errorf("very_active %v should exceed active %v", result.VeryActive, result.Active)
	}
}

func TestComputeBMRHarrisBenedict(t *testing.T) {
	result, err := ComputeBMR(BMRRequest{
		Age: 25, Gender: "female", Height: 165, Weight: 60,
		Formula: "harris_benedict",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.4
	if math.Abs(result.BMR-1405.4) > 0.2 {
		t.Errorf("expected BMR about 1405.4, got %v", result.BMR)
	}
}

func TestComputeBMRKatchMcArdle(t *testing.T) {
	result, err := ComputeBMR(BMRRequest{
		Age: 30, Gender: "male", Height: 175, Weight: 80,
		Formula: "katch_mcardle", BodyFat: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// LBM = 64, BMR = 370 + 21.6*64 = 1752.4
	if math.Abs(result.BMR-1752.4) > 0.1 {
		t.Errorf("expected BMR 1752.4, got %v", result.BMR)
	}

	if _, err := ComputeBMR(BMRRequest{
		Age: 30, Gender: "male", Height: 175, Weight: 80,
		Formula: "katch_mcardle",
	}); err == nil {
		t.Error("expected error when body fat is missing")
	}
}

func TestComputeCalorie(t *testing.T) {
	result, err := ComputeCalorie(CalorieRequest{
		Age: 30, Gender: "male", Height: 175, Weight: 70, Activity: "moderate",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.BMR-1648.8) > 0.1 {
		t.Errorf("expected BMR 1648.8, got %v", result.BMR)
	}
	if math.Abs(result.Maintain-result.BMR*1.55) > 1 {
		t.Errorf("maintain %v should be BMR * 1.55", result.Maintain)
	}
	if result.Lose != result.Maintain-500 {
		t.Errorf("lose %v should be maintain minus 500", result.Lose)
	}
	if result.Gain != result.Maintain+500 {
		t.Errorf("gain %v should be maintain plus 500", result.Gain)
	}
}

func TestComputeCalorieBurn(t *testing.T) {
	result, err := ComputeCalorieBurn(CalorieBurnRequest{
		Activity: "running_10kmh", Weight: 70, Duration: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 9.8 MET * 70 kg * 1 h = 686 kcal
	if result.Calories != 686 {
		t.Errorf("expected 686 kcal, got %v", result.Calories)
	}
	if result.Intensity != "Very Vigorous" {
		t.Errorf("expected Very Vigorous, got %q", result.Intensity)
	}
}

func TestComputeCalorieBurnComparison(t *testing.T) {
	result, err := ComputeCalorieBurn(CalorieBurnRequest{
		Activity: "yoga", Weight: 70, Duration: 30,
		Activities: []string{"hiking", "swimming_laps"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Comparisons) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(result.Comparisons))
	}
	if result.Comparisons[0].Calories <= result.Calories {
		t.Errorf("hiking should burn more than yoga at equal duration")
	}
}

func TestComputeMacros(t *testing.T) {
	result, err := ComputeMacros(MacrosRequest{
		Age: 30, Gender: "male", Height: 175, Weight: 70,
		Activity: "moderate", Goal: "lose",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Calories != round1(result.TDEE-500) {
		t.Errorf("lose goal should subtract 500 from TDEE, got %v vs %v", result.Calories, result.TDEE)
	}
	if result.Protein.Percent != 35 {
		t.Errorf("expected 35%% protein for lose goal, got %v", result.Protein.Percent)
	}

	// The macro calories must add back up to the target within rounding.
	sum := result.Protein.Calories + result.Carbs.Calories + result.Fat.Calories
	if math.Abs(sum-result.Calories) > 1 {
		t.Errorf("macro calories %v do not sum to target %v", sum, result.Calories)
	}
}

func TestComputeWaterIntake(t *testing.T) {
	result, err := ComputeWaterIntake(WaterIntakeRequest{
		Weight: 70, Age: 30, Gender: "female", Activity: "sedentary", Climate: "temperate",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 70 * 33 = 2310 ml baseline for a temperate sedentary female adult.
	if result.TotalML != 2310 {
		t.Errorf("expected 2310 ml, got %v", result.TotalML)
	}
	if math.Abs(result.FromFoodML+result.ToDrinkML-result.TotalML) > 0.5 {
		t.Errorf("food plus drink should equal total")
	}
	if len(result.Schedule) != 8 {
		t.Errorf("expected 8 schedule slots, got %d", len(result.Schedule))
	}
}

func TestComputeWaterIntakeAdjustments(t *testing.T) {
	base, err := ComputeWaterIntake(WaterIntakeRequest{
		Weight: 60, Age: 30, Gender: "female", Activity: "sedentary", Climate: "temperate",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breastfeeding, err := ComputeWaterIntake(WaterIntakeRequest{
		Weight: 60, Age: 30, Gender: "female", Activity: "sedentary", Climate: "temperate",
		Breastfeeding: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if breastfeeding.TotalML != base.TotalML+700 {
		t.Errorf("breastfeeding should add 700 ml: %v vs %v", breastfeeding.TotalML, base.TotalML)
	}
}

func TestComputeSleepBedtimes(t *testing.T) {
	result, err := ComputeSleep(SleepRequest{WakeTime: "07:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Mode != "bedtimes" {
		t.Errorf("expected bedtimes mode, got %q", result.Mode)
	}
	if len(result.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(result.Options))
	}
	// 6 cycles = 9h15m before 07:00 is 21:45.
	if result.Options[0].Time != "21:45" {
		t.Errorf("expected first bedtime 21:45, got %q", result.Options[0].Time)
	}
	if result.Options[0].Quality != "Excellent" {
		t.Errorf("expected Excellent for 6 cycles, got %q", result.Options[0].Quality)
	}
}

func TestComputeSleepDebt(t *testing.T) {
	result, err := ComputeSleep(SleepRequest{WakeTime: "07:00", ActualSleepHours: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SleepDebt != 2 {
		t.Errorf("expected 2 hours of debt, got %v", result.SleepDebt)
	}
}

func TestComputePregnancy(t *testing.T) {
	result, err := ComputePregnancy(PregnancyRequest{
		LastPeriod:  "2026-01-01",
		CycleLength: 28,
		AsOf:        "2026-04-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 280 days after Jan 1 is Oct 8.
	if result.DueDate != "2026-10-08" {
		t.Errorf("expected due date 2026-10-08, got %q", result.DueDate)
	}
	if result.WeeksPregnant != 12 {
		t.Errorf("expected 12 weeks, got %d", result.WeeksPregnant)
	}
	if result.Trimester != 1 {
		t.Errorf("expected trimester 1, got %d", result.Trimester)
	}
	if result.ConceptionDate != "2026-01-15" {
		t.Errorf("expected conception 2026-01-15, got %q", result.ConceptionDate)
	}
}

func TestComputePregnancyCycleAdjustment(t *testing.T) {
	result, err := ComputePregnancy(PregnancyRequest{
		LastPeriod:  "2026-01-01",
		CycleLength: 35,
		AsOf:        "2026-02-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 280 + 7 extra days lands on Oct 15.
	if result.DueDate != "2026-10-15" {
		t.Errorf("expected due date 2026-10-15, got %q", result.DueDate)
	}
}

func TestComputePregnancyFuture(t *testing.T) {
	_, err := ComputePregnancy(PregnancyRequest{
		LastPeriod: "2030-01-01", CycleLength: 28, AsOf: "2026-01-01",
	})
	if err == nil {
		t.Fatal("expected error for a future last period")
	}
	if _, ok := err.(*DomainError); !ok {
		t.Errorf("expected *DomainError, got %T", err)
	}
}
