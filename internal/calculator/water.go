package calculator

type WaterIntakeRequest struct {
	Weight        float64 `json:"weight"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Activity      string  `json:"activity"`
	Climate       string  `json:"climate"`
	Pregnant      bool    `json:"pregnant"`
	Breastfeeding bool    `json:"breastfeeding"`
}

type ScheduleEntry struct {
	Time   string  `json:"time"`
	Amount float64 `json:"amount"`
	Label  string  `json:"label"`
}

type WaterIntakeResult struct {
	TotalML     float64         `json:"total_ml"`
	TotalLiters float64         `json:"total_liters"`
	Glasses     int             `json:"glasses"`
	FromFoodML  float64         `json:"from_food_ml"`
	ToDrinkML   float64         `json:"to_drink_ml"`
	Schedule    []ScheduleEntry `json:"schedule"`
}

var waterActivityMultipliers = map[string]float64{
	"sedentary":   1.0,
	"light":       1.1,
	"moderate":    1.25,
	"active":      1.4,
	"very_active": 1.5,
}

var climateAdditions = map[string]float64{
	"temperate": 0,
	"hot":       200,
	"very_hot":  500,
}

func ComputeWaterIntake(req WaterIntakeRequest) (WaterIntakeResult, error) {
	if req.Weight < 20 || req.Weight > 500 {
		return WaterIntakeResult{}, invalidf("weight", "must be between 20 and 500 kg")
	}
	if req.Age < 1 || req.Age > 120 {
		return WaterIntakeResult{}, invalidf("age", "must be between 1 and 120")
	}
	if req.Gender != "male" && req.Gender != "female" {
		return WaterIntakeResult{}, invalidf("gender", "must be male or female")
	}

	multiplier, ok := waterActivityMultipliers[req.Activity]
	if !ok {
		return WaterIntakeResult{}, invalidf("activity", "unknown activity level %q", req.Activity)
	}
	climateAdd, ok := climateAdditions[req.Climate]
	if !ok {
		return WaterIntakeResult{}, invalidf("climate", "must be temperate, hot or very_hot")
	}

	// Baseline of 33 ml per kg of body weight.
	total := req.Weight * 33 * multiplier
	total += climateAdd

	if req.Gender == "male" {
		total *= 1.05
	}
	switch {
	case req.Age > 65:
		total *= 1.1
	case req.Age < 18:
		total *= 0.9
	}

	if req.Pregnant {
		total += 300
	}
	if req.Breastfeeding {
		total += 700
	}

	// Roughly 20 percent of intake comes from food.
	fromFood := total * 0.2
	toDrink := total - fromFood

	return WaterIntakeResult{
		TotalML:     round1(total),
		TotalLiters: round2(total / 1000),
		Glasses:     int(toDrink/250) + 1,
		FromFoodML:  round1(fromFood),
		ToDrinkML:   round1(toDrink),
		Schedule:    drinkingSchedule(toDrink),
	}, nil
}

func drinkingSchedule(toDrink float64) []ScheduleEntry {
	slots := []struct {
		time  string
		share float64
		label string
	}{
		{"07:00", 0.15, "After waking up"},
		{"09:00", 0.10, "Mid morning"},
		{"11:00", 0.10, "Before lunch"},
		{"13:00", 0.15, "With lunch"},
		{"15:00", 0.10, "Afternoon"},
		{"17:00", 0.15, "Before dinner"},
		{"19:00", 0.15, "With dinner"},
		{"21:00", 0.10, "Before bed"},
	}

	schedule := make([]ScheduleEntry, 0, len(slots))
	for _, slot := range slots {
		schedule = append(schedule, ScheduleEntry{
			Time:   slot.time,
			Amount: round1(toDrink * slot.share),
			Label:  slot.label,
		})
	}
	return schedule
}
