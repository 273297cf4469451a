package calculator

type CalorieRequest struct {
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Activity string  `json:"activity"`
}

type CalorieResult struct {
	Calories float64 `json:"calories"`
	BMR      float64 `json:"bmr"`
	Maintain float64 `json:"maintain"`
	Lose     float64 `json:"lose"`
	Gain     float64 `json:"gain"`
	Activity string  `json:"activity"`
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

func ComputeCalorie(req CalorieRequest) (CalorieResult, error) {
	if req.Age < 1 || req.Age > 120 {
		return CalorieResult{}, invalidf("age", "must be between 1 and 120")
	}
	if req.Gender != "male" && req.Gender != "female" {
		return CalorieResult{}, invalidf("gender", "must be male or female")
	}
	if req.Height < 50 || req.Height > 300 {
		return CalorieResult{}, invalidf("height", "must be between 50 and 300 cm")
	}
	if req.Weight < 20 || req.Weight > 500 {
		return CalorieResult{}, invalidf("weight", "must be between 20 and 500 kg")
	}

	multiplier, ok := activityMultipliers[req.Activity]
	if !ok {
		return CalorieResult{}, invalidf("activity", "unknown activity level %q", req.Activity)
	}

	bmr := mifflinStJeor(req.Weight, req.Height, req.Age, req.Gender)
	maintain := bmr * multiplier

	return CalorieResult{
		Calories: round1(maintain),
		BMR:      round1(bmr),
		Maintain: round1(maintain),
		Lose:     round1(maintain - 500),
		Gain:     round1(maintain + 500),
		Activity: req.Activity,
	}, nil
}
