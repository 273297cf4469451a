package calculator

type MacrosRequest struct {
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Activity string  `json:"activity"`
	Goal     string  `json:"goal"`
}

type MacroSplit struct {
	Grams    float64 `json:"grams"`
	Calories float64 `json:"calories"`
	Percent  float64 `json:"percent"`
}

type MacrosResult struct {
	BMR      float64    `json:"bmr"`
	TDEE     float64    `json:"tdee"`
	Calories float64    `json:"calories"`
	Goal     string     `json:"goal"`
	Protein  MacroSplit `json:"protein"`
	Carbs    MacroSplit `json:"carbs"`
	Fat      MacroSplit `json:"fat"`
	PerMeal  struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fat     float64 `json:"fat"`
	} `json:"per_meal"`
}

func ComputeMacros(req MacrosRequest) (MacrosResult, error) {
	if req.Age < 1 || req.Age > 120 {
		return MacrosResult{}, invalidf("age", "must be between 1 and 120")
	}
	if req.Gender != "male" && req.Gender != "female" {
		return MacrosResult{}, invalidf("gender", "must be male or female")
	}
	if req.Height < 50 || req.Height > 300 {
		return MacrosResult{}, invalidf("height", "must be between 50 and 300 cm")
	}
	if req.Weight < 20 || req.Weight > 500 {
		return MacrosResult{}, invalidf("weight", "must be between 20 and 500 kg")
	}

	multiplier, ok := activityMultipliers[req.Activity]
	if !ok {
		return MacrosResult{}, invalidf("activity", "unknown activity level %q", req.Activity)
	}

	bmr := mifflinStJeor(req.Weight, req.Height, req.Age, req.Gender)
	tdee := bmr * multiplier

	var calories float64
	var proteinPct, carbsPct, fatPct float64

	switch req.Goal {
	case "lose":
		calories = tdee - 500
		proteinPct, carbsPct, fatPct = 0.35, 0.30, 0.35
	case "gain":
		calories = tdee + 300
		proteinPct, carbsPct, fatPct = 0.30, 0.45, 0.25
	case "", "maintain":
		calories = tdee
		proteinPct, carbsPct, fatPct = 0.30, 0.40, 0.30
	default:
		return MacrosResult{}, invalidf("goal", "must be lose, maintain or gain")
	}

	// Protein and carbs carry 4 kcal per gram, fat carries 9.
	protein := macroSplit(calories, proteinPct, 4)
	carbs := macroSplit(calories, carbsPct, 4)
	fat := macroSplit(calories, fatPct, 9)

	result := MacrosResult{
		BMR:      round1(bmr),
		TDEE:     round1(tdee),
		Calories: round1(calories),
		Goal:     req.Goal,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	if result.Goal == "" {
		result.Goal = "maintain"
	}
	result.PerMeal.Protein = round1(protein.Grams / 3)
	result.PerMeal.Carbs = round1(carbs.Grams / 3)
	result.PerMeal.Fat = round1(fat.Grams / 3)

	return result, nil
}

func macroSplit(calories, pct, kcalPerGram float64) MacroSplit {
	macroCal := calories * pct
	return MacroSplit{
		Grams:    round1(macroCal / kcalPerGram),
		Calories: round1(macroCal),
		Percent:  pct * 100,
	}
}
