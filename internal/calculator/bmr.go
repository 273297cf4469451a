package calculator

// BMRRequest supports three formulas. BodyFat is only used by katch_mcardle.
type BMRRequest struct {
	Age     int     `json:"age"`
	Gender  string  `json:"gender"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
	Formula string  `json:"formula"`
	BodyFat float64 `json:"body_fat"`
}

type BMRResult struct {
	BMR        float64 `json:"bmr"`
	Sedentary  float64 `json:"sedentary"`
	Light      float64 `json:"light"`
	Moderate   float64 `json:"moderate"`
	Active     float64 `json:"active"`
	VeryActive float64 `json:"very_active"`
}

func ComputeBMR(req BMRRequest) (BMRResult, error) {
	if req.Age < 1 || req.Age > 120 {
		return BMRResult{}, invalidf("age", "must be between 1 and 120")
	}
	if req.Gender != "male" && req.Gender != "female" {
		return BMRResult{}, invalidf("gender", "must be male or female")
	}
	if req.Height < 50 || req.Height > 300 {
		return BMRResult{}, invalidf("height", "must be between 50 and 300 cm")
	}
	if req.Weight < 20 || req.Weight > 500 {
		return BMRResult{}, invalidf("weight", "must be between 20 and 500 kg")
	}

	var bmr float64
	switch req.Formula {
	case "harris_benedict":
		if req.Gender == "male" {
			bmr = 88.362 + 13.397*req.Weight + 4.799*req.Height - 5.677*float64(req.Age)
		} else {
			bmr = 447.593 + 9.247*req.Weight + 3.098*req.Height - 4.330*float64(req.Age)
		}
	case "katch_mcardle":
		if req.BodyFat <= 0 || req.BodyFat >= 70 {
			return BMRResult{}, invalidf("body_fat", "must be between 0 and 70 percent")
		}
		lbm := req.Weight * (1 - req.BodyFat/100)
		bmr = 370 + 21.6*lbm
	case "", "mifflin_st_jeor":
		bmr = mifflinStJeor(req.Weight, req.Height, req.Age, req.Gender)
	default:
		return BMRResult{}, invalidf("formula", "unknown formula %q", req.Formula)
	}

	return BMRResult{
		BMR:        round1(bmr),
		Sedentary:  round1(bmr * 1.2),
		Light:      round1(bmr * 1.375),
		Moderate:   round1(bmr * 1.55),
		Active:     round1(bmr * 1.725),
		VeryActive: round1(bmr * 1.9),
	}, nil
}

// mifflinStJeor is shared with the calorie and macro calculators.
func mifflinStJeor(weight, height float64, age int, gender string) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}
