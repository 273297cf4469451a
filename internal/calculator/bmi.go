package calculator

// BMIRequest carries height in centimeters and weight in kilograms.
type BMIRequest struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
}

func ComputeBMI(req BMIRequest) (BMIResult, error) {
	if req.Height < 50 || req.Height > 300 {
		return BMIResult{}, invalidf("height", "must be between 50 and 300 cm")
	}
	if req.Weight < 20 || req.Weight > 500 {
		return BMIResult{}, invalidf("weight", "must be between 20 and 500 kg")
	}

	meters := req.Height / 100
	bmi := round2(req.Weight / (meters * meters))

	category, color := bmiCategory(bmi)

	return BMIResult{BMI: bmi, Category: category, Color: color}, nil
}

func bmiCategory(bmi float64) (string, string) {
	switch {
	case bmi < 16:
		return "Severe underweight", "#3498db"
	case bmi < 17:
		return "Moderate underweight", "#5dade2"
	case bmi < 18.5:
		return "Mild underweight", "#85c1e9"
	case bmi < 25:
		return "Normal weight", "#2ecc71"
	case bmi < 30:
		return "Overweight", "#f39c12"
	case bmi < 35:
		return "Obese Class I", "#e67e22"
	case bmi < 40:
		return "Obese Class II", "#e74c3c"
	default:
		return "Obese Class III", "#c0392b"
	}
}
