package advisor

import "fmt"

// BMIRecommendation bundles the advice for one BMI reading.
type BMIRecommendation struct {
	DietPlan    []string `json:"diet_plan"`
	WorkoutPlan []string `json:"workout_plan"`
	CaloriePlan string   `json:"calorie_plan"`
	Explanation string   `json:"explanation"`
}

func RecommendForBMI(bmi float64) (BMIRecommendation, error) {
	if bmi <= 0 || bmi > 100 {
		return BMIRecommendation{}, fmt.Errorf("bmi out of range: %v", bmi)
	}

	switch {
	case bmi < 18.5:
		return BMIRecommendation{
			DietPlan: []string{
				"Eat calorie-dense whole foods like nuts, dairy and whole grains.",
				"Add a protein source to every meal.",
				"Have 5 to 6 smaller meals instead of 3 large ones.",
			},
			WorkoutPlan: []string{
				"Strength training 3 times a week to build muscle mass.",
				"Keep cardio short, 15 to 20 minutes for heart health.",
			},
			CaloriePlan: "Aim for a surplus of 300 to 500 kcal above maintenance.",
			Explanation: fmt.Sprintf("A BMI of %.1f is below the healthy range of 18.5 to 24.9. Gradual weight gain through diet and strength work is the recommended approach.", bmi),
		}, nil
	case bmi < 25:
		return BMIRecommendation{
			DietPlan: []string{
				"Keep a balanced plate of protein, whole grains and vegetables.",
				"Stay hydrated and limit processed snacks.",
			},
			WorkoutPlan: []string{
				"Mix cardio and strength training through the week.",
				"150 minutes of moderate activity per week maintains fitness.",
			},
			CaloriePlan: "Maintain your current calorie intake.",
			Explanation: fmt.Sprintf("A BMI of %.1f sits in the healthy range of 18.5 to 24.9. The goal is maintenance, not change.", bmi),
		}, nil
	case bmi < 30:
		return BMIRecommendation{
			DietPlan: []string{
				"Reduce refined carbohydrates and sugary drinks.",
				"Fill half of each plate with vegetables.",
				"Watch portion sizes at dinner.",
			},
			WorkoutPlan: []string{
				"Brisk walking or cycling 30 minutes a day, 5 days a week.",
				"Add 2 strength sessions to preserve muscle while losing fat.",
			},
			CaloriePlan: "Aim for a deficit of about 500 kcal below maintenance.",
			Explanation: fmt.Sprintf("A BMI of %.1f is in the overweight range of 25 to 29.9. A modest, sustained calorie deficit is the safest path back to the healthy range.", bmi),
		}, nil
	default:
		return BMIRecommendation{
			DietPlan: []string{
				"Work with structured meal planning, ideally with professional guidance.",
				"Prioritize protein and fiber to stay full on fewer calories.",
				"Cut liquid calories entirely.",
			},
			WorkoutPlan: []string{
				"Start with low-impact activity such as walking or swimming.",
				"Increase duration before intensity to protect joints.",
			},
			CaloriePlan: "Aim for a deficit of 500 to 750 kcal with medical supervision.",
			Explanation: fmt.Sprintf("A BMI of %.1f is in the obese range. Sustainable habit changes matter more than rapid loss, and a clinician should be involved.", bmi),
		}, nil
	}
}
