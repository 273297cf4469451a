package advisor

import (
	"fmt"
	"strings"

	"calcsuite/internal/calculator"
)

// chatRule maps keywords and calculator types to a canned reply.
type chatRule struct {
	types    []calculator.Type
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{
		types:    []calculator.Type{calculator.TypeBMI},
		keywords: []string{"bmi", "weight", "overweight", "underweight"},
		reply:    "BMI is weight in kilograms divided by height in meters squared. The healthy range is 18.5 to 24.9. Use the BMI calculator to check where you stand, then ask me for recommendations.",
	},
	{
		types:    []calculator.Type{calculator.TypeLoan, calculator.TypeMortgage},
		keywords: []string{"loan", "emi", "interest", "mortgage"},
		reply:    "Your EMI depends on the principal, the annual rate and the tenure. Shorter tenures cost less overall but raise the monthly payment. Run the loan calculator and I can compare tenures for you.",
	},
	{
		types:    []calculator.Type{calculator.TypeGPA, calculator.TypeGrade},
		keywords: []string{"gpa", "grade", "semester", "credit"},
		reply:    "GPA is the credit-weighted average of your grade points. Courses with more credits move it the most, so improving a heavy low-grade course is the fastest way up.",
	},
	{
		types:    []calculator.Type{calculator.TypeCalorie, calculator.TypeBMR, calculator.TypeMacros},
		keywords: []string{"calorie", "diet", "tdee", "bmr"},
		reply:    "Your BMR is what your body burns at rest, and TDEE adds activity on top. Eat about 500 kcal below TDEE to lose roughly half a kilogram per week.",
	},
	{
		types:    []calculator.Type{calculator.TypeWaterIntake},
		keywords: []string{"water", "hydration", "drink"},
		reply:    "A common baseline is 33 ml of water per kilogram of body weight, more in hot climates or with heavy activity. The water intake calculator builds you a drinking schedule.",
	},
	{
		types:    []calculator.Type{calculator.TypeSleep},
		keywords: []string{"sleep", "tired", "insomnia", "wake", "bed"},
		reply:    "Sleep runs in 90-minute cycles, so waking at the end of a cycle feels better than mid-cycle. The sleep calculator suggests bedtimes for your wake time.",
	},
	{
		types:    []calculator.Type{calculator.TypeAttendance},
		keywords: []string{"attendance", "class", "absent"},
		reply:    "The attendance calculator tells you how many classes you can still miss, or how many you must attend in a row to reach your target percentage.",
	},
}

const chatFallback = "I can help with BMI, loans, GPA, calories, water intake, sleep and attendance. Ask me about any of those, or run a calculator and request recommendations."

// Chat answers a free-text question by keyword matching. When no keyword
// matches and the caller names the calculator they are on, the reply for
// that calculator is used instead of the generic fallback.
func Chat(message, calculatorType string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.reply
			}
		}
	}

	if calcType, ok := calculator.ParseType(calculatorType); ok {
		for _, rule := range chatRules {
			for _, t := range rule.types {
				if t == calcType {
					return rule.reply
				}
			}
		}
	}

	return chatFallback
}

// Explanation breaks a result down for the user. Every field is optional,
// clients render whatever subset is present.
type Explanation struct {
	Formula            string   `json:"formula,omitempty"`
	Components         []string `json:"components,omitempty"`
	YourCalculation    string   `json:"your_calculation,omitempty"`
	WhatItMeans        string   `json:"what_it_means,omitempty"`
	WhyThisValue       string   `json:"why_this_value,omitempty"`
	HealthImplications string   `json:"health_implications,omitempty"`
}

// Explain describes how a calculator arrived at the given result.
func Explain(calcType calculator.Type, result, inputs map[string]any) Explanation {
	switch calcType {
	case calculator.TypeBMI:
		return explainBMI(result, inputs)
	case calculator.TypeLoan, calculator.TypeMortgage:
		return explainLoan(result, inputs)
	case calculator.TypeGPA:
		return explainGPA(result)
	default:
		return Explanation{
			WhatItMeans: fmt.Sprintf("The %s shows its inputs and result on the page. Ask about BMI, loans or GPA for a formula breakdown.", calcType.DisplayName()),
		}
	}
}

func explainBMI(result, inputs map[string]any) Explanation {
	e := Explanation{
		Formula: "BMI = weight (kg) / height (m)^2",
		Components: []string{
			"weight: body mass in kilograms",
			"height: height converted from centimeters to meters",
		},
		WhatItMeans: "Below 18.5 is underweight, 18.5 to 24.9 is normal, 25 to 29.9 is overweight, and 30 or more is obese.",
	}

	weight, okW := num(inputs, "weight")
	height, okH := num(inputs, "height")
	bmi, okB := num(result, "bmi")
	if okW && okH && okB && height > 0 {
		e.YourCalculation = fmt.Sprintf("%.1f / (%.2f)^2 = %.2f", weight, height/100, bmi)
	}
	if category, ok := result["category"].(string); ok {
		e.HealthImplications = fmt.Sprintf("Your result falls in the %q range. BMI is a screening value, it does not account for muscle mass or body composition.", category)
	}
	return e
}

func explainLoan(result, inputs map[string]any) Explanation {
	e := Explanation{
		Formula: "EMI = P * r * (1+r)^n / ((1+r)^n - 1)",
		Components: []string{
			"P: the principal borrowed",
			"r: the monthly rate, annual rate / 1200",
			"n: the tenure in months",
		},
		WhatItMeans:  "The EMI is the fixed monthly payment that repays the principal plus interest over the tenure.",
		WhyThisValue: "Total interest is EMI times the number of months minus the principal, so shorter tenures cost less overall.",
	}

	amount, okA := num(inputs, "amount")
	rate, okR := num(inputs, "rate")
	emi, okE := num(result, "emi")
	if okA && okR && okE {
		e.YourCalculation = fmt.Sprintf("P = %.2f at %.2f%% yearly gives an EMI of %.2f", amount, rate, emi)
	}
	return e
}

func explainGPA(result map[string]any) Explanation {
	e := Explanation{
		Formula: "GPA = sum(grade points * credits) / sum(credits)",
		Components: []string{
			"grade points: the numeric value of each letter grade",
			"credits: the weight of each course",
		},
		WhatItMeans: "On the 4.0 scale an A is worth 4.0, a B 3.0, a C 2.0 and so on. Heavier courses move the average the most.",
	}

	if gpa, ok := num(result, "gpa"); ok {
		e.YourCalculation = fmt.Sprintf("Your credit-weighted average works out to %.2f", gpa)
	}
	return e
}

func num(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	value, ok := m[key].(float64)
	return value, ok
}
