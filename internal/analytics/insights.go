package analytics

import (
	"context"
	"fmt"

	"calcsuite/internal/calculator"
)

// Insight is one observation with an optional recommendation.
type Insight struct {
	CalculatorType string `json:"calculator_type"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Insights inspects recent history and produces rule-based observations.
func (s *Service) Insights(ctx context.Context) ([]Insight, error) {
	value, err := s.cached(ctx, "insights", func(ctx context.Context) (any, error) {
		return s.computeInsights(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]Insight), nil
}

func (s *Service) computeInsights(ctx context.Context) ([]Insight, error) {
	insights := []Insight{}

	bmiPoints, err := s.metricHistory(ctx, calculator.TypeBMI, "bmi", 5)
	if err != nil {
		return nil, err
	}
	if insight, ok := bmiInsight(bmiPoints); ok {
		insights = append(insights, insight)
	}

	gpaPoints, err := s.metricHistory(ctx, calculator.TypeGPA, "gpa", 5)
	if err != nil {
		return nil, err
	}
	if insight, ok := gpaInsight(gpaPoints); ok {
		insights = append(insights, insight)
	}

	attendancePoints, err := s.metricHistory(ctx, calculator.TypeAttendance, "percentage", 5)
	if err != nil {
		return nil, err
	}
	if insight, ok := attendanceInsight(attendancePoints); ok {
		insights = append(insights, insight)
	}

	if len(insights) == 0 {
		insights = append(insights, Insight{
			Message:        "Not enough history for insights yet.",
			Recommendation: "Save a few calculations and check back.",
		})
	}

	return insights, nil
}

func bmiInsight(points []TrendPoint) (Insight, bool) {
	if len(points) < 2 {
		return Insight{}, false
	}

	change := points[len(points)-1].Value - points[0].Value
	latest := points[len(points)-1].Value

	insight := Insight{CalculatorType: string(calculator.TypeBMI)}
	switch {
	case change > 0.5:
		insight.Message = fmt.Sprintf("Your BMI has risen by %.1f over your last %d calculations.", change, len(points))
		insight.Recommendation = "Consider reviewing your calorie intake and activity level."
	case change < -0.5:
		insight.Message = fmt.Sprintf("Your BMI has dropped by %.1f over your last %d calculations.", -change, len(points))
		insight.Recommendation = "Nice progress. Keep your current routine going."
	default:
		insight.Message = fmt.Sprintf("Your BMI has been stable around %.1f.", latest)
	}
	return insight, true
}

func gpaInsight(points []TrendPoint) (Insight, bool) {
	if len(points) < 2 {
		return Insight{}, false
	}

	change := points[len(points)-1].Value - points[0].Value
	latest := points[len(points)-1].Value

	insight := Insight{CalculatorType: string(calculator.TypeGPA)}
	switch {
	case change > 0.1:
		insight.Message = fmt.Sprintf("Your GPA is trending up, now at %.2f.", latest)
		insight.Recommendation = "Keep up the study habits that got you here."
	case change < -0.1:
		insight.Message = fmt.Sprintf("Your GPA has slipped to %.2f.", latest)
		insight.Recommendation = "Focus on the courses pulling your average down."
	default:
		insight.Message = fmt.Sprintf("Your GPA is holding steady at %.2f.", latest)
	}
	return insight, true
}

func attendanceInsight(points []TrendPoint) (Insight, bool) {
	if len(points) == 0 {
		return Insight{}, false
	}

	latest := points[len(points)-1].Value

	insight := Insight{CalculatorType: string(calculator.TypeAttendance)}
	switch {
	case latest < 75:
		insight.Message = fmt.Sprintf("Your attendance is at %.1f%%, below the usual 75%% requirement.", latest)
		insight.Recommendation = "Attend upcoming classes consistently to recover."
	case latest < 85:
		insight.Message = fmt.Sprintf("Your attendance is at %.1f%%, close to the minimum.", latest)
		insight.Recommendation = "A few missed classes could put you below the requirement."
	default:
		insight.Message = fmt.Sprintf("Your attendance is healthy at %.1f%%.", latest)
	}
	return insight, true
}
