package advisor

import (
	"fmt"
	"sort"

	"calcsuite/internal/calculator"
)

// FocusSubject is a course whose grade drags the GPA down.
type FocusSubject struct {
	Name   string  `json:"name"`
	Grade  string  `json:"grade"`
	Points float64 `json:"points"`
	Impact float64 `json:"impact"`
}

// GPARecommendation identifies weak courses and projects the ceiling GPA.
type GPARecommendation struct {
	CurrentGPA      float64        `json:"current_gpa"`
	FocusSubjects   []FocusSubject `json:"focus_subjects"`
	PredictedGPA    float64        `json:"predicted_gpa"`
	ImprovementPlan []string       `json:"improvement_plan"`
	Explanation     string         `json:"explanation"`
}

func RecommendForGPA(courses []calculator.Course) (GPARecommendation, error) {
	result, err := calculator.ComputeGPA(calculator.GPARequest{Courses: courses})
	if err != nil {
		return GPARecommendation{}, err
	}

	gradePoints := map[string]float64{
		"A+": 4.0, "A": 4.0, "A-": 3.7,
		"B+": 3.3, "B": 3.0, "B-": 2.7,
		"C+": 2.3, "C": 2.0, "C-": 1.7,
		"D+": 1.3, "D": 1.0, "D-": 0.7,
		"F": 0.0,
	}

	focus := []FocusSubject{}
	var totalPoints, totalCredits float64
	for _, course := range courses {
		points := gradePoints[course.Grade]
		totalCredits += course.Credits

		if points < 3.0 {
			focus = append(focus, FocusSubject{
				Name:   course.Name,
				Grade:  course.Grade,
				Points: points,
				// Impact is the GPA points recoverable by lifting
				// this course to a B.
				Impact: course.Credits * (3.0 - points),
			})
			totalPoints += 3.0 * course.Credits
		} else {
			totalPoints += points * course.Credits
		}
	}

	sort.Slice(focus, func(i, j int) bool { return focus[i].Impact > focus[j].Impact })

	predicted := result.GPA
	if totalCredits > 0 {
		predicted = roundHundredth(totalPoints / totalCredits)
	}

	rec := GPARecommendation{
		CurrentGPA:    result.GPA,
		FocusSubjects: focus,
		PredictedGPA:  predicted,
		ImprovementPlan: []string{
			"Schedule fixed weekly study blocks for your weakest courses.",
			"Use office hours within a week of any grade below B.",
			"Form a study group for courses with heavy problem sets.",
		},
	}

	if len(focus) == 0 {
		rec.Explanation = fmt.Sprintf("Your GPA of %.2f has no courses below a B. Keep your current approach.", result.GPA)
	} else {
		rec.Explanation = fmt.Sprintf(
			"Your GPA is %.2f. Raising your %d weakest course(s) to a B would lift it to about %.2f. Start with %s, which has the largest impact.",
			result.GPA, len(focus), predicted, focus[0].Name)
	}

	return rec, nil
}

func roundHundredth(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
