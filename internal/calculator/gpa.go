package calculator

// GPARequest carries a list of courses with letter grades and credits.
// Scale is "4.0" (default) or "5.0".
type GPARequest struct {
	Scale   string   `json:"scale,omitempty"`
	Courses []Course `json:"courses"`
}

type Course struct {
	Name    string  `json:"name"`
	Grade   string  `json:"grade"`
	Credits float64 `json:"credits"`
}

type GPAResult struct {
	GPA          float64 `json:"gpa"`
	TotalCredits float64 `json:"total_credits"`
	Grade        string  `json:"grade"`
}

var gradePoints4 = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

var gradePoints5 = map[string]float64{
	"A+": 5.0, "A": 5.0, "A-": 4.7,
	"B+": 4.3, "B": 4.0, "B-": 3.7,
	"C+": 3.3, "C": 3.0, "C-": 2.7,
	"D+": 2.3, "D": 2.0, "D-": 1.7,
	"F": 0.0,
}

func ComputeGPA(req GPARequest) (GPAResult, error) {
	if len(req.Courses) == 0 {
		return GPAResult{}, invalidf("courses", "at least one course is required")
	}

	points := gradePoints4
	switch req.Scale {
	case "", "4.0":
	case "5.0":
		points = gradePoints5
	default:
		return GPAResult{}, invalidf("scale", "must be 4.0 or 5.0")
	}

	var totalPoints, totalCredits float64
	for _, course := range req.Courses {
		p, ok := points[course.Grade]
		if !ok {
			return GPAResult{}, invalidf("courses", "unknown grade %q", course.Grade)
		}
		if course.Credits <= 0 {
			return GPAResult{}, invalidf("courses", "credits must be positive")
		}
		totalPoints += p * course.Credits
		totalCredits += course.Credits
	}

	gpa := round2(totalPoints / totalCredits)

	return GPAResult{
		GPA:          gpa,
		TotalCredits: totalCredits,
		Grade:        letterForGPA(gpa, req.Scale == "5.0"),
	}, nil
}

func letterForGPA(gpa float64, fivePoint bool) string {
	if fivePoint {
		gpa = gpa * 4 / 5
	}
	switch {
	case gpa >= 3.7:
		return "A"
	case gpa >= 3.3:
		return "B+"
	case gpa >= 3.0:
		return "B"
	case gpa >= 2.7:
		return "B-"
	case gpa >= 2.3:
		return "C+"
	case gpa >= 2.0:
		return "C"
	case gpa >= 1.0:
		return "D"
	default:
		return "F"
	}
}
