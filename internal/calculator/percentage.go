package calculator

type PercentageRequest struct {
	Subjects []SubjectScore `json:"subjects"`
}

type SubjectScore struct {
	Name   string  `json:"name"`
	Scored float64 `json:"scored"`
	Max    float64 `json:"max"`
}

type SubjectResult struct {
	Name       string  `json:"name"`
	Scored     float64 `json:"scored"`
	Max        float64 `json:"max"`
	Percentage float64 `json:"percentage"`
}

type PercentageResult struct {
	Percentage  float64         `json:"percentage"`
	TotalScored float64         `json:"total_scored"`
	TotalMax    float64         `json:"total_max"`
	Subjects    []SubjectResult `json:"subjects"`
}

func ComputePercentage(req PercentageRequest) (PercentageResult, error) {
	if len(req.Subjects) == 0 {
		return PercentageResult{}, invalidf("subjects", "at least one subject is required")
	}

	var totalScored, totalMax float64
	subjects := make([]SubjectResult, 0, len(req.Subjects))

	for _, s := range req.Subjects {
		if s.Max <= 0 {
			return PercentageResult{}, invalidf("subjects", "max marks must be positive")
		}
		if s.Scored < 0 || s.Scored > s.Max {
			return PercentageResult{}, invalidf("subjects", "scored marks must be between 0 and max")
		}
		totalScored += s.Scored
		totalMax += s.Max
		subjects = append(subjects, SubjectResult{
			Name:       s.Name,
			Scored:     s.Scored,
			Max:        s.Max,
			Percentage: round2(s.Scored / s.Max * 100),
		})
	}

	return PercentageResult{
		Percentage:  round2(totalScored / totalMax * 100),
		TotalScored: totalScored,
		TotalMax:    totalMax,
		Subjects:    subjects,
	}, nil
}
