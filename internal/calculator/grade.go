package calculator

type GradeRequest struct {
	Scored float64 `json:"scored"`
	Total  float64 `json:"total"`
}

type GradeResult struct {
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
	Color      string  `json:"color"`
	Scored     float64 `json:"scored"`
	Total      float64 `json:"total"`
}

func ComputeGrade(req GradeRequest) (GradeResult, error) {
	if req.Total <= 0 {
		return GradeResult{}, invalidf("total", "must be positive")
	}
	if req.Scored < 0 || req.Scored > req.Total {
		return GradeResult{}, invalidf("scored", "must be between 0 and total")
	}

	pct := round2(req.Scored / req.Total * 100)
	grade, color := letterGrade(pct)

	return GradeResult{
		Percentage: pct,
		Grade:      grade,
		Color:      color,
		Scored:     req.Scored,
		Total:      req.Total,
	}, nil
}

func letterGrade(pct float64) (string, string) {
	switch {
	case pct >= 90:
		return "A+", "#2ecc71"
	case pct >= 80:
		return "A", "#27ae60"
	case pct >= 70:
		return "B", "#3498db"
	case pct >= 60:
		return "C", "#f39c12"
	case pct >= 50:
		return "D", "#e67e22"
	case pct >= 40:
		return "E", "#e74c3c"
	default:
		return "F", "#c0392b"
	}
}
