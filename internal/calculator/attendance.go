package calculator

type AttendanceRequest struct {
	Attended int     `json:"attended"`
	Total    int     `json:"total"`
	Target   float64 `json:"target"`
}

type AttendanceResult struct {
	Percentage    float64 `json:"percentage"`
	Attended      int     `json:"attended"`
	Total         int     `json:"total"`
	Target        float64 `json:"target"`
	ClassesNeeded int     `json:"classes_needed"`
	CanMiss       int     `json:"can_miss"`
	Status        string  `json:"status"`
}

func ComputeAttendance(req AttendanceRequest) (AttendanceResult, error) {
	if req.Total <= 0 {
		return AttendanceResult{}, invalidf("total", "must be positive")
	}
	if req.Attended < 0 || req.Attended > req.Total {
		return AttendanceResult{}, invalidf("attended", "must be between 0 and total")
	}
	target := req.Target
	if target == 0 {
		target = 75
	}
	if target <= 0 || target >= 100 {
		return AttendanceResult{}, invalidf("target", "must be between 0 and 100")
	}

	attended := float64(req.Attended)
	total := float64(req.Total)
	pct := round2(attended / total * 100)

	var classesNeeded, canMiss int
	if pct < target {
		// Future classes must all be attended to reach the target.
		classesNeeded = int((target*total-100*attended)/(100-target)) + 1
	} else {
		canMiss = int((100*attended - target*total) / target)
	}

	return AttendanceResult{
		Percentage:    pct,
		Attended:      req.Attended,
		Total:         req.Total,
		Target:        target,
		ClassesNeeded: classesNeeded,
		CanMiss:       canMiss,
		Status:        attendanceStatus(pct, target),
	}, nil
}

func attendanceStatus(pct, target float64) string {
	switch {
	case pct >= target+10:
		return "Excellent"
	case pct >= target:
		return "Good"
	case pct >= target-5:
		return "Warning"
	case pct >= target-10:
		return "Critical"
	default:
		return "Danger"
	}
}
