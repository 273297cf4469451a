package calculator

import "time"

// PregnancyRequest carries the first day of the last menstrual period and
// the average cycle length in days.
type PregnancyRequest struct {
	LastPeriod  string `json:"last_period"`
	CycleLength int    `json:"cycle_length"`
	AsOf        string `json:"as_of,omitempty"`
}

type PregnancyResult struct {
	DueDate        string `json:"due_date"`
	WeeksPregnant  int    `json:"weeks_pregnant"`
	DaysPregnant   int    `json:"days_pregnant"`
	DaysRemaining  int    `json:"days_remaining"`
	Trimester      int    `json:"trimester"`
	ConceptionDate string `json:"conception_date"`
}

func ComputePregnancy(req PregnancyRequest) (PregnancyResult, error) {
	lmp, err := time.Parse("2006-01-02", req.LastPeriod)
	if err != nil {
		return PregnancyResult{}, invalidf("last_period", "must be a valid YYYY-MM-DD date")
	}

	cycle := req.CycleLength
	if cycle == 0 {
		cycle = 28
	}
	if cycle < 21 || cycle > 35 {
		return PregnancyResult{}, invalidf("cycle_length", "must be between 21 and 35 days")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if req.AsOf != "" {
		today, err = time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			return PregnancyResult{}, invalidf("as_of", "must be a valid YYYY-MM-DD date")
		}
	}

	if lmp.After(today) {
		return PregnancyResult{}, domainf("last period date is in the future")
	}

	// Naegele's rule adjusted for cycle length.
	dueDate := lmp.AddDate(0, 0, 280+(cycle-28))
	conception := lmp.AddDate(0, 0, cycle-14)

	daysPregnant := int(today.Sub(lmp).Hours() / 24)
	if daysPregnant > 310 {
		return PregnancyResult{}, domainf("last period date is too far in the past")
	}

	weeks := daysPregnant / 7
	var trimester int
	switch {
	case weeks < 13:
		trimester = 1
	case weeks < 27:
		trimester = 2
	default:
		trimester = 3
	}

	daysRemaining := int(dueDate.Sub(today).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return PregnancyResult{
		DueDate:        dueDate.Format("2006-01-02"),
		WeeksPregnant:  weeks,
		DaysPregnant:   daysPregnant,
		DaysRemaining:  daysRemaining,
		Trimester:      trimester,
		ConceptionDate: conception.Format("2006-01-02"),
	}, nil
}
