package calculator

import "time"

// AgeRequest carries dates in YYYY-MM-DD form. AsOf defaults to today.
type AgeRequest struct {
	BirthDate string `json:"birth_date"`
	AsOf      string `json:"as_of,omitempty"`
}

type AgeResult struct {
	Years       int `json:"years"`
	Months      int `json:"months"`
	Days        int `json:"days"`
	TotalDays   int `json:"total_days"`
	TotalWeeks  int `json:"total_weeks"`
	TotalMonths int `json:"total_months"`
}

func ComputeAge(req AgeRequest) (AgeResult, error) {
	birth, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return AgeResult{}, invalidf("birth_date", "must be a valid YYYY-MM-DD date")
	}

	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if req.AsOf != "" {
		asOf, err = time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			return AgeResult{}, invalidf("as_of", "must be a valid YYYY-MM-DD date")
		}
	}

	if birth.After(asOf) {
		return AgeResult{}, domainf("birth date is in the future")
	}

	years := asOf.Year() - birth.Year()
	months := int(asOf.Month()) - int(birth.Month())
	days := asOf.Day() - birth.Day()

	if days < 0 {
		// Borrow the length of the month preceding asOf.
		prev := asOf.AddDate(0, 0, -asOf.Day())
		days += prev.Day()
		months--
	}
	if months < 0 {
		months += 12
		years--
	}

	totalDays := int(asOf.Sub(birth).Hours() / 24)

	return AgeResult{
		Years:       years,
		Months:      months,
		Days:        days,
		TotalDays:   totalDays,
		TotalWeeks:  totalDays / 7,
		TotalMonths: years*12 + months,
	}, nil
}
