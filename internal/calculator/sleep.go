package calculator

import (
	"fmt"
	"time"
)

// SleepRequest works in one of two modes. With WakeTime set it suggests
// bedtimes, with SleepTime set it suggests wake times. ActualSleepHours,
// when positive, adds a sleep debt assessment.
type SleepRequest struct {
	WakeTime         string  `json:"wake_time,omitempty"`
	SleepTime        string  `json:"sleep_time,omitempty"`
	ActualSleepHours float64 `json:"actual_sleep_hours,omitempty"`
}

type SleepOption struct {
	Time    string  `json:"time"`
	Cycles  int     `json:"cycles"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
}

type SleepResult struct {
	Options   []SleepOption `json:"options"`
	Mode      string        `json:"mode"`
	SleepDebt float64       `json:"sleep_debt,omitempty"`
	DebtNote  string        `json:"debt_note,omitempty"`
}

const (
	sleepCycleMinutes = 90
	fallAsleepMinutes = 15
	optimalSleepHours = 8
)

func ComputeSleep(req SleepRequest) (SleepResult, error) {
	var result SleepResult

	switch {
	case req.WakeTime != "":
		wake, err := parseClock(req.WakeTime)
		if err != nil {
			return SleepResult{}, invalidf("wake_time", "must be HH:MM")
		}
		result.Mode = "bedtimes"
		for _, cycles := range []int{6, 5, 4} {
			minutes := cycles*sleepCycleMinutes + fallAsleepMinutes
			bed := wake.Add(-time.Duration(minutes) * time.Minute)
			result.Options = append(result.Options, sleepOption(bed, cycles))
		}

	case req.SleepTime != "":
		sleep, err := parseClock(req.SleepTime)
		if err != nil {
			return SleepResult{}, invalidf("sleep_time", "must be HH:MM")
		}
		result.Mode = "wake_times"
		for _, cycles := range []int{4, 5, 6} {
			minutes := cycles*sleepCycleMinutes + fallAsleepMinutes
			wake := sleep.Add(time.Duration(minutes) * time.Minute)
			result.Options = append(result.Options, sleepOption(wake, cycles))
		}

	default:
		return SleepResult{}, invalidf("wake_time", "either wake_time or sleep_time is required")
	}

	if req.ActualSleepHours > 0 {
		debt := optimalSleepHours - req.ActualSleepHours
		if debt < 0 {
			debt = 0
		}
		result.SleepDebt = round1(debt)
		if debt == 0 {
			result.DebtNote = "You are meeting the recommended 8 hours."
		} else {
			result.DebtNote = fmt.Sprintf("You are %.1f hours short of the recommended 8 hours.", debt)
		}
	}

	return result, nil
}

func sleepOption(t time.Time, cycles int) SleepOption {
	return SleepOption{
		Time:    t.Format("15:04"),
		Cycles:  cycles,
		Hours:   round1(float64(cycles) * 1.5),
		Quality: sleepQuality(cycles),
	}
}

func sleepQuality(cycles int) string {
	switch {
	case cycles >= 6:
		return "Excellent"
	case cycles == 5:
		return "Good"
	default:
		return "Adequate"
	}
}

func parseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}

// SleepTips is the static advice catalog served alongside the calculator.
var SleepTips = []string{
	"Keep a consistent sleep schedule, even on weekends.",
	"Avoid screens for at least 30 minutes before bed.",
	"Keep your bedroom cool, dark and quiet.",
	"Avoid caffeine after mid afternoon.",
	"Get natural daylight exposure in the morning.",
	"Avoid heavy meals within 2 hours of bedtime.",
	"Reserve your bed for sleep, not work.",
	"If you cannot fall asleep in 20 minutes, get up and do something calm.",
}
