package calculator

import "sort"

// CalorieBurnRequest computes calories burned for one activity, or a
// comparison across Activities when that list is non-empty.
type CalorieBurnRequest struct {
	Activity   string   `json:"activity"`
	Weight     float64  `json:"weight"`
	Duration   float64  `json:"duration"`
	Activities []string `json:"activities,omitempty"`
}

type ActivityBurn struct {
	Activity  string  `json:"activity"`
	Name      string  `json:"name"`
	MET       float64 `json:"met"`
	Calories  float64 `json:"calories"`
	Intensity string  `json:"intensity"`
}

type CalorieBurnResult struct {
	Activity    string         `json:"activity"`
	Name        string         `json:"name"`
	MET         float64        `json:"met"`
	Calories    float64        `json:"calories"`
	Intensity   string         `json:"intensity"`
	FatBurnedLb float64        `json:"fat_burned_lb"`
	Comparisons []ActivityBurn `json:"comparisons,omitempty"`
}

type activityInfo struct {
	Name string
	MET  float64
}

var metTable = map[string]activityInfo{
	"walking_slow":      {"Walking (slow)", 2.8},
	"walking_brisk":     {"Walking (brisk)", 3.8},
	"running_8kmh":      {"Running (8 km/h)", 8.3},
	"running_10kmh":     {"Running (10 km/h)", 9.8},
	"running_12kmh":     {"Running (12 km/h)", 11.8},
	"cycling_leisure":   {"Cycling (leisure)", 4.0},
	"cycling_moderate":  {"Cycling (moderate)", 6.8},
	"cycling_vigorous":  {"Cycling (vigorous)", 10.0},
	"swimming_leisure":  {"Swimming (leisure)", 6.0},
	"swimming_laps":     {"Swimming (laps)", 8.0},
	"jumping_rope":      {"Jumping rope", 11.0},
	"hiking":            {"Hiking", 6.0},
	"dancing":           {"Dancing", 4.8},
	"yoga":              {"Yoga", 2.5},
	"pilates":           {"Pilates", 3.0},
	"weightlifting":     {"Weight lifting", 3.5},
	"circuit_training":  {"Circuit training", 8.0},
	"rowing_moderate":   {"Rowing (moderate)", 7.0},
	"elliptical":        {"Elliptical trainer", 5.0},
	"stair_climbing":    {"Stair climbing", 8.8},
	"basketball":        {"Basketball", 6.5},
	"soccer":            {"Soccer", 7.0},
	"tennis":            {"Tennis", 7.3},
	"badminton":         {"Badminton", 5.5},
	"volleyball":        {"Volleyball", 4.0},
	"table_tennis":      {"Table tennis", 4.0},
	"martial_arts":      {"Martial arts", 10.3},
	"skating":           {"Skating", 7.0},
	"skiing":            {"Skiing", 7.0},
	"gardening":         {"Gardening", 3.8},
}

func ComputeCalorieBurn(req CalorieBurnRequest) (CalorieBurnResult, error) {
	if req.Weight < 20 || req.Weight > 500 {
		return CalorieBurnResult{}, invalidf("weight", "must be between 20 and 500 kg")
	}
	if req.Duration <= 0 || req.Duration > 1440 {
		return CalorieBurnResult{}, invalidf("duration", "must be between 0 and 1440 minutes")
	}

	info, ok := metTable[req.Activity]
	if !ok {
		return CalorieBurnResult{}, invalidf("activity", "unknown activity %q", req.Activity)
	}

	hours := req.Duration / 60
	calories := info.MET * req.Weight * hours

	result := CalorieBurnResult{
		Activity:  req.Activity,
		Name:      info.Name,
		MET:       info.MET,
		Calories:  round1(calories),
		Intensity: intensity(info.MET),
		// 3500 kcal per pound of body fat.
		FatBurnedLb: roundN(calories/3500, 3),
	}

	for _, key := range req.Activities {
		other, ok := metTable[key]
		if !ok {
			return CalorieBurnResult{}, invalidf("activities", "unknown activity %q", key)
		}
		result.Comparisons = append(result.Comparisons, ActivityBurn{
			Activity:  key,
			Name:      other.Name,
			MET:       other.MET,
			Calories:  round1(other.MET * req.Weight * hours),
			Intensity: intensity(other.MET),
		})
	}

	return result, nil
}

func intensity(met float64) string {
	switch {
	case met < 3:
		return "Light"
	case met < 6:
		return "Moderate"
	case met < 9:
		return "Vigorous"
	default:
		return "Very Vigorous"
	}
}

// SupportedActivities lists the MET catalog sorted by key.
func SupportedActivities() []ActivityBurn {
	out := make([]ActivityBurn, 0, len(metTable))
	for key, info := range metTable {
		out = append(out, ActivityBurn{
			Activity:  key,
			Name:      info.Name,
			MET:       info.MET,
			Intensity: intensity(info.MET),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Activity < out[j].Activity })
	return out
}
