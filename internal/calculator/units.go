package calculator

import "sort"

type UnitRequest struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Value    float64 `json:"value"`
}

type UnitResult struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Value    float64 `json:"value"`
	Result   float64 `json:"result"`
}

// unitFactors maps each unit to its size in the category's base unit.
// Temperature is handled separately since its scales are affine.
var unitFactors = map[string]map[string]float64{
	"length": {
		"millimeter": 0.001,
		"centimeter": 0.01,
		"meter":      1,
		"kilometer":  1000,
		"inch":       0.0254,
		"foot":       0.3048,
		"yard":       0.9144,
		"mile":       1609.344,
	},
	"weight": {
		"milligram": 0.000001,
		"gram":      0.001,
		"kilogram":  1,
		"tonne":     1000,
		"ounce":     0.0283495,
		"pound":     0.453592,
		"stone":     6.35029,
	},
	"volume": {
		"milliliter":  0.001,
		"liter":       1,
		"cubic_meter": 1000,
		"teaspoon":    0.00492892,
		"tablespoon":  0.0147868,
		"cup":         0.24,
		"pint":        0.473176,
		"quart":       0.946353,
		"gallon":      3.78541,
	},
	"area": {
		"square_millimeter": 0.000001,
		"square_centimeter": 0.0001,
		"square_meter":      1,
		"hectare":           10000,
		"square_kilometer":  1000000,
		"square_inch":       0.00064516,
		"square_foot":       0.092903,
		"square_yard":       0.836127,
		"acre":              4046.86,
		"square_mile":       2589988.11,
	},
	"speed": {
		"meters_per_second":   1,
		"kilometers_per_hour": 0.277778,
		"miles_per_hour":      0.44704,
		"knots":               0.514444,
		"feet_per_second":     0.3048,
	},
}

var temperatureUnits = []string{"celsius", "fahrenheit", "kelvin"}

func ComputeUnit(req UnitRequest) (UnitResult, error) {
	if req.Category == "temperature" {
		result, err := convertTemperature(req.From, req.To, req.Value)
		if err != nil {
			return UnitResult{}, err
		}
		return UnitResult{
			Category: req.Category,
			From:     req.From,
			To:       req.To,
			Value:    req.Value,
			Result:   result,
		}, nil
	}

	factors, ok := unitFactors[req.Category]
	if !ok {
		return UnitResult{}, invalidf("category", "unknown category %q", req.Category)
	}
	fromFactor, ok := factors[req.From]
	if !ok {
		return UnitResult{}, invalidf("from", "unknown unit %q in category %q", req.From, req.Category)
	}
	toFactor, ok := factors[req.To]
	if !ok {
		return UnitResult{}, invalidf("to", "unknown unit %q in category %q", req.To, req.Category)
	}

	return UnitResult{
		Category: req.Category,
		From:     req.From,
		To:       req.To,
		Value:    req.Value,
		Result:   roundN(req.Value*fromFactor/toFactor, 6),
	}, nil
}

func convertTemperature(from, to string, value float64) (float64, error) {
	var celsius float64
	switch from {
	case "celsius":
		celsius = value
	case "fahrenheit":
		celsius = (value - 32) * 5 / 9
	case "kelvin":
		celsius = value - 273.15
	default:
		return 0, invalidf("from", "unknown temperature unit %q", from)
	}

	switch to {
	case "celsius":
		return roundN(celsius, 2), nil
	case "fahrenheit":
		return roundN(celsius*9/5+32, 2), nil
	case "kelvin":
		return roundN(celsius+273.15, 2), nil
	default:
		return 0, invalidf("to", "unknown temperature unit %q", to)
	}
}

// UnitCategories lists every supported category.
func UnitCategories() []string {
	cats := make([]string, 0, len(unitFactors)+1)
	for cat := range unitFactors {
		cats = append(cats, cat)
	}
	cats = append(cats, "temperature")
	sort.Strings(cats)
	return cats
}

// UnitsForCategory lists the units in a category, or false for an unknown
// category.
func UnitsForCategory(category string) ([]string, bool) {
	if category == "temperature" {
		return append([]string(nil), temperatureUnits...), true
	}
	factors, ok := unitFactors[category]
	if !ok {
		return nil, false
	}
	units := make([]string, 0, len(factors))
	for unit := range factors {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units, true
}
