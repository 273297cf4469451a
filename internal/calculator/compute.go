package calculator

import (
	"encoding/json"
	"fmt"
)

// Compute decodes the raw request body for the given calculator and runs
// it. The switch is exhaustive over AllTypes.
func Compute(t Type, body json.RawMessage) (any, error) {
	switch t {
	case TypeBMI:
		return decodeAndRun(body, ComputeBMI)
	case TypeBMR:
		return decodeAndRun(body, ComputeBMR)
	case TypeLoan:
		return decodeAndRun(body, ComputeLoan)
	case TypeMortgage:
		return decodeAndRun(body, ComputeMortgage)
	case TypeCompoundInterest:
		return decodeAndRun(body, ComputeCompoundInterest)
	case TypeDiscount:
		return decodeAndRun(body, ComputeDiscount)
	case TypeCurrency:
		return decodeAndRun(body, ComputeCurrency)
	case TypeAge:
		return decodeAndRun(body, ComputeAge)
	case TypeGPA:
		return decodeAndRun(body, ComputeGPA)
	case TypeGrade:
		return decodeAndRun(body, ComputeGrade)
	case TypePercentage:
		return decodeAndRun(body, ComputePercentage)
	case TypeAttendance:
		return decodeAndRun(body, ComputeAttendance)
	case TypeCalorie:
		return decodeAndRun(body, ComputeCalorie)
	case TypeCalorieBurn:
		return decodeAndRun(body, ComputeCalorieBurn)
	case TypeMacros:
		return decodeAndRun(body, ComputeMacros)
	case TypeWaterIntake:
		return decodeAndRun(body, ComputeWaterIntake)
	case TypeSleep:
		return decodeAndRun(body, ComputeSleep)
	case TypePregnancy:
		return decodeAndRun(body, ComputePregnancy)
	case TypeUnit:
		return decodeAndRun(body, ComputeUnit)
	case TypeMath:
		return decodeAndRun(body, ComputeMath)
	}
	return nil, fmt.Errorf("unknown calculator type %q", t)
}

func decodeAndRun[Req any, Res any](body json.RawMessage, run func(Req) (Res, error)) (any, error) {
	var req Req
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &ValidationError{Message: "invalid request body: " + err.Error()}
	}
	return run(req)
}
