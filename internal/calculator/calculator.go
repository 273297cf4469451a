package calculator

// Type identifies one of the supported calculators. Every dispatch on Type
// is an exhaustive switch so a new calculator fails to compile until it is
// wired everywhere.
type Type string

const (
	TypeBMI              Type = "bmi"
	TypeBMR              Type = "bmr"
	TypeLoan             Type = "loan"
	TypeMortgage         Type = "mortgage"
	TypeCompoundInterest Type = "compound_interest"
	TypeDiscount         Type = "discount"
	TypeCurrency         Type = "currency"
	TypeAge              Type = "age"
	TypeGPA              Type = "gpa"
	TypeGrade            Type = "grade"
	TypePercentage       Type = "percentage"
	TypeAttendance       Type = "attendance"
	TypeCalorie          Type = "calorie"
	TypeCalorieBurn      Type = "calorie_burn"
	TypeMacros           Type = "macros"
	TypeWaterIntake      Type = "water_intake"
	TypeSleep            Type = "sleep"
	TypePregnancy        Type = "pregnancy"
	TypeUnit             Type = "unit"
	TypeMath             Type = "math"
)

// AllTypes lists every calculator in catalog order.
var AllTypes = []Type{
	TypeBMI,
	TypeBMR,
	TypeLoan,
	TypeMortgage,
	TypeCompoundInterest,
	TypeDiscount,
	TypeCurrency,
	TypeAge,
	TypeGPA,
	TypeGrade,
	TypePercentage,
	TypeAttendance,
	TypeCalorie,
	TypeCalorieBurn,
	TypeMacros,
	TypeWaterIntake,
	TypeSleep,
	TypePregnancy,
	TypeUnit,
	TypeMath,
}

// ParseType maps a URL slug or stored identifier to a Type.
func ParseType(s string) (Type, bool) {
	for _, t := range AllTypes {
		if s == string(t) || s == t.Slug() {
			return t, true
		}
	}
	return "", false
}

// Slug returns the URL path segment for the calculator.
func (t Type) Slug() string {
	switch t {
	case TypeCompoundInterest:
		return "compound-interest"
	case TypeCurrency:
		return "currency-converter"
	case TypeUnit:
		return "unit-converter"
	case TypeCalorieBurn:
		return "calorie-burn"
	case TypeWaterIntake:
		return "water-intake"
	case TypeBMI, TypeBMR, TypeLoan, TypeMortgage, TypeDiscount, TypeAge,
		TypeGPA, TypeGrade, TypePercentage, TypeAttendance, TypeCalorie,
		TypeMacros, TypeSleep, TypePregnancy, TypeMath:
		return string(t)
	}
	return string(t)
}

// DisplayName returns the human-readable calculator name.
func (t Type) DisplayName() string {
	switch t {
	case TypeBMI:
		return "BMI Calculator"
	case TypeBMR:
		return "BMR Calculator"
	case TypeLoan:
		return "Loan Calculator"
	case TypeMortgage:
		return "Mortgage Calculator"
	case TypeCompoundInterest:
		return "Compound Interest Calculator"
	case TypeDiscount:
		return "Discount Calculator"
	case TypeCurrency:
		return "Currency Converter"
	case TypeAge:
		return "Age Calculator"
	case TypeGPA:
		return "GPA Calculator"
	case TypeGrade:
		return "Grade Calculator"
	case TypePercentage:
		return "Percentage Calculator"
	case TypeAttendance:
		return "Attendance Calculator"
	case TypeCalorie:
		return "Calorie Calculator"
	case TypeCalorieBurn:
		return "Calorie Burn Calculator"
	case TypeMacros:
		return "Macro Calculator"
	case TypeWaterIntake:
		return "Water Intake Calculator"
	case TypeSleep:
		return "Sleep Calculator"
	case TypePregnancy:
		return "Pregnancy Calculator"
	case TypeUnit:
		return "Unit Converter"
	case TypeMath:
		return "Math Calculator"
	}
	return string(t)
}
