package report

import (
	"encoding/json"
	"testing"
	"time"

	"calcsuite/internal/calculator"
)

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		calcType calculator.Type
		want     string
	}{
		{calculator.TypeBMI, "BMI_Calculator_Report_20260831.pdf"},
		{calculator.TypeCompoundInterest, "Compound_Interest_Calculator_Report_20260831.pdf"},
		{calculator.TypeCurrency, "Currency_Converter_Report_20260831.pdf"},
	}

	for _, tt := range tests {
		if got := Filename(tt.calcType, now); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.calcType, got, tt.want)
		}
	}
}

func TestBuildPageScalarsOnly(t *testing.T) {
	desc := buildPage(calculator.TypeBMI, map[string]any{
		"bmi":      24.22,
		"category": "Normal weight",
		"nested":   map[string]any{"skip": true},
		"list":     []any{1, 2, 3},
	})

	page, ok := desc.Pages["1"]
	if !ok {
		t.Fatal("expected page 1")
	}

	// Title, date line, and the two scalar fields.
	if len(page.Content.Text) != 4 {
		t.Fatalf("expected 4 text boxes, got %d", len(page.Content.Text))
	}
	if page.Content.Text[0].Value != "BMI Calculator Report" {
		t.Errorf("unexpected title %q", page.Content.Text[0].Value)
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	gen := NewGenerator()

	data, filename, err := gen.Generate(calculator.TypeBMI,
		json.RawMessage(`{"bmi": 24.22, "category": "Normal weight"}`))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if len(data) == 0 {
		t.Fatal("expected non-empty pdf bytes")
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("output does not start with a pdf header: %q", data[:5])
	}
	if filename == "" {
		t.Error("expected a filename")
	}
}

func TestGenerateInvalidResults(t *testing.T) {
	gen := NewGenerator()

	if _, _, err := gen.Generate(calculator.TypeBMI, json.RawMessage(`not json`)); err == nil {
		t.Error("expected error for malformed results")
	}
}

func TestLabelize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"bmi", "Bmi"},
		{"total_interest", "Total Interest"},
		{"monthly_principal_interest", "Monthly Principal Interest"},
	}

	for _, tt := range tests {
		if got := labelize(tt.in); got != tt.want {
			t.Errorf("labelize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
