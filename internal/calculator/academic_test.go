package calculator

import "testing"

func TestComputeGPA(t *testing.T) {
	result, err := ComputeGPA(GPARequest{Courses: []Course{
		{Name: "Math", Grade: "A", Credits: 4},
		{Name: "Physics", Grade: "B", Credits: 3},
		{Name: "History", Grade: "C", Credits: 3},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (4*4 + 3*3 + 2*3) / 10 = 3.1
	if result.GPA != 3.1 {
		t.Errorf("expected GPA 3.1, got %v", result.GPA)
	}
	if result.TotalCredits != 10 {
		t.Errorf("expected 10 credits, got %v", result.TotalCredits)
	}
	if result.Grade != "B" {
		t.Errorf("expected letter B, got %q", result.Grade)
	}
}

func TestComputeGPAFivePointScale(t *testing.T) {
	result, err := ComputeGPA(GPARequest{
		Scale:   "5.0",
		Courses: []Course{{Name: "Math", Grade: "A", Credits: 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GPA != 5.0 {
		t.Errorf("expected GPA 5.0, got %v", result.GPA)
	}
}

func TestComputeGPAValidation(t *testing.T) {
	if _, err := ComputeGPA(GPARequest{}); err == nil {
		t.Error("expected error for empty course list")
	}
	if _, err := ComputeGPA(GPARequest{Courses: []Course{{Grade: "Z", Credits: 3}}}); err == nil {
		t.Error("expected error for unknown grade")
	}
	if _, err := ComputeGPA(GPARequest{Courses: []Course{{Grade: "A", Credits: 0}}}); err == nil {
		t.Error("expected error for zero credits")
	}
}

func TestComputeGrade(t *testing.T) {
	result, err := ComputeGrade(GradeRequest{Scored: 85, Total: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Percentage != 85 {
		t.Errorf("expected 85%%, got %v", result.Percentage)
	}
	if result.Grade != "A" {
		t.Errorf("expected grade A, got %q", result.Grade)
	}
}

func TestComputeGradeBoundaries(t *testing.T) {
	tests := []struct {
		scored float64
		grade  string
	}{
		{90, "A+"},
		{80, "A"},
		{70, "B"},
		{60, "C"},
		{50, "D"},
		{40, "E"},
		{39, "F"},
	}

	for _, tt := range tests {
		result, err := ComputeGrade(GradeRequest{Scored: tt.scored, Total: 100})
		if err != nil {
			t.Fatalf("unexpected error at %v: %v", tt.scored, err)
		}
		if result.Grade != tt.grade {
			t.Errorf("at %v%% expected %q, got %q", tt.scored, tt.grade, result.Grade)
		}
	}
}

func TestComputePercentage(t *testing.T) {
	result, err := ComputePercentage(PercentageRequest{Subjects: []SubjectScore{
		{Name: "Math", Scored: 90, Max: 100},
		{Name: "Science", Scored: 70, Max: 100},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Percentage != 80 {
		t.Errorf("expected 80%%, got %v", result.Percentage)
	}
	if len(result.Subjects) != 2 {
		t.Fatalf("expected 2 subject rows, got %d", len(result.Subjects))
	}
	if result.Subjects[0].Percentage != 90 {
		t.Errorf("expected subject percentage 90, got %v", result.Subjects[0].Percentage)
	}
}

func TestComputeAttendance(t *testing.T) {
	result, err := ComputeAttendance(AttendanceRequest{Attended: 80, Total: 100, Target: 75})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Percentage != 80 {
		t.Errorf("expected 80%%, got %v", result.Percentage)
	}
	if result.Status != "Good" {
		t.Errorf("expected status Good, got %q", result.Status)
	}
	// 80 attended of 100 at a 75% target allows missing 6 more:
	// (8000 - 7500) / 75 = 6.
	if result.CanMiss != 6 {
		t.Errorf("expected can_miss 6, got %d", result.CanMiss)
	}
	if result.ClassesNeeded != 0 {
		t.Errorf("expected classes_needed 0, got %d", result.ClassesNeeded)
	}
}

func TestComputeAttendanceBelowTarget(t *testing.T) {
	result, err := ComputeAttendance(AttendanceRequest{Attended: 60, Total: 100, Target: 75})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ClassesNeeded <= 0 {
		t.Fatalf("expected positive classes_needed, got %d", result.ClassesNeeded)
	}

	// Attending that many classes in a row must reach the target.
	attended := 60 + result.ClassesNeeded
	total := 100 + result.ClassesNeeded
	if pct := float64(attended) / float64(total) * 100; pct < 75 {
		t.Errorf("attending %d more classes only reaches %.2f%%", result.ClassesNeeded, pct)
	}
}

func TestComputeAttendanceDefaultTarget(t *testing.T) {
	result, err := ComputeAttendance(AttendanceRequest{Attended: 90, Total: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Target != 75 {
		t.Errorf("expected default target 75, got %v", result.Target)
	}
	if result.Status != "Excellent" {
		t.Errorf("expected status Excellent, got %q", result.Status)
	}
}
