package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"calcsuite/internal/calculator"
	"calcsuite/internal/history"
	"calcsuite/internal/observability"
)

func TestMain(m *testing.M) {
	observability.Logger = zap.NewNop()
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestService(t *testing.T) (*Service, *history.Store) {
	t.Helper()

	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewService(store), store
}

func saveBMI(t *testing.T, store *history.Store, bmi float64) {
	t.Helper()

	results := json.RawMessage(fmt.Sprintf(`{"bmi": %v, "category": "x"}`, bmi))
	if _, err := store.Save(context.Background(), "bmi", json.RawMessage(`{}`), results); err != nil {
		t.Fatalf("save failed: %v", err)
	}
}

func TestTrends(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	saveBMI(t, store, 24.0)
	saveBMI(t, store, 24.5)
	saveBMI(t, store, 25.0)

	trends, err := service.Trends(ctx)
	if err != nil {
		t.Fatalf("trends failed: %v", err)
	}
	if len(trends) != 1 {
		t.Fatalf("expected 1 trend, got %d", len(trends))
	}

	trend := trends[0]
	if trend.CalculatorType != "bmi" {
		t.Errorf("expected bmi trend, got %q", trend.CalculatorType)
	}
	if trend.Direction != "up" {
		t.Errorf("expected upward direction, got %q", trend.Direction)
	}
	if trend.Change != 1.0 {
		t.Errorf("expected change 1.0, got %v", trend.Change)
	}
	// Points are chronological, oldest first.
	if trend.Points[0].Value != 24.0 || trend.Points[2].Value != 25.0 {
		t.Errorf("points not in chronological order: %+v", trend.Points)
	}
	if trend.Min != 24.0 || trend.Max != 25.0 {
		t.Errorf("expected min 24 max 25, got %v and %v", trend.Min, trend.Max)
	}
	if trend.Average != 24.5 {
		t.Errorf("expected average 24.5, got %v", trend.Average)
	}
}

func TestTrendsEmptyHistory(t *testing.T) {
	service, _ := newTestService(t)

	trends, err := service.Trends(context.Background())
	if err != nil {
		t.Fatalf("trends failed: %v", err)
	}
	if len(trends) != 0 {
		t.Errorf("expected no trends for empty history, got %d", len(trends))
	}
}

func TestChartBMI(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	saveBMI(t, store, 23.5)
	saveBMI(t, store, 24.2)

	chart, err := service.Chart(ctx, calculator.TypeBMI)
	if err != nil {
		t.Fatalf("chart failed: %v", err)
	}

	if chart.Type != "line" {
		t.Errorf("expected line chart, got %q", chart.Type)
	}
	if len(chart.Datasets) != 1 || len(chart.Datasets[0].Data) != 2 {
		t.Fatalf("unexpected datasets: %+v", chart.Datasets)
	}
	if chart.Datasets[0].BorderColor != "#3498db" {
		t.Errorf("expected border color #3498db, got %q", chart.Datasets[0].BorderColor)
	}
	if len(chart.Annotations) != 3 {
		t.Errorf("expected 3 reference lines, got %d", len(chart.Annotations))
	}
}

func TestChartUnknownType(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.Chart(context.Background(), calculator.TypeMath); err == nil {
		t.Error("expected error for a calculator without a chart")
	}
}

func TestCacheInvalidatesOnMutation(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	saveBMI(t, store, 24.0)

	first, err := service.Usage(ctx)
	if err != nil {
		t.Fatalf("usage failed: %v", err)
	}
	if first.Total != 1 {
		t.Fatalf("expected total 1, got %d", first.Total)
	}

	// A second read without mutations must serve the cached view.
	again, err := service.Usage(ctx)
	if err != nil {
		t.Fatalf("usage failed: %v", err)
	}
	if again.Total != 1 {
		t.Errorf("cached read changed: %d", again.Total)
	}

	saveBMI(t, store, 25.0)

	after, err := service.Usage(ctx)
	if err != nil {
		t.Fatalf("usage failed: %v", err)
	}
	if after.Total != 2 {
		t.Errorf("expected recomputed total 2 after save, got %d", after.Total)
	}
}

func TestUsageStats(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	saveBMI(t, store, 24.0)
	saveBMI(t, store, 24.5)
	if _, err := store.Save(ctx, "loan", json.RawMessage(`{}`), json.RawMessage(`{"emi": 100}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stats, err := service.Usage(ctx)
	if err != nil {
		t.Fatalf("usage failed: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("expected 3 total, got %d", stats.Total)
	}
	if stats.MostUsed != "bmi" {
		t.Errorf("expected bmi as most used, got %q", stats.MostUsed)
	}
	if stats.Chart.Type != "pie" {
		t.Errorf("expected pie chart, got %q", stats.Chart.Type)
	}

	weekdayTotal := 0
	for _, count := range stats.ByWeekday {
		weekdayTotal += count
	}
	if weekdayTotal != 3 {
		t.Errorf("weekday counts should cover every entry, got %v", stats.ByWeekday)
	}
}

func TestInsightsStarterMessage(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	saveBMI(t, store, 24.0)

	insights, err := service.Insights(ctx)
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	// One entry is below the two-reading threshold for a BMI insight.
	if len(insights) != 1 || insights[0].CalculatorType != "" {
		t.Fatalf("expected the starter insight, got %+v", insights)
	}
}

func TestInsightsBMITrend(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	saveBMI(t, store, 24.0)
	saveBMI(t, store, 25.0)

	insights, err := service.Insights(ctx)
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	if insights[0].CalculatorType != "bmi" {
		t.Errorf("expected a bmi insight, got %+v", insights[0])
	}
	if insights[0].Recommendation == "" {
		t.Error("rising BMI should carry a recommendation")
	}
}

func TestLoanVisualization(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	inputs := json.RawMessage(`{"amount": 100000, "rate": 12, "duration": 1}`)
	results := json.RawMessage(`{"emi": 8884.88, "total_interest": 6618.55, "total_payment": 106618.55, "principal": 100000}`)
	if _, err := store.Save(ctx, "loan", inputs, results); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	viz, err := service.LoanVisualization(ctx)
	if err != nil {
		t.Fatalf("loan visualization failed: %v", err)
	}

	if viz.Chart.Type != "doughnut" {
		t.Errorf("expected doughnut chart, got %q", viz.Chart.Type)
	}
	if viz.Principal != 100000 {
		t.Errorf("expected principal 100000, got %v", viz.Principal)
	}
	if len(viz.Amortization) != 12 {
		t.Errorf("expected 12 amortization rows, got %d", len(viz.Amortization))
	}

	// Interest falls month over month on an amortized loan.
	if viz.Amortization[0].Interest <= viz.Amortization[11].Interest {
		t.Errorf("interest should decrease over time: %+v", viz.Amortization)
	}
}

func TestLoanVisualizationEmpty(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.LoanVisualization(context.Background()); err == nil {
		t.Error("expected error with no loan history")
	}
}
