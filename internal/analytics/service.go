package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"sync"

	"calcsuite/internal/calculator"
	"calcsuite/internal/history"
)

// Service derives trends, charts and insights from saved history.
//
// Derived views are cached per store generation. A mutation bumps the
// store's counter which makes the next read recompute instead of serving
// stale data.
type Service struct {
	store *history.Store

	mu        sync.Mutex
	cacheGen  int64
	cacheData map[string]any
}

func NewService(store *history.Store) *Service {
	return &Service{store: store, cacheGen: -1}
}

func (s *Service) cached(ctx context.Context, key string, compute func(context.Context) (any, error)) (any, error) {
	gen := s.store.Generation()

	s.mu.Lock()
	if s.cacheGen == gen {
		if value, ok := s.cacheData[key]; ok {
			s.mu.Unlock()
			return value, nil
		}
	} else {
		s.cacheGen = gen
		s.cacheData = map[string]any{}
	}
	s.mu.Unlock()

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.cacheGen == gen {
		s.cacheData[key] = value
	}
	s.mu.Unlock()

	return value, nil
}

// TrendPoint is one historical value of a tracked metric.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Trend summarizes the recent movement of one calculator's key metric.
type Trend struct {
	CalculatorType string       `json:"calculator_type"`
	Metric         string       `json:"metric"`
	Points         []TrendPoint `json:"points"`
	Direction      string       `json:"direction"`
	Change         float64      `json:"change"`
	Average        float64      `json:"average"`
	Min            float64      `json:"min"`
	Max            float64      `json:"max"`
	From           string       `json:"from"`
	To             string       `json:"to"`
}

// trendMetrics maps calculator types to the result field tracked over time.
var trendMetrics = map[calculator.Type]string{
	calculator.TypeBMI:        "bmi",
	calculator.TypeGPA:        "gpa",
	calculator.TypeAttendance: "percentage",
	calculator.TypeCalorie:    "calories",
}

// Trends returns the movement of every tracked metric with history.
func (s *Service) Trends(ctx context.Context) ([]Trend, error) {
	value, err := s.cached(ctx, "trends", func(ctx context.Context) (any, error) {
		return s.computeTrends(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]Trend), nil
}

func (s *Service) computeTrends(ctx context.Context) ([]Trend, error) {
	trends := []Trend{}

	types := make([]calculator.Type, 0, len(trendMetrics))
	for t := range trendMetrics {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, calcType := range types {
		metric := trendMetrics[calcType]

		points, err := s.metricHistory(ctx, calcType, metric, 10)
		if err != nil {
			return nil, err
		}
		if len(points) == 0 {
			continue
		}

		trend := Trend{
			CalculatorType: string(calcType),
			Metric:         metric,
			Points:         points,
			Direction:      "stable",
			From:           points[0].Date,
			To:             points[len(points)-1].Date,
			Min:            points[0].Value,
			Max:            points[0].Value,
		}

		sum := 0.0
		for _, point := range points {
			sum += point.Value
			if point.Value < trend.Min {
				trend.Min = point.Value
			}
			if point.Value > trend.Max {
				trend.Max = point.Value
			}
		}
		trend.Average = math.Round(sum/float64(len(points))*100) / 100

		if len(points) >= 2 {
			change := points[len(points)-1].Value - points[0].Value
			trend.Change = math.Round(change*100) / 100
			switch {
			case change > 0.01:
				trend.Direction = "up"
			case change < -0.01:
				trend.Direction = "down"
			}
		}

		trends = append(trends, trend)
	}

	return trends, nil
}

// metricHistory returns the last n values of a numeric result field,
// oldest first.
func (s *Service) metricHistory(ctx context.Context, calcType calculator.Type, field string, n int) ([]TrendPoint, error) {
	entries, err := s.store.List(ctx, string(calcType), n)
	if err != nil {
		return nil, err
	}

	// List is newest first, charts want chronological order.
	points := make([]TrendPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		value, ok := numericField(entries[i].Results, field)
		if !ok {
			continue
		}
		points = append(points, TrendPoint{
			Date:  entries[i].Date,
			Value: value,
		})
	}
	return points, nil
}

func numericField(raw json.RawMessage, field string) (float64, bool) {
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return 0, false
	}
	value, ok := result[field].(float64)
	return value, ok
}

// Chart builds the chart for one calculator type.
func (s *Service) Chart(ctx context.Context, calcType calculator.Type) (ChartData, error) {
	value, err := s.cached(ctx, "chart:"+string(calcType), func(ctx context.Context) (any, error) {
		return s.computeChart(ctx, calcType)
	})
	if err != nil {
		return ChartData{}, err
	}
	return value.(ChartData), nil
}

func (s *Service) computeChart(ctx context.Context, calcType calculator.Type) (ChartData, error) {
	switch calcType {
	case calculator.TypeBMI:
		return s.lineChart(ctx, calcType, "bmi", "BMI", "#3498db", chartOptions{
			min: 10, max: 45,
			annotations: []Annotation{
				{Value: 18.5, Label: "Underweight threshold", Color: "#85c1e9"},
				{Value: 25, Label: "Overweight threshold", Color: "#f39c12"},
				{Value: 30, Label: "Obese threshold", Color: "#e74c3c"},
			},
		})
	case calculator.TypeGPA:
		return s.lineChart(ctx, calcType, "gpa", "GPA", "#9b59b6", chartOptions{
			min: 0, max: 4,
			annotations: []Annotation{
				{Value: 3.5, Label: "Dean's list", Color: "#2ecc71"},
				{Value: 3.0, Label: "Good standing", Color: "#3498db"},
				{Value: 2.5, Label: "Warning", Color: "#f39c12"},
			},
		})
	case calculator.TypeAttendance:
		return s.lineChart(ctx, calcType, "percentage", "Attendance %", "#e74c3c", chartOptions{
			min: 0, max: 100,
			annotations: []Annotation{
				{Value: 75, Label: "Minimum required", Color: "#f39c12"},
			},
		})
	case calculator.TypeCalorie:
		return s.calorieChart(ctx)
	case calculator.TypeLoan:
		return s.loanChart(ctx)
	default:
		return ChartData{}, fmt.Errorf("no chart defined for calculator %q", calcType)
	}
}

type chartOptions struct {
	min, max    float64
	annotations []Annotation
}

func (s *Service) lineChart(ctx context.Context, calcType calculator.Type, field, label, color string, opts chartOptions) (ChartData, error) {
	points, err := s.metricHistory(ctx, calcType, field, 10)
	if err != nil {
		return ChartData{}, err
	}

	labels := make([]string, len(points))
	data := make([]float64, len(points))
	for i, point := range points {
		labels[i] = point.Date
		data[i] = point.Value
	}

	chart := ChartData{
		Type:   "line",
		Labels: labels,
		Datasets: []ChartDataset{{
			Label:       label,
			Data:        data,
			BorderColor: color,
		}},
		Annotations: opts.annotations,
	}
	chart.YAxisMin, chart.YAxisMax = yAxis(opts.min, opts.max)

	return chart, nil
}

func (s *Service) calorieChart(ctx context.Context) (ChartData, error) {
	entries, err := s.store.List(ctx, string(calculator.TypeCalorie), 10)
	if err != nil {
		return ChartData{}, err
	}

	labels := []string{}
	bmr := []float64{}
	maintain := []float64{}
	for i := len(entries) - 1; i >= 0; i-- {
		b, ok1 := numericField(entries[i].Results, "bmr")
		m, ok2 := numericField(entries[i].Results, "maintain")
		if !ok1 || !ok2 {
			continue
		}
		labels = append(labels, entries[i].Date)
		bmr = append(bmr, b)
		maintain = append(maintain, m)
	}

	return ChartData{
		Type:   "bar",
		Labels: labels,
		Datasets: []ChartDataset{
			{Label: "BMR", Data: bmr, BackgroundColor: []string{"#3498db"}},
			{Label: "Maintenance", Data: maintain, BackgroundColor: []string{"#2ecc71"}},
		},
	}, nil
}

func (s *Service) loanChart(ctx context.Context) (ChartData, error) {
	entries, err := s.store.List(ctx, string(calculator.TypeLoan), 1)
	if err != nil {
		return ChartData{}, err
	}
	if len(entries) == 0 {
		return ChartData{}, fmt.Errorf("no loan calculations in history")
	}

	principal, ok1 := numericField(entries[0].Results, "principal")
	interest, ok2 := numericField(entries[0].Results, "total_interest")
	if !ok1 || !ok2 {
		return ChartData{}, fmt.Errorf("latest loan entry is missing principal or interest")
	}

	return ChartData{
		Type:   "doughnut",
		Labels: []string{"Principal", "Interest"},
		Datasets: []ChartDataset{{
			Label:           "Loan breakdown",
			Data:            []float64{principal, interest},
			BackgroundColor: []string{"#3498db", "#e74c3c"},
		}},
		CenterText: fmt.Sprintf("Total %.2f", principal+interest),
	}, nil
}

// UsageStats summarizes how often each calculator is used.
type UsageStats struct {
	Total        int            `json:"total"`
	ByCalculator map[string]int `json:"by_calculator"`
	ByWeekday    map[string]int `json:"by_weekday"`
	MostUsed     string         `json:"most_used"`
	Chart        ChartData      `json:"chart"`
}

func (s *Service) Usage(ctx context.Context) (UsageStats, error) {
	value, err := s.cached(ctx, "usage", func(ctx context.Context) (any, error) {
		return s.computeUsage(ctx)
	})
	if err != nil {
		return UsageStats{}, err
	}
	return value.(UsageStats), nil
}

func (s *Service) computeUsage(ctx context.Context) (UsageStats, error) {
	entries, err := s.store.List(ctx, "", 0)
	if err != nil {
		return UsageStats{}, err
	}

	stats := UsageStats{
		Total:        len(entries),
		ByCalculator: map[string]int{},
		ByWeekday:    map[string]int{},
	}
	for _, entry := range entries {
		stats.ByCalculator[entry.CalculatorType]++
		stats.ByWeekday[entry.Timestamp.Weekday().String()]++
	}

	types := make([]string, 0, len(stats.ByCalculator))
	for calcType := range stats.ByCalculator {
		types = append(types, calcType)
	}
	sort.Strings(types)

	best := 0
	labels := make([]string, 0, len(types))
	data := make([]float64, 0, len(types))
	for _, calcType := range types {
		count := stats.ByCalculator[calcType]
		labels = append(labels, calcType)
		data = append(data, float64(count))
		if count > best {
			best = count
			stats.MostUsed = calcType
		}
	}

	stats.Chart = ChartData{
		Type:   "pie",
		Labels: labels,
		Datasets: []ChartDataset{{
			Label:           "Usage",
			Data:            data,
			BackgroundColor: chartPalette(len(labels)),
		}},
	}

	return stats, nil
}

var defaultPalette = []string{
	"#3498db", "#2ecc71", "#e74c3c", "#f39c12", "#9b59b6",
	"#1abc9c", "#e67e22", "#34495e", "#16a085", "#c0392b",
}

func chartPalette(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = defaultPalette[i%len(defaultPalette)]
	}
	return colors
}

// LoanVisualization carries the doughnut chart plus the first year of the
// amortization schedule for the most recent loan calculation.
type LoanVisualization struct {
	Chart        ChartData                    `json:"chart"`
	Amortization []calculator.AmortizationRow `json:"amortization"`
	Principal    float64                      `json:"principal"`
	Interest     float64                      `json:"interest"`
	Total        float64                      `json:"total"`
}

func (s *Service) LoanVisualization(ctx context.Context) (LoanVisualization, error) {
	entries, err := s.store.List(ctx, string(calculator.TypeLoan), 1)
	if err != nil {
		return LoanVisualization{}, err
	}
	if len(entries) == 0 {
		return LoanVisualization{}, fmt.Errorf("no loan calculations in history")
	}

	var inputs calculator.LoanRequest
	if err := json.Unmarshal(entries[0].Inputs, &inputs); err != nil {
		return LoanVisualization{}, fmt.Errorf("decode loan inputs: %w", err)
	}

	result, err := calculator.ComputeLoan(inputs)
	if err != nil {
		return LoanVisualization{}, fmt.Errorf("recompute loan: %w", err)
	}

	chart, err := s.loanChart(ctx)
	if err != nil {
		return LoanVisualization{}, err
	}

	months := inputs.Duration * 12
	rows := 12
	if months < 12 {
		rows = int(months)
	}

	return LoanVisualization{
		Chart:        chart,
		Amortization: amortizationRows(inputs, result.EMI, rows),
		Principal:    result.Principal,
		Interest:     result.TotalInterest,
		Total:        result.TotalPayment,
	}, nil
}

func amortizationRows(inputs calculator.LoanRequest, emi float64, n int) []calculator.AmortizationRow {
	rows := make([]calculator.AmortizationRow, 0, n)
	balance := inputs.Amount
	r := inputs.Rate / 1200

	for month := 1; month <= n && balance > 0; month++ {
		interest := balance * r
		principal := emi - interest
		if principal > balance {
			principal = balance
		}
		balance -= principal
		rows = append(rows, calculator.AmortizationRow{
			Month:     month,
			Principal: math.Round(principal*100) / 100,
			Interest:  math.Round(interest*100) / 100,
			Balance:   math.Round(balance*100) / 100,
		})
	}
	return rows
}
