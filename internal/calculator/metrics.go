package calculator

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	calculationsTotal  metric.Int64Counter
	calculationErrors  metric.Int64Counter
	calculationSeconds metric.Float64Histogram
)

func InitMetrics() error {
	meter := otel.Meter("calcsuite/calculator")

	var err error

	calculationsTotal, err = meter.Int64Counter(
		"calculator.calculations.total",
		metric.WithDescription("Number of calculations performed"),
	)
	if err != nil {
		return err
	}

	calculationErrors, err = meter.Int64Counter(
		"calculator.errors.total",
		metric.WithDescription("Number of failed calculations"),
	)
	if err != nil {
		return err
	}

	calculationSeconds, err = meter.Float64Histogram(
		"calculator.duration.seconds",
		metric.WithDescription("Calculation handler latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	return nil
}
