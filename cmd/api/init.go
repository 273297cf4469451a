package main

import (
	"context"
	"fmt"

	"calcsuite/internal/advisor"
	"calcsuite/internal/analytics"
	"calcsuite/internal/calculator"
	"calcsuite/internal/history"
	"calcsuite/internal/observability"
	"calcsuite/internal/report"
	"calcsuite/internal/sharing"
)

// shutdownFunc flushes one telemetry pipeline.
type shutdownFunc func(context.Context) error

// initTelemetry brings up tracing, metrics and log export, returning the
// shutdown hooks in reverse start order.
func initTelemetry(ctx context.Context) ([]shutdownFunc, error) {
	var shutdowns []shutdownFunc

	traceShutdown, err := observability.InitTracing(ctx)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	shutdowns = append(shutdowns, traceShutdown)

	metricShutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	shutdowns = append(shutdowns, metricShutdown)

	logShutdown, err := observability.InitLogging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	shutdowns = append(shutdowns, logShutdown)

	return shutdowns, nil
}

// initDomainMetrics registers every package's instruments. This runs
// after the meter provider is installed.
func initDomainMetrics() error {
	inits := []func() error{
		calculator.InitMetrics,
		history.InitMetrics,
		analytics.InitMetrics,
		sharing.InitMetrics,
		advisor.InitMetrics,
		report.InitMetrics,
	}
	for _, init := range inits {
		if err := init(); err != nil {
			return err
		}
	}
	return nil
}
