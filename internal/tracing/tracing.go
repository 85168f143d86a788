// Package tracing installs the process-wide OpenTelemetry tracer provider
// the catalog queries report to.
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted by Setup.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// Shutdown flushes pending spans and stops the provider.
type Shutdown func(ctx context.Context) error

// Setup installs a global tracer provider for exporter. With ExporterNone
// (or an empty name) the global no-op provider is left in place.
// ExporterStdout writes finished spans as JSON to w.
func Setup(exporter string, w io.Writer) (Shutdown, error) {
	switch exporter {
	case "", ExporterNone:
		return func(context.Context) error { return nil }, nil
	case ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
		otel.SetTracerProvider(tp)
		return tp.Shutdown, nil
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", exporter)
	}
}
