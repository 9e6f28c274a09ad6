package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"todoweb/internal/core/port"
)

// NoOpProbe satisfies port.Telemetry without an initialized pipeline.
// Tests and tools use it so the core never needs telemetry wiring.
type NoOpProbe struct {
	tracer trace.Tracer
}

func NewNoOpProbe() port.Telemetry {
	return &NoOpProbe{
		tracer: noop.NewTracerProvider().Tracer("noop"),
	}
}

func (p *NoOpProbe) StartSpan(ctx context.Context, name string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, name)
}

func (p *NoOpProbe) RecordOperation(ctx context.Context, operation string, duration time.Duration, err error) {
}
