package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"todoweb/internal/core/port"
	"todoweb/internal/metrics"
)

// OtelProbe emits spans through the global tracer provider and counts todo
// operations on the Prometheus registry.
type OtelProbe struct {
	tracer  trace.Tracer
	metrics *metrics.AppMetrics
}

func NewOtelProbe(serviceName string, appMetrics *metrics.AppMetrics) port.Telemetry {
	return &OtelProbe{
		tracer:  otel.Tracer(serviceName),
		metrics: appMetrics,
	}
}

func (p *OtelProbe) StartSpan(ctx context.Context, name string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (p *OtelProbe) RecordOperation(ctx context.Context, operation string, duration time.Duration, err error) {
	if p.metrics != nil {
		p.metrics.RecordTodoOperation(operation, duration, err)
	}

	span := trace.SpanFromContext(ctx)

	if !span.SpanContext().IsValid() {
		return
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "")
}
