package port

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry lets the core emit spans and operation metrics without knowing
// the implementation. The no-op probe keeps the service usable in tests.
type Telemetry interface {
	StartSpan(ctx context.Context, name string, attrs []attribute.KeyValue) (context.Context, trace.Span)
	RecordOperation(ctx context.Context, operation string, duration time.Duration, err error)
}
