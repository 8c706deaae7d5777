package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/tuanvumaihuynh/inventory-rules/internal/config"
)

type CleanupFunc func(ctx context.Context) error

// InitTracer installs a global tracer provider sampling by trace id ratio.
// Spans are not exported; they give every log line of an operation a trace id.
func InitTracer(cfg config.Otel) (CleanupFunc, error) {
	if cfg.TraceIDRatio < 0 || cfg.TraceIDRatio > 1 {
		return nil, fmt.Errorf("trace id ratio out of range: %v", cfg.TraceIDRatio)
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceIDRatio))),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
