package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var counterTracer = otel.Tracer("dota-matchups-cli/internal/usecase")
var counterNoopSpan = trace.SpanFromContext(context.Background())

func startCounterSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, counterNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, counterNoopSpan
	}
	return counterTracer.Start(ctx, name)
}
