package server

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aibabysense/landing/pkg/protocol"
)

// tracerName names the tracer taken from the global provider. Without a
// configured provider every span is a no-op.
const tracerName = "github.com/aibabysense/landing/pkg/server"

func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// startRenderSpan starts the span around a full page render.
func startRenderSpan(ctx context.Context, path string) (context.Context, trace.Span) {
	return tracer().Start(ctx, "landing.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("landing.path", path)),
	)
}

// startEventSpan starts the span around one UI event on a session loop.
func startEventSpan(ctx context.Context, sessionID string, e *protocol.Event) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("landing.session_id", sessionID),
		attribute.String("landing.event_type", string(e.Type)),
	}
	switch e.Type {
	case protocol.EventClick:
		attrs = append(attrs, attribute.String("landing.action", e.Action))
	case protocol.EventVisible:
		attrs = append(attrs, attribute.String("landing.target", e.Target))
	}
	return tracer().Start(ctx, "landing."+string(e.Type),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// endSpan records err, if any, and ends the span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
