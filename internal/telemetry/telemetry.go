// Package telemetry sets up tracing with a stdout exporter. Spans cover
// the load and derive paths so slow data files show up in traces.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "insider-deals"

// Tracer is the process-wide tracer. It is a no-op until Setup runs.
var Tracer trace.Tracer = noop.NewTracerProvider().Tracer(serviceName)

// Setup installs a tracer provider exporting to stdout and returns its
// shutdown func. Call only when tracing is enabled; the default no-op
// Tracer costs nothing otherwise.
func Setup(ctx context.Context) (func(context.Context) error, error) {
	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(sdkresource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	Tracer = tp.Tracer(serviceName)
	return tp.Shutdown, nil
}

// Span starts a child span; the caller must End it.
func Span(ctx context.Context, name string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, name)
}
