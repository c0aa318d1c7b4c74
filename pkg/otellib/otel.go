package otellib

import (
	"context"

	"github.com/QuangTung97/finledger/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InitOtel creates the tracer provider, a noop provider when tracing is disabled.
// The returned shutdown flushes pending spans.
func InitOtel(ctx context.Context, conf config.TracingConfig) (trace.TracerProvider, func()) {
	if !conf.Enabled || conf.Endpoint == "" {
		return noop.NewTracerProvider(), func() {}
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(conf.Endpoint),
	)
	if err != nil {
		panic(err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(conf.ServiceName),
			attribute.String("environment", conf.Environment),
		),
	)
	if err != nil {
		panic(err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(conf.SampleRatio))),
	)

	return tp, func() {
		_ = tp.Shutdown(context.Background())
	}
}
