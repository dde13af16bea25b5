package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of every span the app records.
const TracerName = "panegrid/workspace"

// Options configures the exporter. An empty Endpoint disables export.
type Options struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// Provider hands out the tracer used by the workspace
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup creates an OTLP/HTTP exporting provider when opts.Endpoint is set and
// a no-op provider otherwise.
func Setup(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(TracerName)}, nil
	}

	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "panegrid"
	}
	return newProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

// NewWithExporter records spans synchronously into exporter. Tests pass an
// in-memory exporter.
func NewWithExporter(exporter sdktrace.SpanExporter) *Provider {
	return newProvider(sdktrace.WithSyncer(exporter), "panegrid")
}

func newProvider(export sdktrace.TracerProviderOption, serviceName string) *Provider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(export, sdktrace.WithResource(res))
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(TracerName),
	}
}

// Enabled reports whether spans go anywhere.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the workspace tracer. A nil Provider yields a no-op tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return p.tracer
}

// Start opens a span named name with attrs.
func (p *Provider) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	return p.Tracer().Start(ctx, name, oteltrace.WithAttributes(attrs...))
}

// Key namespaces an attribute name under panegrid.
func Key(name string) attribute.Key {
	return attribute.Key("panegrid." + name)
}

// End records err on span, if any, and ends it.
func End(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Shutdown flushes and closes the exporter
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
