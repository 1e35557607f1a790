package observability

import (
	"context"
	"strings"
	"time"

	"github.com/lshigami/SigmaLearn/config"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

// Tracing holds the shutdown hook of the installed tracer provider. Shutdown
// is a no-op when tracing is disabled.
type Tracing struct {
	shutdown func(context.Context) error
}

func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil || t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

func NewTracing(cfg *config.Config) *Tracing {
	if !cfg.Telemetry.Enabled {
		return &Tracing{}
	}
	ctx := context.Background()

	serviceName := strings.TrimSpace(cfg.Telemetry.ServiceName)
	if serviceName == "" {
		serviceName = "sigmalearn-web"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("deployment.environment", cfg.Env),
		),
	)
	if err != nil {
		log.Warn().Err(err).Msg("otel resource init failed (continuing)")
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(cfg.Telemetry.SampleRatio)))),
		sdktrace.WithResource(res),
	}
	exporter, err := buildExporter(ctx, cfg.Telemetry.Endpoint)
	if err != nil {
		log.Warn().Err(err).Msg("otel exporter init failed (continuing)")
	} else {
		opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	log.Info().Str("service", serviceName).Str("endpoint", cfg.Telemetry.Endpoint).Msg("otel tracing initialized")
	return &Tracing{shutdown: tp.Shutdown}
}

func buildExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint != "" {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	log.Warn().Msg("otel using stdout exporter (no OTLP endpoint configured)")
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
