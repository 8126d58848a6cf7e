// Package otel configures the process-wide trace provider. The consultation
// API client starts one span per call; without an exporter those spans go to
// the default no-op provider.
package otel

import (
	"context"
	"errors"
	"strings"

	"github.com/doubtsclear/console/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const serviceNamespace = "doubtsclear"

// Settings selects where, and how much, a process exports traces.
type Settings struct {
	Endpoint string `env:"DOUBTSCLEAR_OTEL_ENDPOINT"`
	Disabled bool   `env:"DOUBTSCLEAR_OTEL_DISABLED"`
	// SampleRatio is clamped to [0, 1].
	SampleRatio float64 `env:"DOUBTSCLEAR_OTEL_SAMPLE_RATIO" envDefault:"1"`
	Service     string
}

// LoadSettings reads tracing settings for service from the environment.
func LoadSettings(service string) (Settings, error) {
	settings := Settings{}
	if err := config.ParseEnv(&settings); err != nil {
		return Settings{}, err
	}
	settings.Service = strings.TrimSpace(service)
	settings.Endpoint = strings.TrimSpace(settings.Endpoint)
	return settings, nil
}

// Enabled reports whether spans leave the process.
func (s Settings) Enabled() bool {
	return !s.Disabled && s.Endpoint != ""
}

func (s Settings) ratio() float64 {
	switch {
	case s.SampleRatio <= 0:
		return 0
	case s.SampleRatio >= 1:
		return 1
	default:
		return s.SampleRatio
	}
}

func (s Settings) sampler() sdktrace.Sampler {
	var root sdktrace.Sampler
	switch ratio := s.ratio(); ratio {
	case 0:
		root = sdktrace.NeverSample()
	case 1:
		root = sdktrace.AlwaysSample()
	default:
		root = sdktrace.TraceIDRatioBased(ratio)
	}
	return sdktrace.ParentBased(root)
}

// Shutdown flushes pending spans.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs an OTLP/HTTP trace provider for settings. A disabled or
// endpoint-less configuration leaves the global provider untouched and
// returns a no-op Shutdown.
func Setup(ctx context.Context, settings Settings) (Shutdown, error) {
	if !settings.Enabled() {
		return noopShutdown, nil
	}
	if settings.Service == "" {
		return noopShutdown, errors.New("service name is required")
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(settings.Endpoint))
	if err != nil {
		return noopShutdown, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(settings.Service),
			semconv.ServiceNamespace(serviceNamespace),
		),
	)
	if err != nil {
		return noopShutdown, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.sampler()),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return provider.Shutdown, nil
}
