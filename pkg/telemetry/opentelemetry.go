package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goto/salt/log"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/contrib/samplers/probability/consistent"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
	"google.golang.org/grpc/encoding/gzip"
)

type OpenTelemetryConfig struct {
	Enabled       bool   `yaml:"enabled" mapstructure:"enabled" default:"false"`
	CollectorAddr string `yaml:"collector_addr" mapstructure:"collector_addr" default:"localhost:4317"`
	// ExportInterval only matters for long runs; every command flushes on exit.
	ExportInterval         time.Duration `yaml:"export_interval" mapstructure:"export_interval" default:"30s"`
	TraceSampleProbability float64       `yaml:"trace_sample_probability" mapstructure:"trace_sample_probability" default:"1"`
	HostMetrics            bool          `yaml:"host_metrics" mapstructure:"host_metrics" default:"false"`
	RuntimeMetrics         bool          `yaml:"runtime_metrics" mapstructure:"runtime_metrics" default:"false"`
}

// providers owns the global OpenTelemetry providers for one command run.
// A nil *providers is valid and does nothing.
type providers struct {
	meter  *sdkmetric.MeterProvider
	tracer *sdktrace.TracerProvider
	logger log.Logger
}

func initOTLP(ctx context.Context, cfg Config, logger log.Logger) (*providers, error) {
	if !cfg.OpenTelemetry.Enabled {
		logger.Debug("OpenTelemetry monitoring is disabled.")
		return nil, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	meterProvider, err := newMeterProvider(ctx, res, cfg.OpenTelemetry)
	if err != nil {
		return nil, err
	}
	tracerProvider, err := newTracerProvider(ctx, res, cfg.OpenTelemetry)
	if err != nil {
		_ = meterProvider.Shutdown(ctx)
		return nil, err
	}

	p := &providers{meter: meterProvider, tracer: tracerProvider, logger: logger}
	p.install()

	if err := startCollectors(cfg.OpenTelemetry); err != nil {
		p.shutdown()
		return nil, err
	}

	logger.Debug("OpenTelemetry monitoring is enabled", "collector", cfg.OpenTelemetry.CollectorAddr)
	return p, nil
}

func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.AppName),
			semconv.ServiceVersion(cfg.AppVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

func newMeterProvider(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.CollectorAddr),
		otlpmetricgrpc.WithCompressor(gzip.Name),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.ExportInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.ExportInterval))
	}
	reader := sdkmetric.NewPeriodicReader(exporter, readerOpts...)

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader), sdkmetric.WithResource(res)), nil
}

func newTracerProvider(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(cfg.CollectorAddr),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithCompressor(gzip.Name),
	))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(consistent.ProbabilityBased(cfg.TraceSampleProbability)),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter)),
	), nil
}

func startCollectors(cfg OpenTelemetryConfig) error {
	if cfg.HostMetrics {
		if err := host.Start(); err != nil {
			return fmt.Errorf("start host metrics: %w", err)
		}
	}
	if cfg.RuntimeMetrics {
		if err := runtime.Start(); err != nil {
			return fmt.Errorf("start runtime metrics: %w", err)
		}
	}
	return nil
}

func (p *providers) install() {
	otel.SetMeterProvider(p.meter)
	otel.SetTracerProvider(p.tracer)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
}

// flush exports every pending span and data point.
func (p *providers) flush(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return errors.Join(p.tracer.ForceFlush(ctx), p.meter.ForceFlush(ctx))
}

func (p *providers) shutdown() {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()

	if err := p.flush(ctx); err != nil {
		p.logger.Warn("failed to flush telemetry", "err", err)
	}
	if err := p.tracer.Shutdown(ctx); err != nil {
		p.logger.Error("otlp trace-provider failed to shutdown", "err", err)
	}
	if err := p.meter.Shutdown(ctx); err != nil {
		p.logger.Error("otlp metric-provider failed to shutdown", "err", err)
	}
}
