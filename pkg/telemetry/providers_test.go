package telemetry

import (
	"context"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// exportingReader records what was collected at flush time.
type exportingReader struct {
	sdkmetric.Reader
	collected []metricdata.ResourceMetrics
}

func (r *exportingReader) ForceFlush(ctx context.Context) error {
	var rm metricdata.ResourceMetrics
	if err := r.Collect(ctx, &rm); err != nil {
		return err
	}
	r.collected = append(r.collected, rm)
	return nil
}

func TestProvidersShutdownFlushesMetrics(t *testing.T) {
	reader := &exportingReader{Reader: sdkmetric.NewManualReader()}
	p := &providers{
		meter:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		tracer: sdktrace.NewTracerProvider(),
		logger: log.NewNoop(),
	}

	instruments, err := NewInstruments(p.meter)
	require.NoError(t, err)
	instruments.Verifications.Add(context.Background(), 1)

	p.shutdown()

	require.NotEmpty(t, reader.collected)
	rm := reader.collected[0]
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, MetricVerification, rm.ScopeMetrics[0].Metrics[0].Name)
}

func TestNilProviders(t *testing.T) {
	var p *providers
	assert.NoError(t, p.flush(context.Background()))
	assert.NotPanics(t, p.shutdown)
}

func TestStartCollectorsDisabled(t *testing.T) {
	assert.NoError(t, startCollectors(OpenTelemetryConfig{}))
}
