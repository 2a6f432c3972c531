package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/goto/lineagecheck"

	MetricVerification = "lineagecheck.verification"
)

// Instruments are the metric instruments recorded by the lineage verifier.
type Instruments struct {
	Verifications metric.Int64Counter
}

func NewInstruments(provider metric.MeterProvider) (Instruments, error) {
	meter := provider.Meter(instrumentationName)

	verifications, err := meter.Int64Counter(MetricVerification,
		metric.WithDescription("Lineage verifications by outcome"),
		metric.WithUnit("{verification}"),
	)
	if err != nil {
		return Instruments{}, fmt.Errorf("create %s counter: %w", MetricVerification, err)
	}

	return Instruments{Verifications: verifications}, nil
}

// GlobalInstruments creates the instruments on the global meter provider.
// Instruments created before Init are delegated once a provider is installed.
func GlobalInstruments() Instruments {
	instruments, err := NewInstruments(otel.GetMeterProvider())
	if err != nil {
		otel.Handle(err)
	}
	return instruments
}
