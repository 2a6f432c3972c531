package statsd

import (
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

// Reporter publishes metrics to a statsd agent. A nil or disabled Reporter
// accepts every call and publishes nothing.
type Reporter struct {
	client std.ClientInterface
	logger log.Logger
	config Config
}

// Init validates the config and initializes the statsd client.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	reporter := &Reporter{logger: logger, config: cfg}
	if !cfg.Enabled {
		logger.Debug("statsd is disabled")
		return reporter, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix+"."),
		std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}

	reporter.client = client
	return reporter, nil
}

// NewWithClient builds a Reporter over an existing client.
func NewWithClient(logger log.Logger, cfg Config, client std.ClientInterface) *Reporter {
	return &Reporter{client: client, logger: logger, config: cfg}
}

// Close flushes buffered metrics and closes the statsd connection.
func (sd *Reporter) Close() {
	if sd == nil || sd.client == nil {
		return
	}
	if err := sd.client.Close(); err != nil {
		sd.logger.Warn("failed to close statsd client", "err", err)
	}
}

// Incr returns an increment counter metric.
func (sd *Reporter) Incr(name string) *Metric {
	return sd.metric(name, func(client std.ClientInterface, name string, tags []string, rate float64) error {
		return client.Incr(name, tags, rate)
	})
}

// Timing returns a timer metric.
func (sd *Reporter) Timing(name string, value time.Duration) *Metric {
	return sd.metric(name, func(client std.ClientInterface, name string, tags []string, rate float64) error {
		return client.Timing(name, value, tags, rate)
	})
}

// Gauge returns a gauge metric.
func (sd *Reporter) Gauge(name string, value float64) *Metric {
	return sd.metric(name, func(client std.ClientInterface, name string, tags []string, rate float64) error {
		return client.Gauge(name, value, tags, rate)
	})
}

func (sd *Reporter) metric(name string, publish func(std.ClientInterface, string, []string, float64) error) *Metric {
	if sd == nil || sd.client == nil {
		return nil
	}

	client := sd.client
	return &Metric{
		rate:          sd.config.SamplingRate,
		logger:        sd.logger,
		name:          name,
		withInfluxTag: sd.config.WithInfluxTagFormat,
		publishFunc: func(name string, tags []string, rate float64) error {
			return publish(client, name, tags, rate)
		},
	}
}
