package telemetry

import (
	"context"
	"time"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const gracePeriod = 5 * time.Second

type Config struct {
	AppVersion string `yaml:"-" mapstructure:"-"`

	AppName       string              `yaml:"app_name" mapstructure:"app_name" default:"lineagecheck"`
	NewRelic      NewRelicConfig      `yaml:"newrelic" mapstructure:"newrelic"`
	OpenTelemetry OpenTelemetryConfig `yaml:"open_telemetry" mapstructure:"open_telemetry"`
}

// Init installs the OpenTelemetry providers and starts the optional New Relic
// application. The returned cleanUp must run when the command ends: it flushes
// pending spans and metrics before shutting everything down. It is safe to
// call when nothing is enabled.
func Init(ctx context.Context, cfg Config, logger log.Logger) (nrApp *newrelic.Application, cleanUp func(), err error) {
	otlp, err := initOTLP(ctx, cfg, logger)
	if err != nil {
		return nil, noOp, err
	}

	nrApp, err = initNewRelicMonitor(cfg.AppName, cfg.NewRelic, logger)
	if err != nil {
		otlp.shutdown()
		return nil, noOp, err
	}

	return nrApp, func() {
		nrApp.Shutdown(gracePeriod)
		otlp.shutdown()
	}, nil
}

func noOp() {}
