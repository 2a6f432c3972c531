package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/goto/lineagecheck/core/lineage"
	"github.com/goto/lineagecheck/internal/client"
	"github.com/goto/lineagecheck/internal/store/postgres"
	"github.com/goto/lineagecheck/pkg/statsd"
	"github.com/goto/lineagecheck/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/spf13/cobra"
)

// app holds the collaborators shared by every command of one invocation.
type app struct {
	cfg    *Config
	logger log.Logger
	statsd *statsd.Reporter
	nrApp  *newrelic.Application

	pgClient *postgres.Client
	closers  []func()
}

func newApp(ctx context.Context, cmd *cobra.Command, cfg *Config) (*app, error) {
	cfg, err := resolveConfig(cmd, cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: initLogger(cfg.LogLevel)}

	statsdReporter, err := statsd.Init(a.logger, cfg.StatsD)
	if err != nil {
		return nil, err
	}
	a.statsd = statsdReporter
	a.closers = append(a.closers, statsdReporter.Close)

	cfg.Telemetry.AppVersion = Version
	nrApp, cleanUp, err := telemetry.Init(ctx, cfg.Telemetry, a.logger)
	if err != nil {
		a.close()
		return nil, err
	}
	a.nrApp = nrApp
	a.closers = append(a.closers, cleanUp)

	return a, nil
}

// start opens a New Relic transaction named after the command.
func (a *app) start(ctx context.Context, cmd *cobra.Command) (context.Context, func(err error)) {
	return telemetry.StartCommand(ctx, a.nrApp, cmd.CommandPath())
}

func (a *app) catalogClient(ctx context.Context) (*client.Client, error) {
	return client.Create(ctx, a.cfg.Client,
		client.WithLogger(a.logger),
		client.WithStatsD(a.statsd),
	)
}

func (a *app) postgres() (*postgres.Client, error) {
	if a.pgClient != nil {
		return a.pgClient, nil
	}
	pgClient, err := postgres.NewClient(a.cfg.History.DB)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres client: %w", err)
	}
	a.logger.Info("connected to postgres server", "host", a.cfg.History.DB.Host, "port", a.cfg.History.DB.Port)

	a.pgClient = pgClient
	a.closers = append(a.closers, func() {
		if err := pgClient.Close(); err != nil {
			a.logger.Warn("close postgres client", "err", err)
		}
	})
	return pgClient, nil
}

func (a *app) reportRepository() (*postgres.ReportRepository, error) {
	if !a.cfg.History.Enabled {
		return nil, errHistoryDisabled
	}
	pgClient, err := a.postgres()
	if err != nil {
		return nil, err
	}
	return postgres.NewReportRepository(pgClient)
}

func (a *app) lineageService(catalog lineage.Catalog) (*lineage.Service, error) {
	deps := lineage.ServiceDeps{
		Config:  a.cfg.Lineage,
		Logger:  a.logger,
		Catalog: catalog,
		StatsD:  a.statsd,
	}
	if a.cfg.History.Enabled {
		repo, err := a.reportRepository()
		if err != nil {
			return nil, err
		}
		deps.Reports = repo
	}
	return lineage.NewService(deps), nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stderr),
	)
	return logger
}
