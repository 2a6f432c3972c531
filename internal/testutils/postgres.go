package testutils

import (
	"context"
	"database/sql"
	"strconv"
	"testing"
	"time"

	"github.com/goto/lineagecheck/internal/store/postgres"
	"github.com/goto/salt/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	logLevelDebug = "debug"
	PGHost        = "localhost"
	PGUsername    = "test_user"
	PGPassword    = "test_pass"
	PGName        = "test_db"
)

// RunTestPG starts a disposable postgres container and returns the config to
// reach it. The test is skipped when no docker daemon is reachable.
func RunTestPG(t *testing.T, logger log.Logger) postgres.Config {
	t.Helper()

	opts := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "13",
		Env: []string{
			"POSTGRES_PASSWORD=" + PGPassword,
			"POSTGRES_USER=" + PGUsername,
			"POSTGRES_DB=" + PGName,
		},
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("new test PG: start resource: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("purge postgres container: %v", err)
		}
	})

	port, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	if err != nil {
		t.Fatalf("new test PG: parse external port of container to int: %v", err)
	}

	if logger.Level() == logLevelDebug {
		attachLogs(t, pool, resource, logger)
	}

	// Tell docker to hard kill the container in 120 seconds
	if err := resource.Expire(120); err != nil {
		t.Fatalf("new test PG: expire resource: %v", err)
	}

	cfg := postgres.Config{
		Host:     PGHost,
		Port:     port,
		Name:     PGName,
		User:     PGUsername,
		Password: PGPassword,
		SSLMode:  "disable",
	}

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		db, err := sql.Open("pgx", cfg.ConnectionURL().String())
		if err != nil {
			return err
		}
		defer db.Close()

		return db.Ping()
	}); err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	return cfg
}

func attachLogs(t *testing.T, pool *dockertest.Pool, resource *dockertest.Resource, logger log.Logger) {
	t.Helper()

	logWaiter, err := pool.Client.AttachToContainerNonBlocking(docker.AttachToContainerOptions{
		Container:    resource.Container.ID,
		OutputStream: logger.Writer(),
		ErrorStream:  logger.Writer(),
		Stderr:       true,
		Stdout:       true,
		Stream:       true,
	})
	if err != nil {
		t.Fatalf("new test PG: connect to postgres container log output: %v", err)
	}
	t.Cleanup(func() {
		if err := logWaiter.Close(); err != nil {
			logger.Error("could not close container log", "error", err)
		}
	})
}

// MigrateFresh drops every table and applies all migrations.
func MigrateFresh(t *testing.T, pgClient *postgres.Client, cfg postgres.Config) {
	t.Helper()

	if err := pgClient.ExecQueries(context.Background(), []string{
		"DROP SCHEMA public CASCADE",
		"CREATE SCHEMA public",
	}); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if _, err := pgClient.Migrate(cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

