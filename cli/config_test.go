package cli

import (
	"testing"
	"time"

	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
	"github.com/goto/lineagecheck/core/validator"
	"github.com/goto/lineagecheck/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		LogLevel: "info",
		Client: client.Config{
			Host:      "http://localhost:8585/api",
			TokenFile: "personal_access_token",
			Timeout:   30 * time.Second,
		},
		Lineage: lineage.Config{UpstreamDepth: 1, DownstreamDepth: 1},
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		Description string
		Mutate      func(*Config)
		ErrContains string
	}{
		{Description: "valid config", Mutate: func(*Config) {}},
		{
			Description: "unknown log level",
			Mutate:      func(c *Config) { c.LogLevel = "verbose" },
			ErrContains: `error value "verbose"`,
		},
		{
			Description: "missing host",
			Mutate:      func(c *Config) { c.Client.Host = "" },
			ErrContains: "invalid client config",
		},
		{
			Description: "negative depth",
			Mutate:      func(c *Config) { c.Lineage.UpstreamDepth = -1 },
			ErrContains: "cannot be less than 0",
		},
	}
	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			cfg := validConfig()
			tc.Mutate(cfg)

			err := cfg.Validate()
			if tc.ErrContains == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.ErrContains)
		})
	}
}

func TestLoadConfigFromFlag(t *testing.T) {
	path := writeFile(t, "lineagecheck.yaml", `
log_level: debug
client:
  host: http://catalog:8585/api
  token_file: /secrets/token
lineage:
  upstream_depth: 2
history:
  enabled: true
  db:
    host: pg
    port: 5433
`)

	var cfg Config
	require.NoError(t, LoadConfigFromFlag(path, &cfg))

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://catalog:8585/api", cfg.Client.Host)
	assert.Equal(t, "/secrets/token", cfg.Client.TokenFile)
	assert.Equal(t, 2, cfg.Lineage.UpstreamDepth)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "pg", cfg.History.DB.Host)
	assert.Equal(t, 5433, cfg.History.DB.Port)
}

func TestDemoPlanIsValid(t *testing.T) {
	d := DemoConfig{
		ServiceName:  "demo_mysql_lineage_service",
		Database:     "demo_db",
		Schema:       "public",
		SourceTable:  "orders_raw",
		TargetTable:  "orders_curated",
		MockHostPort: "localhost:3306",
		MockUser:     "demo_user",
		MockPassword: "demo_pass",
	}

	plan := d.plan()
	require.NoError(t, validator.ValidateStruct(plan))
	assert.Equal(t, "orders_raw", plan.Source.Name)
	assert.Equal(t, "orders_curated", plan.Target.Name)

	var targetCols []string
	for _, c := range plan.Target.Columns {
		targetCols = append(targetCols, c.Name)
		assert.NotEqual(t, catalog.DataType(""), c.DataType)
	}
	assert.Equal(t, []string{"order_id", "customer_id", "amount_usd", "order_ts"}, targetCols)
}
