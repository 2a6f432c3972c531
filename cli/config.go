package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
	"github.com/goto/lineagecheck/core/validator"
	"github.com/goto/lineagecheck/internal/client"
	"github.com/goto/lineagecheck/internal/store/postgres"
	"github.com/goto/lineagecheck/pkg/statsd"
	"github.com/goto/lineagecheck/pkg/telemetry"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const configFlag = "config"

var logLevels = []string{"debug", "info", "warn", "error"}

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage client configurations",
		Example: heredoc.Doc(`
			$ lineagecheck config init
			$ lineagecheck config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new client configuration",
		Example: heredoc.Doc(`
			$ lineagecheck config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig("lineagecheck")

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "list",
		Short: "List client configuration settings",
		Example: heredoc.Doc(`
			$ lineagecheck config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(os.Stdout).Encode(*cfg)
		},
	}
	return cmd
}

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// Catalog
	Client  client.Config  `yaml:"client" mapstructure:"client"`
	Lineage lineage.Config `yaml:"lineage" mapstructure:"lineage"`

	// Demo
	Demo DemoConfig `yaml:"demo" mapstructure:"demo"`

	// StatsD
	StatsD statsd.Config `yaml:"statsd" mapstructure:"statsd"`

	// Telemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`

	// History
	History HistoryConfig `yaml:"history" mapstructure:"history"`
}

type DemoConfig struct {
	ServiceName  string `yaml:"service_name" mapstructure:"service_name" default:"demo_mysql_lineage_service"`
	Database     string `yaml:"database" mapstructure:"database" default:"demo_db"`
	Schema       string `yaml:"schema" mapstructure:"schema" default:"public"`
	SourceTable  string `yaml:"source_table" mapstructure:"source_table" default:"orders_raw"`
	TargetTable  string `yaml:"target_table" mapstructure:"target_table" default:"orders_curated"`
	MockHostPort string `yaml:"mock_host_port" mapstructure:"mock_host_port" default:"localhost:3306"`
	MockUser     string `yaml:"mock_user" mapstructure:"mock_user" default:"demo_user"`
	MockPassword string `yaml:"mock_password" mapstructure:"mock_password" default:"demo_pass"`
}

type HistoryConfig struct {
	Enabled bool            `yaml:"enabled" mapstructure:"enabled" default:"false"`
	DB      postgres.Config `yaml:"db" mapstructure:"db"`
}

// Validate checks the loaded configuration before any catalog call is made.
func (c *Config) Validate() error {
	if err := validator.ValidateOneOf(c.LogLevel, logLevels...); err != nil {
		return err
	}
	if err := validator.ValidateStruct(c.Client); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	if err := validator.ValidateStruct(c.Lineage); err != nil {
		return fmt.Errorf("invalid lineage config: %w", err)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig("lineagecheck").Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("lineagecheck.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("LINEAGECHECK"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, ErrConfigNotFound
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	var opts []config.LoaderOption
	opts = append(opts,
		config.WithFile(cfgFile),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("LINEAGECHECK"),
	)

	return config.NewLoader(opts...).Load(cfg)
}

// resolveConfig honours the --config flag and validates the result.
func resolveConfig(cmd *cobra.Command, cfg *Config) (*Config, error) {
	if cfgFile, _ := cmd.Flags().GetString(configFlag); cfgFile != "" {
		var fromFlag Config
		if err := LoadConfigFromFlag(cfgFile, &fromFlag); err != nil {
			return nil, fmt.Errorf("load config %q: %w", cfgFile, err)
		}
		cfg = &fromFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (d DemoConfig) plan() catalog.Plan {
	return catalog.Plan{
		Service: catalog.ServicePlan{
			Name:     d.ServiceName,
			HostPort: d.MockHostPort,
			Username: d.MockUser,
			Password: d.MockPassword,
		},
		Database: d.Database,
		Schema:   d.Schema,
		Source: catalog.TablePlan{
			Name: d.SourceTable,
			Columns: []catalog.Column{
				{Name: "order_id", DataType: catalog.DataTypeBigInt},
				{Name: "customer_id", DataType: catalog.DataTypeBigInt},
				{Name: "amount", DataType: catalog.DataTypeDecimal},
				{Name: "created_at", DataType: catalog.DataTypeTimestamp},
			},
		},
		Target: catalog.TablePlan{
			Name: d.TargetTable,
			Columns: []catalog.Column{
				{Name: "order_id", DataType: catalog.DataTypeBigInt},
				{Name: "customer_id", DataType: catalog.DataTypeBigInt},
				{Name: "amount_usd", DataType: catalog.DataTypeDecimal},
				{Name: "order_ts", DataType: catalog.DataTypeTimestamp},
			},
		},
	}
}
