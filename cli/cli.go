package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var (
	Version string
)

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "lineagecheck <command> <subcommand> [flags]",
		Short:         "Column-level lineage verification",
		Long:          "Register column-level lineage in an OpenMetadata catalog and verify it by read-back.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: heredoc.Doc(`
			$ lineagecheck demo
			$ lineagecheck verify --source <fqn> --target <fqn> --mappings mappings.yaml
			$ lineagecheck lineage <fqn>
			$ lineagecheck history list
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'lineagecheck <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/goto/lineagecheck/issues
			`),
		},
	}

	rootCmd.AddCommand(
		demoCommand(cfg),
		verifyCommand(cfg),
		lineageCommand(cfg),
		historyCommand(cfg),
		configCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("lineagecheck"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		Every configuration key can be overridden with an environment variable
		prefixed with LINEAGECHECK_, nested keys joined by an underscore.

		LINEAGECHECK_LOG_LEVEL: debug, info, warn or error.

		LINEAGECHECK_CLIENT_HOST: base URL of the catalog API,
		for example http://localhost:8585/api.

		LINEAGECHECK_CLIENT_TOKEN_FILE: file holding the personal access token.

		LINEAGECHECK_HISTORY_ENABLED: store every verification report in postgres.
	`),
}
