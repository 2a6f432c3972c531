package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/lineagecheck/internal/store/postgres"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func historyCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <command>",
		Short: "Manage stored verification reports",
		Example: heredoc.Doc(`
			$ lineagecheck history migrate
			$ lineagecheck history list --target <fqn>
		`),
		Annotations: map[string]string{
			"group": "core",
		},
	}

	cmd.AddCommand(
		historyMigrateCommand(cfg),
		historyListCommand(cfg),
	)

	return cmd
}

func historyMigrateCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migration",
		Example: heredoc.Doc(`
			$ lineagecheck history migrate
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Preparing migration...")

			a, err := newApp(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			a.logger.Info("lineagecheck is migrating", "version", Version)
			pgClient, err := a.postgres()
			if err != nil {
				a.logger.Error("failed to prepare migration", "error", err)
				return err
			}

			ver, err := pgClient.Migrate(a.cfg.History.DB)
			if err != nil {
				return fmt.Errorf("problem with migration %w", err)
			}
			a.logger.Info("Migration Postgres done.", "version", ver)
			return nil
		},
	}
}

func historyListCommand(cfg *Config) *cobra.Command {
	var (
		target string
		size   int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent verification reports",
		Example: heredoc.Doc(`
			$ lineagecheck history list
			$ lineagecheck history list --target <fqn> --size 5
			$ lineagecheck history list --json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := newApp(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, end := a.start(cmd.Context(), cmd)
			defer func() { end(err) }()

			repo, err := a.reportRepository()
			if err != nil {
				return err
			}

			reports, err := repo.List(ctx, postgres.ReportFilter{TargetFQN: target, Size: size})
			if err != nil {
				return err
			}

			if asJSON {
				fmt.Println(prettyPrint(reports))
				return nil
			}
			if len(reports) == 0 {
				fmt.Println(term.Yellow("no verification reports found"))
				return nil
			}

			rows := [][]string{{"ID", "CREATED AT", "TARGET", "OUTCOME", "EXPECTED", "ACTUAL", "MISSING", "EXTRA"}}
			for _, r := range reports {
				rows = append(rows, []string{
					r.ID,
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Target.FullyQualifiedName.String(),
					r.Outcome(),
					strconv.Itoa(r.Expected),
					strconv.Itoa(r.Actual),
					strconv.Itoa(len(r.Missing)),
					strconv.Itoa(len(r.Extra)),
				})
			}
			printer.Table(os.Stdout, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "only list reports of this target table")
	cmd.Flags().IntVarP(&size, "size", "s", 20, "number of reports to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")

	return cmd
}
