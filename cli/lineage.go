package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func lineageCommand(cfg *Config) *cobra.Command {
	var (
		raw             bool
		upstreamDepth   int
		downstreamDepth int
	)

	cmd := &cobra.Command{
		Use:     "lineage <fqn>",
		Aliases: []string{},
		Short:   "observe the lineage graph of a table",
		Annotations: map[string]string{
			"group": "core",
		},
		Args: cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			$ lineagecheck lineage demo_mysql_lineage_service.demo_db.public.orders_curated
			$ lineagecheck lineage <fqn> --raw > lineage.json
		`),

		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := newApp(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, end := a.start(cmd.Context(), cmd)
			defer func() { end(err) }()

			spinner := printer.Spin("")
			clnt, err := a.catalogClient(ctx)
			if err != nil {
				spinner.Stop()
				return err
			}

			up, down := a.cfg.Lineage.UpstreamDepth, a.cfg.Lineage.DownstreamDepth
			if cmd.Flags().Changed("upstream-depth") {
				up = upstreamDepth
			}
			if cmd.Flags().Changed("downstream-depth") {
				down = downstreamDepth
			}
			res, err := clnt.GetLineageByName(ctx, catalog.EntityTypeTable, args[0], up, down)
			spinner.Stop()
			if err != nil {
				return err
			}

			if raw {
				fmt.Println(string(res))
				return nil
			}

			edges := lineage.Edges(res)
			if len(edges) == 0 {
				fmt.Println(term.Yellow("no lineage edges found"))
				return nil
			}
			for _, edge := range edges {
				from, to := edge.Identity()
				fmt.Println(term.Bluef("%s -> %s", from, to))
				for _, p := range lineage.SortPairs(edge.ColumnPairs()) {
					fmt.Println(term.Cyanf("  %s", p))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the catalog response as is")
	cmd.Flags().IntVar(&upstreamDepth, "upstream-depth", 1, "upstream traversal depth")
	cmd.Flags().IntVar(&downstreamDepth, "downstream-depth", 1, "downstream traversal depth")
	return cmd
}
