package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
	"github.com/spf13/cobra"
)

type verifyOptions struct {
	source, target     string
	sourceID, targetID string
	mappingFile        string
	graphFile          string
}

func verifyCommand(cfg *Config) *cobra.Command {
	var opts verifyOptions

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify column lineage between two tables",
		Long: heredoc.Doc(`
			Reads the lineage graph of the target table and checks that the edge from
			the source table carries every expected column mapping. Extra mappings on
			the edge are reported but do not fail the verification.

			Source and target default to the demo tables and mappings default to the
			demo mappings. With --graph the lineage graph is read from a saved JSON
			response and no catalog call is made.
		`),
		Example: heredoc.Doc(`
			$ lineagecheck verify
			$ lineagecheck verify --source svc.db.public.orders_raw --target svc.db.public.orders_curated -m mappings.yaml
			$ lineagecheck verify --graph lineage.json --source-id <uuid> --target-id <uuid>
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := newApp(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, end := a.start(cmd.Context(), cmd)
			defer func() { end(err) }()

			if opts.source == "" {
				opts.source = tableFQN(a.cfg.Demo, a.cfg.Demo.SourceTable)
			}
			if opts.target == "" {
				opts.target = tableFQN(a.cfg.Demo, a.cfg.Demo.TargetTable)
			}
			mappings := defaultDemoMappings()
			if opts.mappingFile != "" {
				if mappings, err = parseMappingFile(opts.mappingFile); err != nil {
					return err
				}
			}
			expected := lineage.ExpandColumnLineage(toColumnLineage(opts.source, opts.target, mappings))

			if opts.graphFile != "" {
				if opts.sourceID == "" || opts.targetID == "" {
					return errMissingEntityID
				}
				graph, err := os.ReadFile(opts.graphFile)
				if err != nil {
					return fmt.Errorf("read lineage graph: %w", err)
				}
				svc, err := a.lineageService(nil)
				if err != nil {
					return err
				}
				source := catalog.Table{ID: opts.sourceID, FullyQualifiedName: catalog.Name(opts.source)}
				target := catalog.Table{ID: opts.targetID, FullyQualifiedName: catalog.Name(opts.target)}
				return runVerification(func() (lineage.Report, error) {
					return svc.VerifyGraph(ctx, source, target, graph, expected)
				})
			}

			clnt, err := a.catalogClient(ctx)
			if err != nil {
				return err
			}
			source, err := clnt.GetTableByName(ctx, opts.source)
			if err != nil {
				return err
			}
			target, err := clnt.GetTableByName(ctx, opts.target)
			if err != nil {
				return err
			}

			svc, err := a.lineageService(clnt)
			if err != nil {
				return err
			}
			return runVerification(func() (lineage.Report, error) {
				return svc.Verify(ctx, source, target, expected)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "fully qualified name of the source table")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "fully qualified name of the target table")
	cmd.Flags().StringVarP(&opts.mappingFile, "mappings", "m", "", "YAML or JSON file with column mappings")
	cmd.Flags().StringVarP(&opts.graphFile, "graph", "g", "", "saved lineage graph JSON to verify offline")
	cmd.Flags().StringVar(&opts.sourceID, "source-id", "", "source table id, required with --graph")
	cmd.Flags().StringVar(&opts.targetID, "target-id", "", "target table id, required with --graph")

	return cmd
}
