package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goto/lineagecheck/core/lineage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	offlineSourceID  = "0b6b2c1e-5d0c-4c55-9f0e-3c1c2d7d8a01"
	offlineTargetID  = "7f3e9a52-1b8c-4d7e-a6f0-9b2d4c5e6f02"
	offlineSourceFQN = "svc.db.public.orders_raw"
	offlineTargetFQN = "svc.db.public.orders_curated"
)

func savedGraph(mappings ...columnMapping) string {
	var cols []string
	for _, m := range mappings {
		cols = append(cols, `{"fromColumns":["`+offlineSourceFQN+`.`+m.From[0]+`"],"toColumn":"`+offlineTargetFQN+`.`+m.To+`"}`)
	}
	return `{"upstreamEdges":[{"fromEntity":{"id":"` + offlineSourceID + `","type":"table"},` +
		`"toEntity":{"id":"` + offlineTargetID + `","type":"table"},` +
		`"lineageDetails":{"columnsLineage":[` + strings.Join(cols, ",") + `]}}]}`
}

func TestVerifyCommandOffline(t *testing.T) {
	mappings := defaultDemoMappings()

	cases := []struct {
		Description string
		Graph       string
		Args        []string
		Check       func(t *testing.T, err error)
	}{
		{
			Description: "should require entity ids with a saved graph",
			Graph:       savedGraph(mappings...),
			Check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errMissingEntityID)
			},
		},
		{
			Description: "should pass when every mapping is on the edge",
			Graph:       savedGraph(mappings...),
			Args:        []string{"--source-id", offlineSourceID, "--target-id", offlineTargetID},
			Check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			Description: "should return the incomplete error after printing the report",
			Graph:       savedGraph(mappings[1:]...),
			Args:        []string{"--source-id", offlineSourceID, "--target-id", offlineTargetID},
			Check: func(t *testing.T, err error) {
				var incomplete lineage.IncompleteError
				require.ErrorAs(t, err, &incomplete)
				assert.Equal(t, []lineage.ColumnPair{{
					From: offlineSourceFQN + ".order_id",
					To:   offlineTargetFQN + ".order_id",
				}}, incomplete.Missing)
			},
		},
		{
			Description: "should return edge not found for other ids",
			Graph:       savedGraph(mappings...),
			Args:        []string{"--source-id", offlineTargetID, "--target-id", offlineSourceID},
			Check: func(t *testing.T, err error) {
				assert.ErrorAs(t, err, &lineage.EdgeNotFoundError{})
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			graphFile := writeFile(t, "lineage.json", tc.Graph)

			cmd := verifyCommand(validConfig())
			cmd.SetArgs(append([]string{
				"--graph", graphFile,
				"--source", offlineSourceFQN,
				"--target", offlineTargetFQN,
			}, tc.Args...))

			tc.Check(t, cmd.ExecuteContext(context.Background()))
		})
	}
}

func TestRunVerification(t *testing.T) {
	t.Run("should pass through infrastructure errors", func(t *testing.T) {
		fetchErr := errors.New("fetch lineage graph: timeout")
		err := runVerification(func() (lineage.Report, error) {
			return lineage.Report{}, fetchErr
		})
		assert.Same(t, fetchErr, err)
	})

	t.Run("should return verification failures", func(t *testing.T) {
		notFound := lineage.EdgeNotFoundError{SourceID: "a", TargetID: "b"}
		err := runVerification(func() (lineage.Report, error) {
			return lineage.Report{}, notFound
		})
		assert.Equal(t, notFound, err)
	})

	t.Run("should return nil when verified", func(t *testing.T) {
		err := runVerification(func() (lineage.Report, error) {
			return lineage.Report{EdgeFound: true}, nil
		})
		assert.NoError(t, err)
	})
}
