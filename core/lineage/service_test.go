package lineage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
	"github.com/goto/lineagecheck/core/lineage/mocks"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	sourceTable = catalog.Table{ID: sourceID, Name: "orders_raw", FullyQualifiedName: sourceFQN}
	targetTable = catalog.Table{ID: targetID, Name: "orders_curated", FullyQualifiedName: targetFQN}
	fixedNow    = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
)

func newService(cat lineage.Catalog, reports lineage.ReportRepository) *lineage.Service {
	return lineage.NewService(lineage.ServiceDeps{
		Config:  lineage.Config{UpstreamDepth: 1, DownstreamDepth: 1},
		Logger:  log.NewNoop(),
		Catalog: cat,
		Reports: reports,
		Now:     func() time.Time { return fixedNow },
	})
}

func TestService_Submit(t *testing.T) {
	ctx := context.TODO()

	t.Run("sends edge with column lineage and query", func(t *testing.T) {
		cat := mocks.NewCatalog(t)
		cat.EXPECT().AddLineage(mock.Anything, mock.AnythingOfType("lineage.AddLineageRequest")).
			Run(func(_ context.Context, req lineage.AddLineageRequest) {
				assert.Equal(t, sourceID, req.Edge.FromEntity.ID)
				assert.Equal(t, catalog.EntityTypeTable, req.Edge.FromEntity.Type)
				assert.Equal(t, targetID, req.Edge.ToEntity.ID)
				assert.Equal(t, "demo lineage", req.Edge.Description)
				require.NotNil(t, req.Edge.LineageDetails)
				assert.Equal(t, "INSERT INTO orders_curated SELECT * FROM orders_raw", req.Edge.LineageDetails.SQLQuery)
				assert.Len(t, req.Edge.LineageDetails.ColumnsLineage, 4)
			}).
			Return(nil)

		err := newService(cat, nil).Submit(ctx, sourceTable, targetTable, ordersMappings(),
			"INSERT INTO orders_curated SELECT * FROM orders_raw", "demo lineage")
		assert.NoError(t, err)
	})

	t.Run("rejects mapping without target column before calling the catalog", func(t *testing.T) {
		cat := mocks.NewCatalog(t)

		err := newService(cat, nil).Submit(ctx, sourceTable, targetTable,
			[]lineage.ColumnLineage{{FromColumns: []string{sourceFQN + ".order_id"}}}, "", "")
		assert.ErrorContains(t, err, "invalid lineage request")
	})

	t.Run("rejects entities without uuid identifiers", func(t *testing.T) {
		cat := mocks.NewCatalog(t)

		err := newService(cat, nil).Submit(ctx, catalog.Table{ID: "src"}, targetTable, ordersMappings(), "", "")
		assert.ErrorContains(t, err, "must be a valid uuid")
	})

	t.Run("wraps catalog errors", func(t *testing.T) {
		cat := mocks.NewCatalog(t)
		cat.EXPECT().AddLineage(mock.Anything, mock.Anything).Return(errors.New("forbidden"))

		err := newService(cat, nil).Submit(ctx, sourceTable, targetTable, ordersMappings(), "", "")
		assert.EqualError(t, err, "add lineage "+sourceFQN+" -> "+targetFQN+": forbidden")
	})
}

func TestService_Verify(t *testing.T) {
	ctx := context.TODO()
	expected := lineage.ExpandColumnLineage(ordersMappings())

	completeGraph, err := json.Marshal(lineage.Graph{
		UpstreamEdges: []lineage.Edge{edgeWith(sourceID, targetID, ordersMappings()...)},
	})
	require.NoError(t, err)

	t.Run("verifies and stores the report", func(t *testing.T) {
		cat := mocks.NewCatalog(t)
		reports := mocks.NewReportRepository(t)
		cat.EXPECT().GetLineageByName(mock.Anything, catalog.EntityTypeTable, targetFQN, 1, 1).Return(completeGraph, nil)
		reports.EXPECT().Insert(mock.Anything, mock.AnythingOfType("lineage.Report")).
			Run(func(_ context.Context, report lineage.Report) {
				assert.NotEmpty(t, report.ID)
				assert.Equal(t, fixedNow, report.CreatedAt)
				assert.True(t, report.Passed())
			}).
			Return(nil)

		report, err := newService(cat, reports).Verify(ctx, sourceTable, targetTable, expected)
		require.NoError(t, err)
		assert.Equal(t, 4, report.Actual)
		assert.Equal(t, sourceFQN, report.Source.FullyQualifiedName.String())
	})

	t.Run("returns report alongside incomplete error", func(t *testing.T) {
		cat := mocks.NewCatalog(t)
		partial, err := json.Marshal(map[string]interface{}{
			"edges": []lineage.Edge{edgeWith(sourceID, targetID, ordersMappings()[1:]...)},
		})
		require.NoError(t, err)
		cat.EXPECT().GetLineageByName(mock.Anything, catalog.EntityTypeTable, targetFQN, 1, 1).Return(partial, nil)

		report, err := newService(cat, nil).Verify(ctx, sourceTable, targetTable, expected)
		assert.True(t, lineage.IsVerificationFailure(err))
		assert.Equal(t, []lineage.ColumnPair{pair(sourceFQN+".order_id", targetFQN+".order_id")}, report.Missing)
	})

	t.Run("report store failure does not mask the outcome", func(t *testing.T) {
		cat := mocks.NewCatalog(t)
		reports := mocks.NewReportRepository(t)
		cat.EXPECT().GetLineageByName(mock.Anything, catalog.EntityTypeTable, targetFQN, 1, 1).Return(completeGraph, nil)
		reports.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := newService(cat, reports).Verify(ctx, sourceTable, targetTable, expected)
		assert.NoError(t, err)
	})

	t.Run("fetch failure is not a verification failure", func(t *testing.T) {
		cat := mocks.NewCatalog(t)
		cat.EXPECT().GetLineageByName(mock.Anything, catalog.EntityTypeTable, targetFQN, 1, 1).Return(nil, errors.New("timeout"))

		_, err := newService(cat, nil).Verify(ctx, sourceTable, targetTable, expected)
		assert.EqualError(t, err, "fetch lineage graph of "+targetFQN+": timeout")
		assert.False(t, lineage.IsVerificationFailure(err))
	})
}

func TestService_VerifyGraph(t *testing.T) {
	ctx := context.TODO()
	expected := lineage.ExpandColumnLineage(ordersMappings())

	t.Run("verifies a saved response without catalog calls", func(t *testing.T) {
		saved := []byte(`{
			"entity": {"id": "` + targetID + `", "type": "table"},
			"upstreamEdges": [
				{"fromEntity": "` + sourceID + `", "toEntity": "` + targetID + `", "lineageDetails": {"columnsLineage": [
					{"fromColumns": ["` + sourceFQN + `.order_id"], "toColumn": "` + targetFQN + `.order_id"},
					{"fromColumns": ["` + sourceFQN + `.customer_id"], "toColumn": "` + targetFQN + `.customer_id"},
					{"fromColumns": ["` + sourceFQN + `.amount"], "toColumn": "` + targetFQN + `.amount_usd"},
					{"fromColumns": ["` + sourceFQN + `.created_at"], "toColumn": "` + targetFQN + `.order_ts"}
				]}},
				{"fromEntity": {"id": "` + sourceID + `"}, "toEntity": {"id": "` + targetID + `"}}
			]
		}`)

		report, err := newService(nil, nil).VerifyGraph(ctx, sourceTable, targetTable, saved, expected)
		require.NoError(t, err)
		assert.Equal(t, 2, report.MatchingEdges)
		assert.Equal(t, 4, report.Actual)
		assert.Equal(t, "verified", report.Outcome())
	})

	t.Run("reports a missing edge", func(t *testing.T) {
		report, err := newService(nil, nil).VerifyGraph(ctx, sourceTable, targetTable, []byte(`{"edges": []}`), expected)
		assert.ErrorAs(t, err, &lineage.EdgeNotFoundError{})
		assert.False(t, report.EdgeFound)
		assert.NotEmpty(t, report.ID)
	})
}
