package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
)

type ReportModel struct {
	ID            string    `db:"id"`
	SourceID      string    `db:"source_id"`
	SourceFQN     string    `db:"source_fqn"`
	TargetID      string    `db:"target_id"`
	TargetFQN     string    `db:"target_fqn"`
	EdgeFound     bool      `db:"edge_found"`
	MatchingEdges int       `db:"matching_edges"`
	ExpectedCount int       `db:"expected_count"`
	ActualCount   int       `db:"actual_count"`
	Missing       PairsJSON `db:"missing"`
	Extra         PairsJSON `db:"extra"`
	Passed        bool      `db:"passed"`
	CreatedAt     time.Time `db:"created_at"`
}

func newReportModel(r lineage.Report) ReportModel {
	return ReportModel{
		ID:            r.ID,
		SourceID:      r.Source.ID,
		SourceFQN:     r.Source.FullyQualifiedName.String(),
		TargetID:      r.Target.ID,
		TargetFQN:     r.Target.FullyQualifiedName.String(),
		EdgeFound:     r.EdgeFound,
		MatchingEdges: r.MatchingEdges,
		ExpectedCount: r.Expected,
		ActualCount:   r.Actual,
		Missing:       r.Missing,
		Extra:         r.Extra,
		Passed:        r.Passed(),
		CreatedAt:     r.CreatedAt,
	}
}

func (m ReportModel) toReport() lineage.Report {
	return lineage.Report{
		ID: m.ID,
		Source: catalog.EntityReference{
			ID:                 m.SourceID,
			Type:               catalog.EntityTypeTable,
			FullyQualifiedName: catalog.Name(m.SourceFQN),
		},
		Target: catalog.EntityReference{
			ID:                 m.TargetID,
			Type:               catalog.EntityTypeTable,
			FullyQualifiedName: catalog.Name(m.TargetFQN),
		},
		EdgeFound:     m.EdgeFound,
		MatchingEdges: m.MatchingEdges,
		Expected:      m.ExpectedCount,
		Actual:        m.ActualCount,
		Missing:       m.Missing,
		Extra:         m.Extra,
		CreatedAt:     m.CreatedAt,
	}
}

// PairsJSON stores column pairs as a jsonb list.
type PairsJSON []lineage.ColumnPair

func (p PairsJSON) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	ba, err := json.Marshal([]lineage.ColumnPair(p))
	return string(ba), err
}

func (p *PairsJSON) Scan(value interface{}) error {
	var ba []byte
	switch v := value.(type) {
	case []byte:
		ba = v
	case string:
		ba = []byte(v)
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}
	var pairs []lineage.ColumnPair
	if err := json.Unmarshal(ba, &pairs); err != nil {
		return err
	}
	*p = pairs
	return nil
}
