package lineage

import (
	"github.com/goto/lineagecheck/core/catalog"
)

// Verify checks that graph holds an edge from source to target whose column
// mappings include every expected pair. Extra pairs on the edge are reported
// but never fail the check. When several edges match, the first one wins.
//
// The returned report is complete in every case; the error is either an
// EdgeNotFoundError or an IncompleteError.
func Verify(source, target catalog.EntityReference, graph interface{}, expected PairSet) (Report, error) {
	report := Report{
		Source:   source,
		Target:   target,
		Expected: expected.Len(),
	}

	var matched *Edge
	for _, edge := range Edges(graph) {
		from, to := edge.Identity()
		if from == "" || to == "" {
			continue
		}
		if from != source.ID || to != target.ID {
			continue
		}
		report.MatchingEdges++
		if matched == nil {
			edge := edge
			matched = &edge
		}
	}

	if matched == nil {
		return report, EdgeNotFoundError{
			SourceID:  source.ID,
			TargetID:  target.ID,
			SourceFQN: source.FullyQualifiedName.String(),
			TargetFQN: target.FullyQualifiedName.String(),
		}
	}
	report.EdgeFound = true

	actual := matched.ColumnPairs()
	report.Actual = actual.Len()
	report.Missing = SortPairs(expected.Difference(actual))
	report.Extra = SortPairs(actual.Difference(expected))

	if len(report.Missing) > 0 {
		return report, IncompleteError{Missing: report.Missing}
	}
	return report, nil
}
