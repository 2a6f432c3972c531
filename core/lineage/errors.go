package lineage

import (
	"fmt"
	"strings"
)

type EdgeNotFoundError struct {
	SourceID  string
	TargetID  string
	SourceFQN string
	TargetFQN string
}

func (err EdgeNotFoundError) Error() string {
	source, target := err.SourceFQN, err.TargetFQN
	if source == "" {
		source = err.SourceID
	}
	if target == "" {
		target = err.TargetID
	}
	return fmt.Sprintf("lineage edge was not found in read-back lineage graph: expected edge %s -> %s", source, target)
}

// IncompleteError reports that the matched edge lacks expected column mappings.
type IncompleteError struct {
	Missing []ColumnPair
}

func (err IncompleteError) Error() string {
	var s strings.Builder
	fmt.Fprintf(&s, "column-level lineage was not fully persisted: %d expected mapping(s) missing", len(err.Missing))
	for _, p := range err.Missing {
		s.WriteString("\n  - " + p.String())
	}
	return s.String()
}
