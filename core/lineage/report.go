package lineage

import (
	"fmt"
	"strings"
	"time"

	"github.com/goto/lineagecheck/core/catalog"
)

// Report is the outcome of one verification.
type Report struct {
	ID        string                  `json:"id"`
	Source    catalog.EntityReference `json:"source"`
	Target    catalog.EntityReference `json:"target"`
	EdgeFound bool                    `json:"edge_found"`
	// MatchingEdges counts every edge with the requested identity; only the
	// first one is inspected.
	MatchingEdges int          `json:"matching_edges"`
	Expected      int          `json:"expected"`
	Actual        int          `json:"actual"`
	Missing       []ColumnPair `json:"missing"`
	Extra         []ColumnPair `json:"extra"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (r Report) Passed() bool {
	return r.EdgeFound && len(r.Missing) == 0
}

func (r Report) Outcome() string {
	switch {
	case !r.EdgeFound:
		return "edge_not_found"
	case len(r.Missing) > 0:
		return "incomplete"
	default:
		return "verified"
	}
}

// String renders the report for humans.
func (r Report) String() string {
	var s strings.Builder
	s.WriteString("[Verification]\n")
	fmt.Fprintf(&s, "Edge: %s -> %s\n", r.Source.FullyQualifiedName, r.Target.FullyQualifiedName)
	if !r.EdgeFound {
		s.WriteString("Lineage edge was not found in read-back lineage graph.\n")
		return s.String()
	}

	fmt.Fprintf(&s, "Expected column mappings: %d\n", r.Expected)
	fmt.Fprintf(&s, "Actual column mappings on edge: %d\n", r.Actual)
	if len(r.Missing) > 0 {
		s.WriteString("Missing mappings:\n")
		for _, p := range r.Missing {
			s.WriteString("  - " + p.String() + "\n")
		}
	}
	if len(r.Extra) > 0 {
		s.WriteString("Extra mappings (not expected):\n")
		for _, p := range r.Extra {
			s.WriteString("  - " + p.String() + "\n")
		}
	}
	return s.String()
}
