package lineage

import (
	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/lib/set"
)

// ColumnPair is a single source column to target column derivation, both
// named by their fully-qualified names.
type ColumnPair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (p ColumnPair) String() string {
	return p.From + " -> " + p.To
}

func pairLess(a, b ColumnPair) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}

type PairSet = set.Set[ColumnPair]

func NewPairSet(pairs ...ColumnPair) PairSet {
	return set.New(pairs...)
}

// SortPairs lists the pairs ordered by source then target column.
func SortPairs(s PairSet) []ColumnPair {
	return s.Sorted(pairLess)
}

// ColumnLineage records the source columns a target column was derived from.
type ColumnLineage struct {
	FromColumns []string `json:"fromColumns" validate:"required,min=1,dive,required"`
	ToColumn    string   `json:"toColumn" validate:"required"`
	Function    string   `json:"function,omitempty"`
}

type LineageDetails struct {
	SQLQuery       string          `json:"sqlQuery,omitempty"`
	Description    string          `json:"description,omitempty"`
	ColumnsLineage []ColumnLineage `json:"columnsLineage,omitempty" validate:"dive"`
}

// ExpandColumnLineage expands every fan-in mapping into one pair per source
// column. Mappings with an empty source or target column are skipped.
func ExpandColumnLineage(mappings []ColumnLineage) PairSet {
	pairs := NewPairSet()
	for _, m := range mappings {
		if m.ToColumn == "" {
			continue
		}
		for _, from := range m.FromColumns {
			if from == "" {
				continue
			}
			pairs.Add(ColumnPair{From: from, To: m.ToColumn})
		}
	}
	return pairs
}

// EntityRef identifies an edge endpoint. It decodes from either a flat
// identifier or an object carrying an "id" field.
type EntityRef struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

func (r *EntityRef) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := decodeJSON(data, &raw); err != nil {
		return err
	}
	*r = refFromValue(raw)
	return nil
}

func refFromValue(v interface{}) EntityRef {
	switch val := v.(type) {
	case map[string]interface{}:
		return EntityRef{
			ID:   catalog.PlainString(val["id"]),
			Type: catalog.PlainString(val["type"]),
		}
	case EntityRef:
		return val
	case catalog.EntityReference:
		return EntityRef{ID: val.ID, Type: val.Type.String()}
	default:
		return EntityRef{ID: catalog.PlainString(val)}
	}
}

// Edge is the canonical form of a lineage edge read back from the catalog.
type Edge struct {
	FromEntity     EntityRef       `json:"fromEntity"`
	ToEntity       EntityRef       `json:"toEntity"`
	LineageDetails *LineageDetails `json:"lineageDetails,omitempty"`
}

// Identity returns the source and target entity identifiers. Missing
// identifiers are the empty string.
func (e Edge) Identity() (string, string) {
	return e.FromEntity.ID, e.ToEntity.ID
}

func (e Edge) ColumnPairs() PairSet {
	if e.LineageDetails == nil {
		return NewPairSet()
	}
	return ExpandColumnLineage(e.LineageDetails.ColumnsLineage)
}

// Graph is the typed lineage graph response. Edges may arrive either as a
// unified list or split by direction.
type Graph struct {
	Entity          *catalog.EntityReference  `json:"entity,omitempty"`
	Nodes           []catalog.EntityReference `json:"nodes,omitempty"`
	Edges           []Edge                    `json:"edges,omitempty"`
	UpstreamEdges   []Edge                    `json:"upstreamEdges,omitempty"`
	DownstreamEdges []Edge                    `json:"downstreamEdges,omitempty"`
}

// EntitiesEdge is the edge submitted to the catalog.
type EntitiesEdge struct {
	FromEntity     catalog.EntityReference `json:"fromEntity"`
	ToEntity       catalog.EntityReference `json:"toEntity"`
	Description    string                  `json:"description,omitempty"`
	LineageDetails *LineageDetails         `json:"lineageDetails,omitempty"`
}

type AddLineageRequest struct {
	Edge EntitiesEdge `json:"edge"`
}
