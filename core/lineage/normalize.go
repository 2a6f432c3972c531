package lineage

import (
	"bytes"
	"encoding/json"

	"github.com/goto/lineagecheck/core/catalog"
)

// graphShape yields the edges of one known response shape.
type graphShape interface {
	edges() []Edge
}

type emptyShape struct{}

func (emptyShape) edges() []Edge { return nil }

// typedShape is a decoded Graph.
type typedShape struct {
	graph *Graph
}

func (s typedShape) edges() []Edge {
	if s.graph.Edges != nil {
		return s.graph.Edges
	}
	edges := make([]Edge, 0, len(s.graph.UpstreamEdges)+len(s.graph.DownstreamEdges))
	edges = append(edges, s.graph.UpstreamEdges...)
	return append(edges, s.graph.DownstreamEdges...)
}

// mapShape is a generically decoded JSON object.
type mapShape struct {
	graph map[string]interface{}
}

func (s mapShape) edges() []Edge {
	if raw, ok := s.graph["edges"]; ok && raw != nil {
		return parseEdgeList(raw)
	}
	edges := parseEdgeList(s.graph["upstreamEdges"])
	return append(edges, parseEdgeList(s.graph["downstreamEdges"])...)
}

func detectShape(graph interface{}) graphShape {
	switch g := graph.(type) {
	case *Graph:
		if g == nil {
			return emptyShape{}
		}
		return typedShape{graph: g}
	case Graph:
		return typedShape{graph: &g}
	case map[string]interface{}:
		return mapShape{graph: g}
	case json.RawMessage:
		return decodeShape(g)
	case []byte:
		return decodeShape(g)
	case string:
		return decodeShape([]byte(g))
	default:
		return emptyShape{}
	}
}

func decodeShape(data []byte) graphShape {
	var m map[string]interface{}
	if err := decodeJSON(data, &m); err != nil {
		return emptyShape{}
	}
	return mapShape{graph: m}
}

// Edges normalizes a lineage graph response of any known shape into its
// ordered edges. A unified edge list is preferred when present; otherwise
// upstream edges are followed by downstream edges. Unknown or absent input
// yields no edges.
func Edges(graph interface{}) []Edge {
	return detectShape(graph).edges()
}

// ParseEdge converts a single edge, typed or generically decoded, into its
// canonical form. Malformed input yields an edge with empty identifiers.
func ParseEdge(edge interface{}) Edge {
	switch e := edge.(type) {
	case Edge:
		return e
	case *Edge:
		if e == nil {
			return Edge{}
		}
		return *e
	case map[string]interface{}:
		return edgeFromMap(e)
	case json.RawMessage:
		return decodeEdge(e)
	case []byte:
		return decodeEdge(e)
	default:
		return Edge{}
	}
}

// EdgeIdentity extracts the (source-id, target-id) pair of an edge.
func EdgeIdentity(edge interface{}) (string, string) {
	return ParseEdge(edge).Identity()
}

// EdgeColumnPairs extracts the expanded column pairs of an edge.
func EdgeColumnPairs(edge interface{}) PairSet {
	return ParseEdge(edge).ColumnPairs()
}

func decodeEdge(data []byte) Edge {
	var m map[string]interface{}
	if err := decodeJSON(data, &m); err != nil {
		return Edge{}
	}
	return edgeFromMap(m)
}

// decodeJSON keeps numbers as json.Number so numeric identifiers survive
// unchanged.
func decodeJSON(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func parseEdgeList(raw interface{}) []Edge {
	switch list := raw.(type) {
	case []interface{}:
		edges := make([]Edge, 0, len(list))
		for _, item := range list {
			edges = append(edges, ParseEdge(item))
		}
		return edges
	case []Edge:
		return list
	case []map[string]interface{}:
		edges := make([]Edge, 0, len(list))
		for _, item := range list {
			edges = append(edges, edgeFromMap(item))
		}
		return edges
	default:
		return nil
	}
}

func edgeFromMap(m map[string]interface{}) Edge {
	edge := Edge{
		FromEntity: refFromValue(m["fromEntity"]),
		ToEntity:   refFromValue(m["toEntity"]),
	}

	details, ok := m["lineageDetails"].(map[string]interface{})
	if !ok {
		return edge
	}

	edge.LineageDetails = &LineageDetails{
		SQLQuery:       catalog.PlainString(details["sqlQuery"]),
		Description:    catalog.PlainString(details["description"]),
		ColumnsLineage: columnLineageFromValue(details["columnsLineage"]),
	}
	return edge
}

func columnLineageFromValue(raw interface{}) []ColumnLineage {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	mappings := make([]ColumnLineage, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		mapping := ColumnLineage{
			ToColumn: catalog.PlainString(m["toColumn"]),
			Function: catalog.PlainString(m["function"]),
		}
		if froms, ok := m["fromColumns"].([]interface{}); ok {
			for _, from := range froms {
				mapping.FromColumns = append(mapping.FromColumns, catalog.PlainString(from))
			}
		}
		mappings = append(mappings, mapping)
	}
	return mappings
}
