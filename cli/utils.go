package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
	"gopkg.in/yaml.v2"
)

// columnMapping names columns relative to their tables.
type columnMapping struct {
	From []string `json:"from" yaml:"from"`
	To   string   `json:"to" yaml:"to"`
}

func defaultDemoMappings() []columnMapping {
	return []columnMapping{
		{From: []string{"order_id"}, To: "order_id"},
		{From: []string{"customer_id"}, To: "customer_id"},
		{From: []string{"amount"}, To: "amount_usd"},
		{From: []string{"created_at"}, To: "order_ts"},
	}
}

func parseFile(filePath string, v interface{}) error {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	switch filepath.Ext(filePath) {
	case ".json":
		if err := json.Unmarshal(b, v); err != nil {
			return fmt.Errorf("invalid json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, v); err != nil {
			return fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		return errors.New("unsupported file type")
	}

	return nil
}

func parseMappingFile(filePath string) ([]columnMapping, error) {
	var mappings []columnMapping
	if err := parseFile(filePath, &mappings); err != nil {
		return nil, fmt.Errorf("parse mapping file %q: %w", filePath, err)
	}
	if len(mappings) == 0 {
		return nil, fmt.Errorf("mapping file %q has no column mappings", filePath)
	}
	return mappings, nil
}

// toColumnLineage qualifies every column with its table FQN.
func toColumnLineage(sourceFQN, targetFQN string, mappings []columnMapping) []lineage.ColumnLineage {
	out := make([]lineage.ColumnLineage, 0, len(mappings))
	for _, m := range mappings {
		from := make([]string, 0, len(m.From))
		for _, col := range m.From {
			from = append(from, catalog.ColumnFQN(sourceFQN, col))
		}
		out = append(out, lineage.ColumnLineage{
			FromColumns: from,
			ToColumn:    catalog.ColumnFQN(targetFQN, m.To),
		})
	}
	return out
}

// demoSQLQuery renders the transformation the demo lineage describes.
func demoSQLQuery(source, target string, mappings []columnMapping) string {
	targetCols := make([]string, 0, len(mappings))
	selects := make([]string, 0, len(mappings))
	for _, m := range mappings {
		targetCols = append(targetCols, m.To)
		expr := strings.Join(m.From, " || ")
		if len(m.From) == 1 && m.From[0] == m.To {
			selects = append(selects, expr)
			continue
		}
		selects = append(selects, expr+" AS "+m.To)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s",
		target, strings.Join(targetCols, ", "), strings.Join(selects, ", "), source)
}

func tableFQN(d DemoConfig, table string) string {
	return strings.Join([]string{d.ServiceName, d.Database, d.Schema, table}, ".")
}

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}
