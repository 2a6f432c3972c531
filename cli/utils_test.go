package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goto/lineagecheck/core/lineage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseMappingFile(t *testing.T) {
	want := []columnMapping{
		{From: []string{"first_name", "last_name"}, To: "full_name"},
		{From: []string{"id"}, To: "id"},
	}

	cases := []struct {
		Description string
		Name        string
		Content     string
		Expected    []columnMapping
		ErrContains string
	}{
		{
			Description: "should parse yaml mappings",
			Name:        "mappings.yaml",
			Content: `
- from: [first_name, last_name]
  to: full_name
- from: [id]
  to: id
`,
			Expected: want,
		},
		{
			Description: "should parse json mappings",
			Name:        "mappings.json",
			Content:     `[{"from":["first_name","last_name"],"to":"full_name"},{"from":["id"],"to":"id"}]`,
			Expected:    want,
		},
		{
			Description: "should reject unknown extension",
			Name:        "mappings.txt",
			Content:     `id -> id`,
			ErrContains: "unsupported file type",
		},
		{
			Description: "should reject invalid json",
			Name:        "mappings.json",
			Content:     `{`,
			ErrContains: "invalid json",
		},
		{
			Description: "should reject empty file",
			Name:        "mappings.yml",
			Content:     `[]`,
			ErrContains: "has no column mappings",
		},
	}
	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			got, err := parseMappingFile(writeFile(t, tc.Name, tc.Content))
			if tc.ErrContains != "" {
				assert.ErrorContains(t, err, tc.ErrContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestToColumnLineage(t *testing.T) {
	got := toColumnLineage("svc.db.public.src", "svc.db.public.tgt", []columnMapping{
		{From: []string{"a", "b"}, To: "c"},
	})
	assert.Equal(t, []lineage.ColumnLineage{{
		FromColumns: []string{"svc.db.public.src.a", "svc.db.public.src.b"},
		ToColumn:    "svc.db.public.tgt.c",
	}}, got)
}

func TestDefaultDemoMappingsExpandToExpectedPairs(t *testing.T) {
	src := "demo_mysql_lineage_service.demo_db.public.orders_raw"
	tgt := "demo_mysql_lineage_service.demo_db.public.orders_curated"

	pairs := lineage.SortPairs(lineage.ExpandColumnLineage(toColumnLineage(src, tgt, defaultDemoMappings())))

	assert.Equal(t, []lineage.ColumnPair{
		{From: src + ".amount", To: tgt + ".amount_usd"},
		{From: src + ".created_at", To: tgt + ".order_ts"},
		{From: src + ".customer_id", To: tgt + ".customer_id"},
		{From: src + ".order_id", To: tgt + ".order_id"},
	}, pairs)
}

func TestDemoSQLQuery(t *testing.T) {
	got := demoSQLQuery("orders_raw", "orders_curated", defaultDemoMappings())
	assert.Equal(t,
		"INSERT INTO orders_curated (order_id, customer_id, amount_usd, order_ts) "+
			"SELECT order_id, customer_id, amount AS amount_usd, created_at AS order_ts FROM orders_raw",
		got)
}

func TestTableFQN(t *testing.T) {
	d := DemoConfig{ServiceName: "svc", Database: "db", Schema: "public"}
	assert.Equal(t, "svc.db.public.orders_raw", tableFQN(d, "orders_raw"))
}
