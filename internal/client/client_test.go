package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
	"github.com/goto/lineagecheck/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "s3cr3t"

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{Host: srv.URL + "/api", MinServerVersion: "1.0.0"}, testToken,
		client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestReadToken(t *testing.T) {
	dir := t.TempDir()

	t.Run("trims whitespace", func(t *testing.T) {
		path := filepath.Join(dir, "token")
		require.NoError(t, os.WriteFile(path, []byte("  abc\n"), 0o600))

		token, err := client.ReadToken(path)
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := client.ReadToken(filepath.Join(dir, "personal_access_token"))

		var notFound client.TokenFileNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Contains(t, err.Error(), "personal_access_token")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty")
		require.NoError(t, os.WriteFile(path, []byte(" \n\t"), 0o600))

		_, err := client.ReadToken(path)
		assert.ErrorIs(t, err, client.ErrEmptyToken)
	})
}

func TestNew(t *testing.T) {
	_, err := client.New(client.Config{Host: "http://localhost:8585/api"}, "")
	assert.ErrorIs(t, err, client.ErrEmptyToken)

	_, err = client.New(client.Config{Host: "localhost"}, "token")
	assert.ErrorContains(t, err, "invalid host")

	_, err = client.New(client.Config{Host: "http://localhost:8585/api", MinServerVersion: "x.y"}, "token")
	assert.ErrorContains(t, err, "invalid min server version")
}

func TestHealthCheck(t *testing.T) {
	t.Run("accepts supported version", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/system/version", r.URL.Path)
			_, _ = io.WriteString(w, `{"version":"1.11.9","revision":"abc"}`)
		})

		sv, err := c.HealthCheck(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, "1.11.9", sv.Version)
	})

	t.Run("rejects older version", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"version":"0.13.2"}`)
		})

		_, err := c.HealthCheck(context.TODO())
		assert.ErrorIs(t, err, client.ErrUnsupportedServer)
	})

	t.Run("server error is a health check error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := c.HealthCheck(context.TODO())
		var hcErr client.HealthCheckError
		require.True(t, errors.As(err, &hcErr))

		var apiErr client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})
}

func TestCreateOrUpdateTable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/tables", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req catalog.CreateTableRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "orders_raw", req.Name)
		assert.Equal(t, "svc.demo_db.public", req.DatabaseSchema)
		assert.Len(t, req.Columns, 1)

		_, _ = io.WriteString(w, `{
			"id": "0b6b2c1e-5d0c-4c55-9f0e-3c1c2d7d8a01",
			"name": "orders_raw",
			"fullyQualifiedName": "svc.demo_db.public.orders_raw",
			"columns": [{"name": "order_id", "dataType": "BIGINT", "fullyQualifiedName": "svc.demo_db.public.orders_raw.order_id"}]
		}`)
	})

	table, err := c.CreateOrUpdateTable(context.TODO(), catalog.CreateTableRequest{
		Name:           "orders_raw",
		DatabaseSchema: "svc.demo_db.public",
		Columns:        []catalog.Column{{Name: "order_id", DataType: catalog.DataTypeBigInt}},
	})
	require.NoError(t, err)
	assert.Equal(t, "svc.demo_db.public.orders_raw", table.FQN())
	assert.Equal(t, "0b6b2c1e-5d0c-4c55-9f0e-3c1c2d7d8a01", table.ID)
}

func TestGetTableByName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "columns", r.URL.Query().Get("fields"))
		if r.URL.Path == "/api/v1/tables/name/svc.demo_db.public.orders_raw" {
			_, _ = io.WriteString(w, `{"id":"a","name":"orders_raw","fullyQualifiedName":"svc.demo_db.public.orders_raw"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":404,"message":"table instance for x not found"}`)
	})

	table, err := c.GetTableByName(context.TODO(), "svc.demo_db.public.orders_raw")
	require.NoError(t, err)
	assert.Equal(t, "a", table.ID)

	_, err = c.GetTableByName(context.TODO(), "svc.demo_db.public.unknown")
	assert.True(t, errors.As(err, new(catalog.NotFoundError)))

	_, err = c.GetTableByName(context.TODO(), "")
	assert.ErrorIs(t, err, catalog.ErrEmptyFQN)
}

func TestAddLineage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/lineage", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		edge := body["edge"].(map[string]interface{})
		assert.Equal(t, "src", edge["fromEntity"].(map[string]interface{})["id"])
		assert.Equal(t, "table", edge["toEntity"].(map[string]interface{})["type"])
		details := edge["lineageDetails"].(map[string]interface{})
		assert.Len(t, details["columnsLineage"], 1)
	})

	err := c.AddLineage(context.TODO(), lineage.AddLineageRequest{
		Edge: lineage.EntitiesEdge{
			FromEntity: catalog.EntityReference{ID: "src", Type: catalog.EntityTypeTable},
			ToEntity:   catalog.EntityReference{ID: "tgt", Type: catalog.EntityTypeTable},
			LineageDetails: &lineage.LineageDetails{
				ColumnsLineage: []lineage.ColumnLineage{{FromColumns: []string{"a.x"}, ToColumn: "b.x"}},
			},
		},
	})
	assert.NoError(t, err)
}

func TestGetLineageByName(t *testing.T) {
	const graph = `{"entity":{"id":"tgt","type":"table"},"upstreamEdges":[{"fromEntity":"src","toEntity":"tgt"}],"downstreamEdges":[]}`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/lineage/table/name/svc.demo_db.public.orders_curated", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("upstreamDepth"))
		assert.Equal(t, "2", r.URL.Query().Get("downstreamDepth"))
		_, _ = io.WriteString(w, graph)
	})

	raw, err := c.GetLineageByName(context.TODO(), catalog.EntityTypeTable, "svc.demo_db.public.orders_curated", 1, 2)
	require.NoError(t, err)
	assert.JSONEq(t, graph, string(raw))

	edges := lineage.Edges(raw)
	require.Len(t, edges, 1)
	from, to := edges[0].Identity()
	assert.Equal(t, "src", from)
	assert.Equal(t, "tgt", to)
}

func TestUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"code":401,"message":"Not authorized; User's Email is not present"}`)
	}))
	defer srv.Close()

	c, err := client.New(client.Config{Host: srv.URL + "/api"}, "expired", client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = c.AddLineage(context.TODO(), lineage.AddLineageRequest{})

	var apiErr client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "add_lineage", apiErr.Op)
	assert.Contains(t, err.Error(), "unexpected status 401 Unauthorized")
	assert.False(t, apiErr.NotFound())
}
