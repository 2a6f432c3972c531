package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goto/lineagecheck/core/catalog"
)

func (c *Client) CreateOrUpdateDatabaseService(ctx context.Context, req catalog.CreateDatabaseServiceRequest) (catalog.DatabaseService, error) {
	var svc catalog.DatabaseService
	err := c.do(ctx, "create_database_service", http.MethodPut, "/v1/services/databaseServices", nil, req, &svc)
	return svc, err
}

func (c *Client) CreateOrUpdateDatabase(ctx context.Context, req catalog.CreateDatabaseRequest) (catalog.Database, error) {
	var db catalog.Database
	err := c.do(ctx, "create_database", http.MethodPut, "/v1/databases", nil, req, &db)
	return db, err
}

func (c *Client) CreateOrUpdateDatabaseSchema(ctx context.Context, req catalog.CreateDatabaseSchemaRequest) (catalog.DatabaseSchema, error) {
	var schema catalog.DatabaseSchema
	err := c.do(ctx, "create_database_schema", http.MethodPut, "/v1/databaseSchemas", nil, req, &schema)
	return schema, err
}

func (c *Client) CreateOrUpdateTable(ctx context.Context, req catalog.CreateTableRequest) (catalog.Table, error) {
	var table catalog.Table
	err := c.do(ctx, "create_table", http.MethodPut, "/v1/tables", nil, req, &table)
	return table, err
}

// GetTableByName returns catalog.NotFoundError when no table has the given fqn.
func (c *Client) GetTableByName(ctx context.Context, fqn string) (catalog.Table, error) {
	var table catalog.Table
	if fqn == "" {
		return table, catalog.ErrEmptyFQN
	}

	query := url.Values{"fields": []string{"columns"}}
	err := c.do(ctx, "get_table", http.MethodGet, "/v1/tables/name/"+url.PathEscape(fqn), query, nil, &table)
	if err != nil {
		var apiErr APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return table, catalog.NotFoundError{EntityType: catalog.EntityTypeTable, FQN: fqn}
		}
		return table, fmt.Errorf("get table %q: %w", fqn, err)
	}
	return table, nil
}
