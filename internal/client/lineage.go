package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/lineage"
)

func (c *Client) AddLineage(ctx context.Context, req lineage.AddLineageRequest) error {
	return c.do(ctx, "add_lineage", http.MethodPut, "/v1/lineage", nil, req, nil)
}

// GetLineageByName returns the raw lineage graph around the entity.
func (c *Client) GetLineageByName(ctx context.Context, entity catalog.EntityType, fqn string, upstreamDepth, downstreamDepth int) (json.RawMessage, error) {
	if fqn == "" {
		return nil, catalog.ErrEmptyFQN
	}

	query := url.Values{
		"upstreamDepth":   []string{strconv.Itoa(upstreamDepth)},
		"downstreamDepth": []string{strconv.Itoa(downstreamDepth)},
	}
	path := "/v1/lineage/" + url.PathEscape(entity.String()) + "/name/" + url.PathEscape(fqn)

	var raw json.RawMessage
	if err := c.do(ctx, "get_lineage", http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
