package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
)

type ServerVersion struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	Timestamp int64  `json:"timestamp"`
}

// HealthCheck fetches the server version and checks it is supported.
func (c *Client) HealthCheck(ctx context.Context) (ServerVersion, error) {
	var sv ServerVersion
	if err := c.do(ctx, "health_check", http.MethodGet, "/v1/system/version", nil, nil, &sv); err != nil {
		return sv, HealthCheckError{Host: c.host, Err: err}
	}

	if c.minVersion == nil {
		return sv, nil
	}
	v, err := semver.NewVersion(sv.Version)
	if err != nil {
		return sv, HealthCheckError{Host: c.host, Err: fmt.Errorf("parse server version %q: %w", sv.Version, err)}
	}
	if v.LessThan(c.minVersion) {
		return sv, fmt.Errorf("%w: %s is older than %s", ErrUnsupportedServer, v, c.minVersion)
	}

	c.logger.Info("connected to catalog", "host", c.host, "version", sv.Version)
	return sv, nil
}
