package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/goto/lineagecheck/pkg/statsd"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type Config struct {
	Host             string        `yaml:"host" mapstructure:"host" default:"http://localhost:8585/api" validate:"required,url"`
	TokenFile        string        `yaml:"token_file" mapstructure:"token_file" default:"personal_access_token" validate:"required"`
	Timeout          time.Duration `yaml:"timeout" mapstructure:"timeout" default:"30s"`
	MinServerVersion string        `yaml:"min_server_version" mapstructure:"min_server_version" default:"1.0.0"`
}

// Client talks to the OpenMetadata REST API.
type Client struct {
	host       string
	token      string
	httpClient *http.Client
	logger     log.Logger
	statsd     *statsd.Reporter
	minVersion *semver.Version
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithStatsD(reporter *statsd.Reporter) Option {
	return func(c *Client) {
		c.statsd = reporter
	}
}

func New(cfg Config, token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmptyToken
	}
	if _, err := url.ParseRequestURI(cfg.Host); err != nil {
		return nil, fmt.Errorf("invalid host %q: %w", cfg.Host, err)
	}

	c := &Client{
		host:  strings.TrimRight(cfg.Host, "/"),
		token: token,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newrelic.NewRoundTripper(http.DefaultTransport),
		},
		logger: log.NewNoop(),
	}

	if cfg.MinServerVersion != "" {
		minVersion, err := semver.NewVersion(cfg.MinServerVersion)
		if err != nil {
			return nil, fmt.Errorf("invalid min server version %q: %w", cfg.MinServerVersion, err)
		}
		c.minVersion = minVersion
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Create reads the access token, builds the client and checks the server is
// healthy before returning it.
func Create(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	token, err := ReadToken(cfg.TokenFile)
	if err != nil {
		return nil, err
	}

	c, err := New(cfg, token, opts...)
	if err != nil {
		return nil, err
	}

	if _, err := c.HealthCheck(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		c.statsd.Timing("client_request", time.Since(start)).
			Tag("op", op).
			WithError(err).
			Publish()
	}()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	endpoint := c.host + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("catalog request", "op", op, "method", method, "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return APIError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], respBody...)
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
