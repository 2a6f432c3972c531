package client

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyToken        = errors.New("access token is empty")
	ErrUnsupportedServer = errors.New("unsupported server version")
)

type TokenFileNotFoundError struct {
	Path string
}

func (err TokenFileNotFoundError) Error() string {
	path := err.Path
	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}
	return fmt.Sprintf("token file not found: %s\ncreate a file named %q and paste your personal access token into it",
		path, filepath.Base(err.Path))
}

type HealthCheckError struct {
	Host string
	Err  error
}

func (err HealthCheckError) Error() string {
	return fmt.Sprintf("health check failed for %s: %s", err.Host, err.Err)
}

func (err HealthCheckError) Unwrap() error {
	return err.Err
}

// APIError is returned for every non-2xx response.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (err APIError) Error() string {
	var s strings.Builder
	s.WriteString(err.Op + ": ")
	s.WriteString(fmt.Sprintf("unexpected status %d %s", err.StatusCode, http.StatusText(err.StatusCode)))
	if body := strings.TrimSpace(err.Body); body != "" {
		s.WriteString(": " + body)
	}
	return s.String()
}

func (err APIError) NotFound() bool {
	return err.StatusCode == http.StatusNotFound
}
