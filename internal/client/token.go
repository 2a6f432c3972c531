package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ReadToken reads a personal access token from path. Surrounding whitespace
// is trimmed.
func ReadToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", TokenFileNotFoundError{Path: path}
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyToken, path)
	}
	return token, nil
}
