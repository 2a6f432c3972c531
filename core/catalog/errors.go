package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFQN = errors.New("empty fully-qualified name")
)

type NotFoundError struct {
	EntityType EntityType
	FQN        string
}

func (err NotFoundError) Error() string {
	if err.FQN != "" {
		return fmt.Sprintf("could not find %s with fqn = %s", err.EntityType, err.FQN)
	}
	return fmt.Sprintf("could not find %s", err.EntityType)
}
