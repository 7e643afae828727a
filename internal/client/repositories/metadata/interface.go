// Package metadata implements the client's persistent key/value store: the
// place long-lived values such as the refresh credential and the access
// cookie survive restarts.
package metadata

import (
	"context"
	"fmt"
)

// Repository is a persistent key/value store. Get returns (nil, nil) for a
// missing key; deleting a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// opError tags a backend failure with the operation and key it hit.
func opError(op, key string, err error) error {
	return fmt.Errorf("failed to %s metadata[%s]: %w", op, key, err)
}
