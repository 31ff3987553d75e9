package service

import (
	"context"
	"io"
)

// ImageStore abstracts where uploaded product images end up. Keys are paths
// like "plants/<plant-id>.png".
type ImageStore interface {
	// Save writes the image bytes under the given key, replacing any previous
	// content.
	Save(ctx context.Context, key string, contents io.Reader) error

	// Remove deletes the image stored under the given key. Removing a missing
	// key is not an error.
	Remove(ctx context.Context, key string) error
}
