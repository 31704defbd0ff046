package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ImageNormalizer converts an uploaded image into the canonical stored
// form: a JPEG bounded to the configured maximum dimensions
type ImageNormalizer interface {
	Normalize(src []byte) ([]byte, error)
}

// ImageStorage abstracts the blob store holding product images
type ImageStorage interface {
	// Put stores the blob under the given key, overwriting any
	// previous content
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the blob stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a blob is stored under key
	Exists(ctx context.Context, key string) (bool, error)
}

// NewImageKey generates a fresh storage key for a product image.
// Keys are service-generated; callers never choose them.
func NewImageKey() string {
	return "products/" + uuid.New().String() + ".jpeg"
}
