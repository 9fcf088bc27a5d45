package ports

import (
	"context"
	"io"
	"time"
)

// MediaStore persists proof-of-delivery photos under opaque caller-supplied
// keys. Storage is keyed only by the key, not by content hash; duplicate
// uploads are not deduplicated.
type MediaStore interface {
	// Store persists the reader's bytes under key. Implementations must not
	// leave a partial object behind when the write fails.
	Store(ctx context.Context, key string, r io.Reader) error

	// Remove deletes the object stored under key. Removing a missing key is
	// not an error; Remove is used for best-effort compensation.
	Remove(ctx context.Context, key string) error

	// URLFor returns the client-resolvable URL for a stored key.
	URLFor(key string) string

	// ListOlderThan returns the keys of stored objects whose modification
	// time is before cutoff. Used by the orphan cleanup job.
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}
