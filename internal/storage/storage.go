// Package storage abstracts the two object-store domains: the staging bucket
// that submission files land in, and the production bucket that published
// logos are served from. Swap implementations by changing the concrete type
// injected at startup; the disk implementation is the default.
package storage

import "context"

// Bucket is a flat keyspace of objects. Upload overwrites any existing
// object at the same path.
type Bucket interface {
	Download(ctx context.Context, path string) ([]byte, error)
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	Remove(ctx context.Context, path string) error
}
