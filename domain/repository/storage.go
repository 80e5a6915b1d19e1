package repository

import "context"

// IKeyValueStore is the durable client-side storage port. Get reports whether
// the key exists; a missing key is not an error.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
