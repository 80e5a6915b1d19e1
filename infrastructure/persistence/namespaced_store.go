package persistence

import (
	"context"

	"creatorflow/domain/repository"
)

// NamespacedStore prefixes every key so several dashboards can share one
// backing database.
type NamespacedStore struct {
	inner     repository.IKeyValueStore
	namespace string
}

func NewNamespacedStore(inner repository.IKeyValueStore, namespace string) repository.IKeyValueStore {
	if namespace == "" {
		return inner
	}
	return &NamespacedStore{inner: inner, namespace: namespace}
}

func (s *NamespacedStore) key(k string) string {
	return s.namespace + ":" + k
}

func (s *NamespacedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.key(key))
}

func (s *NamespacedStore) Set(ctx context.Context, key string, value string) error {
	return s.inner.Set(ctx, s.key(key), value)
}

func (s *NamespacedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.key(key))
}
