package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is a durable key-value medium holding one JSON document per
// key. Implementations are synchronous; there is no partial write.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Load decodes the value stored under key into T. When the key has
// never been written and seed is non-nil, the seed value is persisted
// before it is returned, so first read and first write are a single
// step from the caller's point of view. A missing key with a nil seed
// yields the zero value of T.
func Load[T any](ctx context.Context, s Store, key string, seed func() T) (T, error) {
	var zero T

	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if !ok {
		if seed == nil {
			return zero, nil
		}
		v := seed()
		if err := Save(ctx, s, key, v); err != nil {
			return zero, err
		}
		return v, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		// Never reseed over data that fails to decode; surface it.
		return zero, fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return v, nil
}

// Save encodes v and overwrites the value stored under key.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Put(ctx, key, raw)
}
