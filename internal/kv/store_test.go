package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("SeedsOnFirstRead", func(t *testing.T) {
		store := NewMemStore()
		seeded := 0
		seed := func() []fixture {
			seeded++
			return []fixture{{Name: "a", Count: 1}}
		}

		got, err := Load(ctx, store, "things", seed)
		require.NoError(t, err)
		assert.Equal(t, []fixture{{Name: "a", Count: 1}}, got)
		assert.Equal(t, 1, seeded)

		// The seed must have been persisted: a second read decodes the
		// stored value instead of seeding again.
		got, err = Load(ctx, store, "things", seed)
		require.NoError(t, err)
		assert.Equal(t, []fixture{{Name: "a", Count: 1}}, got)
		assert.Equal(t, 1, seeded)
	})

	t.Run("NilSeedYieldsZeroValue", func(t *testing.T) {
		store := NewMemStore()

		got, err := Load[[]fixture](ctx, store, "missing", nil)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Nothing was written for the missing key.
		_, ok, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("CorruptData", func(t *testing.T) {
		store := NewMemStore()
		require.NoError(t, store.Put(ctx, "things", []byte("{not json")))

		_, err := Load[[]fixture](ctx, store, "things", nil)
		assert.ErrorIs(t, err, ErrCorrupt)

		// Corrupt data must survive the failed read untouched.
		raw, ok, err := store.Get(ctx, "things")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("{not json"), raw)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		store := NewMemStore()
		in := []fixture{{Name: "a", Count: 1}, {Name: "b", Count: 2}}

		require.NoError(t, Save(ctx, store, "things", in))
		out, err := Load[[]fixture](ctx, store, "things", nil)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestMemStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	require.NoError(t, store.Put(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoltStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	store, err := OpenBolt(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "k", []byte(`"v"`)))

	raw, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`"v"`), raw)

	_, ok, err = store.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Values survive reopening the file.
	require.NoError(t, store.Put(ctx, "persisted", []byte("1")))
	require.NoError(t, store.Close())

	store, err = OpenBolt(path)
	require.NoError(t, err)
	defer store.Close()

	raw, ok, err = store.Get(ctx, "persisted")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), raw)
}
