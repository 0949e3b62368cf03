// SPDX-License-Identifier: MIT
package cache_test

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmmda/cache"
)

// exerciseStore checks the Store contract shared by every implementation.
func exerciseStore(t *testing.T, s cache.Store) {
	key := uuid.New().String()

	_, ok, err := s.Get(key)
	require.NoError(t, err)
	require.False(t, ok)

	in := []byte(`{"protein_rh":12.5}`)
	require.NoError(t, s.Set(key, in))
	in[0] = 'X'

	out, ok, err := s.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"protein_rh":12.5}`), out)
}

func TestLRU_Contract(t *testing.T) {
	s, err := cache.NewLRU(8)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestLRU_Evicts(t *testing.T) {
	s, err := cache.NewLRU(2)
	require.NoError(t, err)
	require.NoError(t, s.Set("a", []byte("1")))
	require.NoError(t, s.Set("b", []byte("2")))
	_, _, _ = s.Get("a")
	require.NoError(t, s.Set("c", []byte("3")))

	require.Equal(t, 2, s.Len())
	_, ok, _ := s.Get("b")
	require.False(t, ok, "least recently used entry must be evicted")
	_, ok, _ = s.Get("a")
	require.True(t, ok)
}

func TestLRU_InvalidSize(t *testing.T) {
	_, err := cache.NewLRU(0)
	require.ErrorIs(t, err, cache.ErrInvalidParameter)
}

func TestRedis_Contract(t *testing.T) {
	addr, ok := os.LookupEnv("REDIS_URI")
	if !ok {
		t.Skip("REDIS_URI not set")
	}
	s, err := cache.NewRedis(addr, time.Minute)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s.Close())
	}()
	exerciseStore(t, s)
}

func TestRedis_EmptyAddress(t *testing.T) {
	_, err := cache.NewRedis("", 0)
	require.ErrorIs(t, err, cache.ErrInvalidParameter)
}
