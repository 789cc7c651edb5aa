package generation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPool_RoundRobin(t *testing.T) {
	for n := 1; n <= 9; n++ {
		t.Run(fmt.Sprintf("pool_of_%d", n), func(t *testing.T) {
			keys := make([]string, n)
			for i := range keys {
				keys[i] = fmt.Sprintf("key-%d", i)
			}
			pool := NewKeyPool(keys)

			seen := make([]string, 0, n)
			for i := 0; i < n; i++ {
				key, err := pool.Next()
				require.NoError(t, err)
				seen = append(seen, key)
			}
			assert.Equal(t, keys, seen, "each key returned exactly once, in order")

			key, err := pool.Next()
			require.NoError(t, err)
			assert.Equal(t, keys[0], key, "rotation wraps to the first key")
		})
	}
}

func TestKeyPool_Empty(t *testing.T) {
	pool := NewKeyPool(nil)

	key, err := pool.Next()
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Empty(t, key)
	assert.Equal(t, 0, pool.Len())
}

func TestKeyPool_CopiesKeys(t *testing.T) {
	keys := []string{"a", "b"}
	pool := NewKeyPool(keys)
	keys[0] = "mutated"

	key, err := pool.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", key)
}

func TestKeyPool_ConcurrentCallersGetDistinctSlots(t *testing.T) {
	const (
		poolSize = 4
		rounds   = 50
	)
	keys := []string{"k0", "k1", "k2", "k3"}
	pool := NewKeyPool(keys)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		counts = make(map[string]int)
	)
	for i := 0; i < poolSize*rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := pool.Next()
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			counts[key]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	for _, k := range keys {
		assert.Equal(t, rounds, counts[k], "key %s handed out an uneven number of times", k)
	}
}
