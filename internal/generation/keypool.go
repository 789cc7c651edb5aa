package generation

import "sync"

// KeyPool hands out API keys in strict round-robin order.
// KeyPool is safe for concurrent use.
type KeyPool struct {
	mu      sync.Mutex
	keys    []string
	nextIdx int
}

// NewKeyPool creates a KeyPool over a copy of keys. An empty pool is valid;
// Next then reports ErrNoCredentials.
func NewKeyPool(keys []string) *KeyPool {
	return &KeyPool{keys: append([]string(nil), keys...)}
}

// Next returns the key at the current index and advances the index by one,
// wrapping at the end of the pool.
func (p *KeyPool) Next() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.keys) == 0 {
		return "", ErrNoCredentials
	}
	key := p.keys[p.nextIdx]
	p.nextIdx = (p.nextIdx + 1) % len(p.keys)
	return key, nil
}

// Len returns the number of keys in the pool.
func (p *KeyPool) Len() int {
	return len(p.keys)
}
