// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// LRU is an in-process Store bounded to a fixed number of entries.
type LRU struct {
	entries *lru.Cache
}

var _ Store = (*LRU)(nil)

// NewLRU returns an LRU holding at most size entries.
func NewLRU(size int) (*LRU, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: lru size %d", ErrInvalidParameter, size)
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("lru: %v", err)
	}

	return &LRU{entries: c}, nil
}

// Get returns a copy of the cached value.
func (s *LRU) Get(key string) ([]byte, bool, error) {
	v, ok := s.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	b := v.([]byte)
	out := make([]byte, len(b))
	copy(out, b)

	return out, true, nil
}

// Set stores a copy of value, evicting the least recently used entry when full.
func (s *LRU) Set(key string, value []byte) error {
	b := make([]byte, len(value))
	copy(b, value)
	s.entries.Add(key, b)

	return nil
}

// Len returns the number of cached entries.
func (s *LRU) Len() int { return s.entries.Len() }
