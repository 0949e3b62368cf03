// SPDX-License-Identifier: MIT

// Package cache stores serialized estimator results keyed by a request
// fingerprint. Only seeded requests are cacheable; the mda package computes
// the key and the payload.
package cache

import "errors"

// ErrInvalidParameter is returned for a non-positive LRU size or an empty address.
var ErrInvalidParameter = errors.New("cache: invalid parameter")

// Store is a byte-oriented key/value store. Implementations are safe for
// concurrent use. A miss is (nil, false, nil).
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}
