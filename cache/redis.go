// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v7"
)

// DefaultTTL bounds how long a result stays in Redis.
const DefaultTTL = 24 * time.Hour

// Redis is a Store backed by a Redis server, shared between processes.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*Redis)(nil)

// NewRedis connects to addr (host:port) and pings it. ttl <= 0 means DefaultTTL.
func NewRedis(addr string, ttl time.Duration) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("%w: empty redis address", ErrInvalidParameter)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	if _, err := client.Ping().Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: %v", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func rkResult(key string) string {
	return fmt.Sprintf("glmmda:r:%s", key)
}

// Get fetches key; redis.Nil is reported as a miss.
func (s *Redis) Get(key string) ([]byte, bool, error) {
	b, err := s.client.Get(rkResult(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: %v", err)
	}

	return b, true, nil
}

// Set stores value with the configured TTL.
func (s *Redis) Set(key string, value []byte) error {
	if err := s.client.Set(rkResult(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis: %v", err)
	}

	return nil
}

// Close releases the connection pool.
func (s *Redis) Close() error {
	return s.client.Close()
}
