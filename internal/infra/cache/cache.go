// Package cache stores JSON-encoded read results for a bounded time.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// Memory is an in-process cache backed by go-cache.
type Memory struct {
	cache *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{cache: gocache.New(ttl, 2*ttl)}
}

func (m *Memory) Get(ctx context.Context, key string, dst any) (bool, error) {
	cached, found := m.cache.Get(key)
	if !found {
		return false, nil
	}
	return true, json.Unmarshal(cached.([]byte), dst)
}

func (m *Memory) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.cache.Set(key, data, ttl)
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

// Memcached shares cached values between replicas.
type Memcached struct {
	client *memcache.Client
}

func NewMemcached(client *memcache.Client) *Memcached {
	return &Memcached{client: client}
}

func (m *Memcached) Get(ctx context.Context, key string, dst any) (bool, error) {
	item, err := m.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "memcached get")
	}
	return true, json.Unmarshal(item.Value, dst)
}

func (m *Memcached) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	err = m.client.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: int32(ttl / time.Second),
	})
	return errors.Wrap(err, "memcached set")
}

func (m *Memcached) Delete(ctx context.Context, key string) error {
	err := m.client.Delete(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil
	}
	return errors.Wrap(err, "memcached delete")
}
