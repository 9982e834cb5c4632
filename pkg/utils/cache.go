package utils

import (
	"sync"
	"time"
)

// TTLCache 带过期时间的并发安全缓存，过期项在读取时懒删除
// ttl <= 0 时不缓存任何内容
type TTLCache[K comparable, V any] struct {
	items sync.Map // K -> cacheItem[V]
	ttl   time.Duration
	now   func() time.Time
}

// cacheItem 值和过期时间
type cacheItem[V any] struct {
	value      V
	expiration time.Time
}

// NewTTLCache 创建缓存
func NewTTLCache[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{ttl: ttl, now: time.Now}
}

// Set 写入缓存
func (c *TTLCache[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}
	c.items.Store(key, cacheItem[V]{
		value:      value,
		expiration: c.now().Add(c.ttl),
	})
}

// Get 读取缓存并校验是否过期
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V
	val, ok := c.items.Load(key)
	if !ok {
		return zero, false
	}

	item := val.(cacheItem[V])
	if !c.now().Before(item.expiration) {
		c.items.Delete(key) // 懒删除
		return zero, false
	}
	return item.value, true
}

// Delete 删除单个 key
func (c *TTLCache[K, V]) Delete(key K) {
	c.items.Delete(key)
}

// Purge 清空缓存
func (c *TTLCache[K, V]) Purge() {
	c.items.Range(func(key, _ any) bool {
		c.items.Delete(key)
		return true
	})
}
