package cache

import (
	"bytes"
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCache локальный кэш процесса с вытеснением по давности использования и TTL.
// Значения копируются на входе и выходе, вызывающий код не может изменить закэшированный заказ.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List
	items    map[string]*list.Element
	now      func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *LRUCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		cacheMisses.WithLabelValues(driverMemory).Inc()
		return nil, false
	}

	ent := el.Value.(*entry)
	if !c.now().Before(ent.expiresAt) {
		c.unlink(el)
		cacheMisses.WithLabelValues(driverMemory).Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	cacheHits.WithLabelValues(driverMemory).Inc()
	return bytes.Clone(ent.value), true
}

func (c *LRUCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value = bytes.Clone(value)
		ent.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: bytes.Clone(value), expiresAt: expiresAt})

	for c.order.Len() > c.capacity {
		c.unlink(c.order.Back())
		cacheEvictions.WithLabelValues(driverMemory).Inc()
	}
}

func (c *LRUCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.unlink(el)
	}
}

func (c *LRUCache) unlink(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start запускает фоновую очистку просроченных записей до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	go c.runJanitor(ctx, janitorInterval)
	return nil
}

func (c *LRUCache) runJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-ctx.Done():
			return
		}
	}
}

// cleanup удаляет просроченные записи, начиная с самых старых по использованию.
func (c *LRUCache) cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*entry).expiresAt) {
			c.unlink(el)
			removed++
		}
		el = prev
	}
	return removed
}
