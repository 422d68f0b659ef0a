package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/similar_products/pkg/metrics"
)

// peek — актуальное значение без учёта в метриках и без изменения порядка.
func (c *LRUCacheTTL[V]) peek(key string) (V, bool) {
	var zero V
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return zero, false
	}
	ent := elem.Value.(*entry[V])
	if c.isExpired(ent, now) {
		return zero, false
	}
	return c.clone(ent.value), true
}

// beginLoad — регистрирует загрузку и возвращает текущее поколение ключа.
func (c *LRUCacheTTL[V]) beginLoad(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.flights[key]
	if !ok {
		f = &flight{}
		c.flights[key] = f
	}
	f.loads++
	return f.gen
}

// endLoad — снимает загрузку; value сохраняется, только если Delete не сменил поколение.
func (c *LRUCacheTTL[V]) endLoad(key string, gen uint64, value *V) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.flights[key]
	if value != nil && f.gen == gen {
		c.setLocked(key, *value, now)
	}
	if f.loads--; f.loads == 0 {
		delete(c.flights, key)
	}
}

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL[V]) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		c.countOp("evicted")
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL[V]) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry[V])
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL[V]) isExpired(ent *entry[V], now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return !now.Before(ent.expiresAt)
}

func (c *LRUCacheTTL[V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет истёкшие элементы с хвоста до первого актуального.
func (c *LRUCacheTTL[V]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		if !c.isExpired(back.Value.(*entry[V]), now) {
			return
		}
		c.removeElement(back)
		c.countOp("expired")
	}
}

func (c *LRUCacheTTL[V]) countOp(op string) {
	metrics.CacheOps.WithLabelValues(c.name, op).Inc()
}

func (c *LRUCacheTTL[V]) updateSize() {
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
}
