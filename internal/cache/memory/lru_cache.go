package memory

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// maxLoadAttempts — сколько раз ожидающий вызов повторяет загрузку,
// если общая загрузка прервалась из-за контекста другого вызова (отмена или дедлайн).
const maxLoadAttempts = 3

// flight — поколение ключа, пока по нему идут загрузки. Delete увеличивает gen,
// и загрузка, начатая в старом поколении, результат в кэш не кладёт.
type flight struct {
	gen   uint64
	loads int
}

// leaderAborted — load упал, когда контекст ведущего вызова уже завершился.
type leaderAborted struct {
	err error
}

func (e *leaderAborted) Error() string { return e.err.Error() }
func (e *leaderAborted) Unwrap() error { return e.err }

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный кэш с вытеснением давно не читанных записей
// и временем жизни, отсчитываемым от записи (чтение срок не продлевает).
type LRUCacheTTL[V any] struct {
	name     string
	capacity int
	ttl      time.Duration
	clone    func(V) V
	now      func() time.Time

	ll      *list.List
	index   map[string]*list.Element
	flights map[string]*flight
	group   singleflight.Group

	mu sync.Mutex
}

// NewLRUCacheTTL — name используется как метка метрик; ttl <= 0 отключает истечение;
// clone копирует значение на входе и выходе (nil — значение копируется присваиванием).
func NewLRUCacheTTL[V any](name string, capacity int, ttl time.Duration, clone func(V) V) *LRUCacheTTL[V] {
	if capacity <= 0 {
		capacity = 1
	}
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &LRUCacheTTL[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		clone:    clone,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
		flights:  make(map[string]*flight),
	}
}

// Get — (value, true) при попадании, (zero, false) при промахе или истечении.
func (c *LRUCacheTTL[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		c.countOp("miss")
		return zero, false
	}
	ent := elem.Value.(*entry[V])
	if c.isExpired(ent, now) {
		c.countOp("expired")
		c.removeElement(elem)
		c.updateSize()
		return zero, false
	}
	c.ll.MoveToFront(elem)

	c.countOp("hit")
	return c.clone(ent.value), true
}

// Set — сохраняет значение; повторная запись по ключу заново отсчитывает TTL.
func (c *LRUCacheTTL[V]) Set(_ context.Context, key string, value V) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLocked(key, value, now)
}

func (c *LRUCacheTTL[V]) setLocked(key string, value V, now time.Time) {
	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.value = c.clone(value)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[V]{
		key:       key,
		value:     c.clone(value),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	c.updateSize()
}

// Delete — удаляет запись, если она есть. Загрузка по ключу, идущая в этот момент,
// своё значение уже не сохранит, а следующий GetOrLoad начнёт новую.
func (c *LRUCacheTTL[V]) Delete(_ context.Context, key string) {
	c.mu.Lock()
	if f, ok := c.flights[key]; ok {
		f.gen++
	}
	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		c.updateSize()
	}
	c.mu.Unlock()

	c.group.Forget(key)
}

// Len — число записей, включая ещё не удалённые истёкшие.
func (c *LRUCacheTTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// GetOrLoad — значение из кэша или результат load, сохранённый в кэш.
// Ошибки load не кэшируются. Конкурентные промахи по одному ключу
// выполняют один load, остальные ждут его результат.
func (c *LRUCacheTTL[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(ctx, key); ok {
		return v, nil
	}

	var (
		v   V
		err error
	)
	for attempt := 0; attempt < maxLoadAttempts; attempt++ {
		var shared bool
		v, shared, err = c.loadShared(ctx, key, load)
		var aborted *leaderAborted
		if errors.As(err, &aborted) {
			// загрузку вёл другой вызов, и его контекст завершился; наш ещё жив
			if shared && ctx.Err() == nil {
				continue
			}
			err = aborted.err
		}
		return v, err
	}
	var aborted *leaderAborted
	if errors.As(err, &aborted) {
		err = aborted.err
	}
	return v, err
}

func (c *LRUCacheTTL[V]) loadShared(ctx context.Context, key string, load func(context.Context) (V, error)) (V, bool, error) {
	var zero V

	ch := c.group.DoChan(key, func() (any, error) {
		// пока ждали очередь, значение мог положить предыдущий загрузчик
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		gen := c.beginLoad(key)
		v, err := load(ctx)
		if err != nil {
			c.endLoad(key, gen, nil)
			if ctx.Err() != nil {
				return nil, &leaderAborted{err: err}
			}
			return nil, err
		}
		c.endLoad(key, gen, &v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.countOp("coalesced")
		}
		if res.Err != nil {
			return zero, res.Shared, res.Err
		}
		return c.clone(res.Val.(V)), res.Shared, nil
	}
}
