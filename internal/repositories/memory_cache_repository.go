package repositories

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type memoryItem struct {
	value     string
	expiresAt time.Time
}

// MemoryCacheRepository - кеш в памяти процесса. Используется, когда REDIS_ADDRESS не задан, и в тестах.
type MemoryCacheRepository struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{items: make(map[string]memoryItem), now: time.Now}
}

func (r *MemoryCacheRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.lookup(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (r *MemoryCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store(key, value, expiration)
	return nil
}

func (r *MemoryCacheRepository) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookup(key); ok {
		return false, nil
	}
	r.store(key, value, expiration)
	return true, nil
}

func (r *MemoryCacheRepository) Del(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range keys {
		delete(r.items, key)
	}
	return nil
}

func (r *MemoryCacheRepository) Incr(ctx context.Context, key string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var current int64
	item, ok := r.lookup(key)
	if ok {
		n, err := strconv.ParseInt(item.value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("значение ключа %s не является числом: %w", key, err)
		}
		current = n
	}
	current++
	item.value = strconv.FormatInt(current, 10)
	r.items[key] = item
	return current, nil
}

// lookup вызывается под r.mu; просроченные ключи удаляются при обращении.
func (r *MemoryCacheRepository) lookup(key string) (memoryItem, bool) {
	item, ok := r.items[key]
	if !ok {
		return memoryItem{}, false
	}
	if !item.expiresAt.IsZero() && r.now().After(item.expiresAt) {
		delete(r.items, key)
		return memoryItem{}, false
	}
	return item, true
}

func (r *MemoryCacheRepository) store(key string, value interface{}, expiration time.Duration) {
	item := memoryItem{value: toString(value)}
	if expiration > 0 {
		item.expiresAt = r.now().Add(expiration)
	}
	r.items[key] = item
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
