package repository

import (
	"context"
	"errors"
	"sync"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
)

var errEmptyID = errors.New("entity id is empty")

// ==================== 内存集合 ====================

// memoryCollection 切片保存插入顺序，index 维护 id -> 下标
type memoryCollection[T any, PT entityPtr[T]] struct {
	mu    sync.RWMutex
	kind  model.EntityKind
	items []T
	index map[string]int
	clone func(T) T
}

func newMemoryCollection[T any, PT entityPtr[T]](kind model.EntityKind, clone func(T) T) *memoryCollection[T, PT] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &memoryCollection[T, PT]{
		kind:  kind,
		index: make(map[string]int),
		clone: clone,
	}
}

func (c *memoryCollection[T, PT]) All(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out, nil
}

func (c *memoryCollection[T, PT]) Get(ctx context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, apperr.NotFound(string(c.kind), id)
	}
	return c.clone(c.items[pos]), nil
}

func (c *memoryCollection[T, PT]) Upsert(ctx context.Context, item T) error {
	id := PT(&item).EntityID()
	if id == "" {
		return errEmptyID
	}
	item = c.clone(item)

	c.mu.Lock()
	defer c.mu.Unlock()

	// 已存在则原位替换，保持插入顺序
	if pos, ok := c.index[id]; ok {
		PT(&item).SetSeq(PT(&c.items[pos]).Sequence())
		c.items[pos] = item
		return nil
	}
	PT(&item).SetSeq(int64(len(c.items)) + 1)
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

func (c *memoryCollection[T, PT]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return apperr.NotFound(string(c.kind), id)
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[PT(&c.items[i]).EntityID()] = i
	}
	return nil
}

func (c *memoryCollection[T, PT]) Count(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), nil
}

// ==================== 内存存储 ====================

type memoryStore struct {
	owners       *memoryCollection[model.BusinessOwner, *model.BusinessOwner]
	stores       *memoryCollection[model.Store, *model.Store]
	orders       *memoryCollection[model.Order, *model.Order]
	payments     *memoryCollection[model.Payment, *model.Payment]
	integrations *memoryCollection[model.Integration, *model.Integration]

	settingsMu sync.RWMutex
	settings   model.PlatformSettings
}

var _ EntityStore = (*memoryStore)(nil)

// NewMemoryStore 创建进程内存储，设置初始化为默认值
func NewMemoryStore() EntityStore {
	return &memoryStore{
		owners:       newMemoryCollection[model.BusinessOwner, *model.BusinessOwner](model.KindBusinessOwner, nil),
		stores:       newMemoryCollection[model.Store, *model.Store](model.KindStore, nil),
		orders:       newMemoryCollection[model.Order, *model.Order](model.KindOrder, model.Order.Clone),
		payments:     newMemoryCollection[model.Payment, *model.Payment](model.KindPayment, nil),
		integrations: newMemoryCollection[model.Integration, *model.Integration](model.KindIntegration, nil),
		settings:     model.DefaultPlatformSettings(),
	}
}

func (s *memoryStore) Owners() Collection[model.BusinessOwner] { return s.owners }

func (s *memoryStore) Stores() Collection[model.Store] { return s.stores }

func (s *memoryStore) Orders() Collection[model.Order] { return s.orders }

func (s *memoryStore) Payments() Collection[model.Payment] { return s.payments }

func (s *memoryStore) Integrations() Collection[model.Integration] { return s.integrations }

func (s *memoryStore) Settings(ctx context.Context) (model.PlatformSettings, error) {
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()
	return s.settings, nil
}

func (s *memoryStore) SaveSettings(ctx context.Context, settings model.PlatformSettings) error {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings = settings
	return nil
}

func (s *memoryStore) Driver() string { return "memory" }
