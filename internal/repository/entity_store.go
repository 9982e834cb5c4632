package repository

import (
	"context"

	"wa_admin_202610/internal/model"
)

// ==================== 接口定义 ====================

// Collection 单类实体的有序集合
// All 按插入顺序返回副本；Get/Remove 目标不存在时返回 apperr.NotFoundError
type Collection[T any] interface {
	All(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Upsert(ctx context.Context, item T) error
	Remove(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// EntityStore 实体存储，服务层唯一数据源
// 存储层不做业务校验，校验由状态机和服务层负责
type EntityStore interface {
	Owners() Collection[model.BusinessOwner]
	Stores() Collection[model.Store]
	Orders() Collection[model.Order]
	Payments() Collection[model.Payment]
	Integrations() Collection[model.Integration]

	Settings(ctx context.Context) (model.PlatformSettings, error)
	SaveSettings(ctx context.Context, settings model.PlatformSettings) error

	// Driver 存储驱动名称: memory | postgres | sqlite
	Driver() string
}

// entityPtr 约束 *T 实现 model.Entity
type entityPtr[T any] interface {
	*T
	model.Entity
}

// Counts 各类实体数量，用于健康检查
func Counts(ctx context.Context, store EntityStore) (map[model.EntityKind]int, error) {
	counters := map[model.EntityKind]func(context.Context) (int, error){
		model.KindBusinessOwner: store.Owners().Count,
		model.KindStore:         store.Stores().Count,
		model.KindOrder:         store.Orders().Count,
		model.KindPayment:       store.Payments().Count,
		model.KindIntegration:   store.Integrations().Count,
	}
	out := make(map[model.EntityKind]int, len(counters))
	for kind, count := range counters {
		n, err := count(ctx)
		if err != nil {
			return nil, err
		}
		out[kind] = n
	}
	return out, nil
}
