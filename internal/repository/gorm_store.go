package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
)

// ==================== gorm 集合 ====================

// gormCollection 以 seq 列保持插入顺序
type gormCollection[T any, PT entityPtr[T]] struct {
	db   *gorm.DB
	kind model.EntityKind
}

func (c *gormCollection[T, PT]) All(ctx context.Context) ([]T, error) {
	var items []T
	if err := c.db.WithContext(ctx).Order("seq ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	return items, nil
}

func (c *gormCollection[T, PT]) Get(ctx context.Context, id string) (T, error) {
	var item T
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, apperr.NotFound(string(c.kind), id)
	}
	if err != nil {
		return item, fmt.Errorf("get %s %s: %w", c.kind, id, err)
	}
	return item, nil
}

func (c *gormCollection[T, PT]) Upsert(ctx context.Context, item T) error {
	id := PT(&item).EntityID()
	if id == "" {
		return errEmptyID
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		res := tx.Where("id = ?", id).Limit(1).Find(&existing)
		if res.Error != nil {
			return res.Error
		}

		// 已存在：保留原 seq 整行覆盖
		if res.RowsAffected > 0 {
			PT(&item).SetSeq(PT(&existing).Sequence())
			return tx.Save(&item).Error
		}

		var maxSeq int64
		if err := tx.Model(new(T)).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
			return err
		}
		PT(&item).SetSeq(maxSeq + 1)
		return tx.Create(&item).Error
	})
}

func (c *gormCollection[T, PT]) Remove(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete %s %s: %w", c.kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(string(c.kind), id)
	}
	return nil
}

func (c *gormCollection[T, PT]) Count(ctx context.Context) (int, error) {
	var n int64
	if err := c.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

// ==================== 平台设置 ====================

// settingsRow 平台设置单行表，整份设置存为 JSON
type settingsRow struct {
	ID        int64                                     `gorm:"primaryKey"`
	Data      datatypes.JSONType[model.PlatformSettings] `gorm:"not null"`
	UpdatedAt time.Time
}

func (settingsRow) TableName() string { return "platform_settings" }

const settingsRowID = 1

// ==================== gorm 存储 ====================

type gormStore struct {
	db     *gorm.DB
	driver string

	owners       *gormCollection[model.BusinessOwner, *model.BusinessOwner]
	stores       *gormCollection[model.Store, *model.Store]
	orders       *gormCollection[model.Order, *model.Order]
	payments     *gormCollection[model.Payment, *model.Payment]
	integrations *gormCollection[model.Integration, *model.Integration]
}

var _ EntityStore = (*gormStore)(nil)

// AutoMigrate 建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.BusinessOwner{},
		&model.Store{},
		&model.Order{},
		&model.Payment{},
		&model.Integration{},
		&settingsRow{},
	)
}

// NewGormStore 基于 gorm 的持久化存储，调用前需已执行 AutoMigrate
func NewGormStore(db *gorm.DB) EntityStore {
	return &gormStore{
		db:           db,
		driver:       db.Dialector.Name(),
		owners:       &gormCollection[model.BusinessOwner, *model.BusinessOwner]{db: db, kind: model.KindBusinessOwner},
		stores:       &gormCollection[model.Store, *model.Store]{db: db, kind: model.KindStore},
		orders:       &gormCollection[model.Order, *model.Order]{db: db, kind: model.KindOrder},
		payments:     &gormCollection[model.Payment, *model.Payment]{db: db, kind: model.KindPayment},
		integrations: &gormCollection[model.Integration, *model.Integration]{db: db, kind: model.KindIntegration},
	}
}

func (s *gormStore) Owners() Collection[model.BusinessOwner] { return s.owners }

func (s *gormStore) Stores() Collection[model.Store] { return s.stores }

func (s *gormStore) Orders() Collection[model.Order] { return s.orders }

func (s *gormStore) Payments() Collection[model.Payment] { return s.payments }

func (s *gormStore) Integrations() Collection[model.Integration] { return s.integrations }

// Settings 未保存过时返回默认设置
func (s *gormStore) Settings(ctx context.Context) (model.PlatformSettings, error) {
	var row settingsRow
	err := s.db.WithContext(ctx).First(&row, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultPlatformSettings(), nil
	}
	if err != nil {
		return model.PlatformSettings{}, fmt.Errorf("load settings: %w", err)
	}
	return row.Data.Data(), nil
}

func (s *gormStore) SaveSettings(ctx context.Context, settings model.PlatformSettings) error {
	row := settingsRow{
		ID:   settingsRowID,
		Data: datatypes.NewJSONType(settings),
	}
	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *gormStore) Driver() string { return s.driver }
