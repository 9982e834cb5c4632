package model

import "time"

// Store 店铺
type Store struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
	// OwnerID 所属商家，以 ID 关联，展示名称在读取时解析
	OwnerID       string    `gorm:"size:64;index" json:"owner_id"`
	Category      string    `gorm:"size:64;index" json:"category"`
	Status        string    `gorm:"size:20;index;default:active" json:"status"`
	ProductsCount int       `gorm:"default:0" json:"products_count"`
	OrdersCount   int       `gorm:"default:0" json:"orders_count"`
	Revenue       float64   `gorm:"type:decimal(14,2);default:0" json:"revenue"`
	Rating        float64   `gorm:"type:decimal(3,1);default:0" json:"rating"` // 0 ~ 5
	CreatedAt     time.Time `json:"created_at"`
}

func (Store) TableName() string { return "stores" }

func (Store) Kind() EntityKind { return KindStore }

func (s Store) CurrentStatus() string { return s.Status }

func (s *Store) SetStatus(status string) { s.Status = status }

func (s Store) IsActive() bool { return s.Status == StatusActive }
