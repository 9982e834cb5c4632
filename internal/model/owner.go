package model

import "time"

// 通用启停状态
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusInactive  = "inactive"
)

// BusinessOwner 商家（店主）
type BusinessOwner struct {
	BaseModel
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:255;index" json:"email"`
	Country      string    `gorm:"size:64" json:"country"`
	Status       string    `gorm:"size:20;index;default:active" json:"status"`
	JoinedAt     time.Time `json:"joined_at"`
	TotalOrders  int       `gorm:"default:0" json:"total_orders"`
	TotalRevenue float64   `gorm:"type:decimal(14,2);default:0" json:"total_revenue"`
}

func (BusinessOwner) TableName() string { return "business_owners" }

func (BusinessOwner) Kind() EntityKind { return KindBusinessOwner }

func (o BusinessOwner) CurrentStatus() string { return o.Status }

func (o *BusinessOwner) SetStatus(status string) { o.Status = status }

// IsActive 是否正常
func (o BusinessOwner) IsActive() bool { return o.Status == StatusActive }
